// ABOUTME: MCP tool implementations for the training log.
// ABOUTME: Session editing, workout saving, progress logging, analytics reads.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/liftlog/liftlog/internal/analytics"
	"github.com/liftlog/liftlog/internal/models"
	"github.com/liftlog/liftlog/internal/store"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_active_workout",
		Description: "Get the in-progress workout session",
	}, s.handleGetActiveWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the active session",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_set",
		Description: "Add a set to an exercise in the active session",
	}, s.handleAddSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_workout",
		Description: "Save the active session to history and start a fresh one",
	}, s.handleFinishWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List saved workouts, most recent first",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Log a body weight entry",
	}, s.handleLogWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_measurements",
		Description: "Log body measurements (any subset of chest, waist, hips, arms)",
	}, s.handleLogMeasurements)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_photo",
		Description: "Add a progress photo by URI",
	}, s.handleAddPhoto)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_best_lifts",
		Description: "Best set per exercise with estimated 1RM, strongest first",
	}, s.handleGetBestLifts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_volume_data",
		Description: "Volume progression over saved workouts, oldest first",
	}, s.handleGetVolumeData)
}

// Tool input/output types

type emptyInput struct{}

type sessionOutput struct {
	Exercises []models.Exercise `json:"exercises"`
}

type addExerciseInput struct {
	Name string `json:"name" jsonschema:"description=Exercise name (free text),required"`
}

type addSetInput struct {
	Exercise  string `json:"exercise" jsonschema:"description=Exercise name in the active session,required"`
	Weight    string `json:"weight" jsonschema:"description=Weight as entered (e.g. \"80\"),required"`
	Reps      string `json:"reps" jsonschema:"description=Reps as entered (e.g. \"8\"),required"`
	Completed bool   `json:"completed,omitempty" jsonschema:"description=Mark the set completed"`
}

type finishWorkoutInput struct {
	Title    string `json:"title,omitempty" jsonschema:"description=Workout title (default Workout Session)"`
	Duration string `json:"duration,omitempty" jsonschema:"description=Formatted duration like 45:00 (default 00:00)"`
}

type workoutOutput struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	TotalVolume float64 `json:"totalVolume"`
	Emoji       string  `json:"emoji"`
	Message     string  `json:"message"`
}

type listWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Max results (default all)"`
}

type listWorkoutsOutput struct {
	Workouts []models.Workout `json:"workouts"`
}

type logWeightInput struct {
	Value float64 `json:"value" jsonschema:"description=Body weight in kg,required"`
}

type weightOutput struct {
	Date    string  `json:"date"`
	Value   float64 `json:"value"`
	Message string  `json:"message"`
}

type logMeasurementsInput struct {
	Chest *float64 `json:"chest,omitempty" jsonschema:"description=Chest in cm"`
	Waist *float64 `json:"waist,omitempty" jsonschema:"description=Waist in cm"`
	Hips  *float64 `json:"hips,omitempty" jsonschema:"description=Hips in cm"`
	Arms  *float64 `json:"arms,omitempty" jsonschema:"description=Arms in cm"`
}

type measurementOutput struct {
	Entry   models.MeasurementEntry `json:"entry"`
	Message string                  `json:"message"`
}

type addPhotoInput struct {
	URI string `json:"uri" jsonschema:"description=Photo URI,required"`
}

type photoOutput struct {
	Photo   models.ProgressPhoto `json:"photo"`
	Message string               `json:"message"`
}

type bestLiftsOutput struct {
	Lifts []analytics.BestLift `json:"lifts"`
}

type volumeDataOutput struct {
	Points []analytics.VolumePoint `json:"points"`
}

// Tool handlers

func (s *Server) handleGetActiveWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, sessionOutput, error) {
	return nil, sessionOutput{Exercises: s.workouts.ActiveWorkout()}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, sessionOutput, error) {
	if input.Name == "" {
		return nil, sessionOutput{}, fmt.Errorf("exercise name is required")
	}

	session := s.workouts.ActiveWorkout()
	session = append(session, models.NewExercise(input.Name))
	s.workouts.SetActiveWorkout(session)

	return nil, sessionOutput{Exercises: session}, nil
}

func (s *Server) handleAddSet(ctx context.Context, req *mcp.CallToolRequest, input addSetInput) (*mcp.CallToolResult, sessionOutput, error) {
	session := s.workouts.ActiveWorkout()

	found := false
	for i := range session {
		if session[i].Name == input.Exercise {
			set := models.NewSet(input.Weight, input.Reps)
			set.IsCompleted = input.Completed
			session[i].Sets = append(session[i].Sets, set)
			found = true
			break
		}
	}
	if !found {
		return nil, sessionOutput{}, fmt.Errorf("no exercise named %q in the active session", input.Exercise)
	}

	s.workouts.SetActiveWorkout(session)
	return nil, sessionOutput{Exercises: session}, nil
}

func (s *Server) handleFinishWorkout(ctx context.Context, req *mcp.CallToolRequest, input finishWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	w := s.workouts.SaveWorkout(s.workouts.ActiveWorkout(), input.Title, input.Duration)
	s.workouts.SetActiveWorkout(store.DefaultSession())

	return nil, workoutOutput{
		ID:          w.ID,
		Title:       w.Title,
		Date:        w.Date,
		TotalVolume: w.TotalVolume,
		Emoji:       w.Emoji,
		Message:     fmt.Sprintf("Saved %s %s (%.0f kg total volume)", w.Emoji, w.Title, w.TotalVolume),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, listWorkoutsOutput, error) {
	history := s.workouts.History()
	if input.Limit > 0 && len(history) > input.Limit {
		history = history[:input.Limit]
	}
	return nil, listWorkoutsOutput{Workouts: history}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, weightOutput, error) {
	entry := s.progress.LogWeight(input.Value)
	return nil, weightOutput{
		Date:    entry.Date,
		Value:   entry.Value,
		Message: fmt.Sprintf("Logged %.1f kg on %s", entry.Value, entry.Date),
	}, nil
}

func (s *Server) handleLogMeasurements(ctx context.Context, req *mcp.CallToolRequest, input logMeasurementsInput) (*mcp.CallToolResult, measurementOutput, error) {
	entry := s.progress.LogMeasurements(models.MeasurementEntry{
		Chest: input.Chest,
		Waist: input.Waist,
		Hips:  input.Hips,
		Arms:  input.Arms,
	})
	return nil, measurementOutput{
		Entry:   entry,
		Message: fmt.Sprintf("Logged measurements on %s", entry.Date),
	}, nil
}

func (s *Server) handleAddPhoto(ctx context.Context, req *mcp.CallToolRequest, input addPhotoInput) (*mcp.CallToolResult, photoOutput, error) {
	if input.URI == "" {
		return nil, photoOutput{}, fmt.Errorf("photo uri is required")
	}
	photo := s.progress.AddPhoto(input.URI)
	return nil, photoOutput{
		Photo:   photo,
		Message: fmt.Sprintf("Added photo on %s", photo.Date),
	}, nil
}

func (s *Server) handleGetBestLifts(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, bestLiftsOutput, error) {
	return nil, bestLiftsOutput{Lifts: analytics.BestLifts(s.workouts.History())}, nil
}

func (s *Server) handleGetVolumeData(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, volumeDataOutput, error) {
	return nil, volumeDataOutput{Points: analytics.VolumeSeries(s.workouts.History())}, nil
}
