// ABOUTME: ProgressStore owns weight, measurement, and photo history.
// ABOUTME: All three sequences persist together as one versioned record.
package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/liftlog/liftlog/internal/models"
	"github.com/liftlog/liftlog/internal/storage"
)

// ProgressDataKey is the versioned blob key for the combined
// weight/measurement/photo record.
const ProgressDataKey = "@progress_data_v1"

// progressRecord is the persisted shape. Loading replaces only the
// fields present in the stored record, so older records that lack newer
// fields leave those at their defaults.
type progressRecord struct {
	WeightHistory []models.WeightEntry      `json:"weightHistory"`
	Measurements  []models.MeasurementEntry `json:"measurements"`
	Photos        []models.ProgressPhoto    `json:"photos"`
}

// ProgressStore holds body-progress history, most recent first.
type ProgressStore struct {
	mu           sync.Mutex
	weights      []models.WeightEntry
	measurements []models.MeasurementEntry
	photos       []models.ProgressPhoto
	writer       *storage.Writer
	log          logrus.FieldLogger
}

// NewProgressStore creates the store seeded with sample data and loads
// any persisted record over it. Missing or corrupt records fall back
// silently to the seeds.
func NewProgressStore(blob storage.Blob, log logrus.FieldLogger) *ProgressStore {
	s := &ProgressStore{
		weights:      defaultWeightHistory(),
		measurements: defaultMeasurements(),
		photos:       defaultPhotos(),
		writer:       storage.NewWriter(blob, log),
		log:          log,
	}
	s.load(blob)
	return s
}

func f64(v float64) *float64 { return &v }

func defaultWeightHistory() []models.WeightEntry {
	return []models.WeightEntry{
		{Date: "Feb 1", Value: 85.0},
		{Date: "Feb 8", Value: 84.5},
		{Date: "Feb 15", Value: 83.8},
		{Date: "Feb 22", Value: 83.2},
	}
}

func defaultMeasurements() []models.MeasurementEntry {
	return []models.MeasurementEntry{
		{Date: "Feb 1", Chest: f64(105), Waist: f64(92), Hips: f64(100), Arms: f64(38)},
		{Date: "Feb 22", Chest: f64(106), Waist: f64(90), Hips: f64(99), Arms: f64(39)},
	}
}

func defaultPhotos() []models.ProgressPhoto {
	return []models.ProgressPhoto{
		{ID: "1", Date: "Feb 1", URI: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=400"},
	}
}

func (s *ProgressStore) load(blob storage.Blob) {
	data, err := blob.Get(ProgressDataKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.WithError(err).Warn("failed to load progress data")
		}
		return
	}

	var record progressRecord
	if err := json.Unmarshal(data, &record); err != nil {
		s.log.WithError(err).Warn("corrupt progress data, keeping defaults")
		return
	}
	if record.WeightHistory != nil {
		s.weights = record.WeightHistory
	}
	if record.Measurements != nil {
		s.measurements = record.Measurements
	}
	if record.Photos != nil {
		s.photos = record.Photos
	}
}

// LogWeight prepends a weight entry stamped with today's short date and
// persists the full record.
func (s *ProgressStore) LogWeight(value float64) models.WeightEntry {
	entry := models.WeightEntry{
		Date:  time.Now().Format("Jan 2"),
		Value: value,
	}

	s.mu.Lock()
	s.weights = append([]models.WeightEntry{entry}, s.weights...)
	s.persist()
	s.mu.Unlock()

	return entry
}

// LogMeasurements prepends a measurement entry. Any subset of the tape
// fields may be set; the entry's date is stamped here.
func (s *ProgressStore) LogMeasurements(entry models.MeasurementEntry) models.MeasurementEntry {
	entry.Date = time.Now().Format("Jan 2")

	s.mu.Lock()
	s.measurements = append([]models.MeasurementEntry{entry}, s.measurements...)
	s.persist()
	s.mu.Unlock()

	return entry
}

// AddPhoto wraps the URI with a fresh ID and today's date, prepends it,
// and persists the full record.
func (s *ProgressStore) AddPhoto(uri string) models.ProgressPhoto {
	photo := models.ProgressPhoto{
		ID:   uuid.New().String(),
		Date: time.Now().Format("Jan 2"),
		URI:  uri,
	}

	s.mu.Lock()
	s.photos = append([]models.ProgressPhoto{photo}, s.photos...)
	s.persist()
	s.mu.Unlock()

	return photo
}

// WeightHistory returns logged weights, most recent first.
func (s *ProgressStore) WeightHistory() []models.WeightEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WeightEntry(nil), s.weights...)
}

// Measurements returns logged measurements, most recent first.
func (s *ProgressStore) Measurements() []models.MeasurementEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MeasurementEntry(nil), s.measurements...)
}

// Photos returns progress photos, most recent first.
func (s *ProgressStore) Photos() []models.ProgressPhoto {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ProgressPhoto(nil), s.photos...)
}

// WriteErrors exposes persistence failures for observers.
func (s *ProgressStore) WriteErrors() <-chan error {
	return s.writer.Errors()
}

// Close drains pending writes.
func (s *ProgressStore) Close() {
	s.writer.Wait()
}

// persist serializes all three sequences together; the record is always
// written whole even when only one sequence changed.
func (s *ProgressStore) persist() {
	record := progressRecord{
		WeightHistory: s.weights,
		Measurements:  s.measurements,
		Photos:        s.photos,
	}
	data, err := json.Marshal(record)
	if err != nil {
		s.log.WithError(err).Warn("failed to encode progress data")
		return
	}
	s.writer.Write(ProgressDataKey, data)
}
