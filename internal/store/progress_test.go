// ABOUTME: Tests for ProgressStore logging and persistence behavior.
// ABOUTME: Covers seeds, prepend order, partial records, and round trips.
package store

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/liftlog/liftlog/internal/models"
	"github.com/liftlog/liftlog/internal/storage"
)

func TestProgressSeeds(t *testing.T) {
	s := NewProgressStore(storage.NewMemory(), testLogger())

	if got := len(s.WeightHistory()); got != 4 {
		t.Errorf("got %d seeded weights, want 4", got)
	}
	if got := len(s.Measurements()); got != 2 {
		t.Errorf("got %d seeded measurements, want 2", got)
	}
	if got := len(s.Photos()); got != 1 {
		t.Errorf("got %d seeded photos, want 1", got)
	}
	if first := s.WeightHistory()[0]; first.Date != "Feb 1" || first.Value != 85.0 {
		t.Errorf("first seeded weight = %+v", first)
	}
}

func TestLogWeightPrepends(t *testing.T) {
	s := NewProgressStore(storage.NewMemory(), testLogger())

	entry := s.LogWeight(83.2)

	weights := s.WeightHistory()
	if len(weights) != 5 {
		t.Fatalf("got %d weights, want 5", len(weights))
	}
	if weights[0] != entry {
		t.Errorf("new entry not first: %+v", weights[0])
	}
	if entry.Value != 83.2 {
		t.Errorf("Value = %v, want 83.2", entry.Value)
	}
	if want := time.Now().Format("Jan 2"); entry.Date != want {
		t.Errorf("Date = %q, want %q", entry.Date, want)
	}
}

func TestLogMeasurementsPartialFields(t *testing.T) {
	s := NewProgressStore(storage.NewMemory(), testLogger())

	chest := 106.0
	entry := s.LogMeasurements(models.MeasurementEntry{Chest: &chest})

	got := s.Measurements()[0]
	if got.Chest == nil || *got.Chest != 106 {
		t.Errorf("Chest = %v, want 106", got.Chest)
	}
	if got.Waist != nil || got.Hips != nil || got.Arms != nil {
		t.Error("absent fields must stay nil")
	}
	if got.Date != entry.Date || entry.Date == "" {
		t.Errorf("entry not date-stamped: %+v", got)
	}
}

func TestLogMeasurementsAllowsEmptyEntry(t *testing.T) {
	s := NewProgressStore(storage.NewMemory(), testLogger())

	s.LogMeasurements(models.MeasurementEntry{})
	if got := len(s.Measurements()); got != 3 {
		t.Errorf("got %d measurements, want 3 (empty entries are allowed)", got)
	}
}

func TestAddPhoto(t *testing.T) {
	s := NewProgressStore(storage.NewMemory(), testLogger())

	photo := s.AddPhoto("file:///progress/mar.jpg")
	if photo.ID == "" {
		t.Error("expected a generated ID")
	}
	if photo.URI != "file:///progress/mar.jpg" {
		t.Errorf("URI = %q", photo.URI)
	}
	if s.Photos()[0] != photo {
		t.Error("new photo not first")
	}
}

func TestProgressRoundTrip(t *testing.T) {
	blob := storage.NewMemory()

	s := NewProgressStore(blob, testLogger())
	s.LogWeight(83.2)
	waist := 90.0
	s.LogMeasurements(models.MeasurementEntry{Waist: &waist})
	s.AddPhoto("file:///p.jpg")
	s.Close()

	reloaded := NewProgressStore(blob, testLogger())
	if !reflect.DeepEqual(reloaded.WeightHistory(), s.WeightHistory()) {
		t.Error("reloaded weights differ")
	}
	if !reflect.DeepEqual(reloaded.Measurements(), s.Measurements()) {
		t.Error("reloaded measurements differ")
	}
	if !reflect.DeepEqual(reloaded.Photos(), s.Photos()) {
		t.Error("reloaded photos differ")
	}
}

func TestPartialRecordKeepsDefaultsForMissingFields(t *testing.T) {
	blob := storage.NewMemory()
	record := []byte(`{"weightHistory":[{"date":"Mar 1","value":80}]}`)
	if err := blob.Put(ProgressDataKey, record); err != nil {
		t.Fatal(err)
	}

	s := NewProgressStore(blob, testLogger())
	if got := len(s.WeightHistory()); got != 1 {
		t.Errorf("got %d weights, want 1 from the stored record", got)
	}
	if got := len(s.Measurements()); got != 2 {
		t.Errorf("got %d measurements, want the 2 defaults", got)
	}
	if got := len(s.Photos()); got != 1 {
		t.Errorf("got %d photos, want the 1 default", got)
	}
}

func TestCorruptProgressKeepsDefaults(t *testing.T) {
	blob := storage.NewMemory()
	if err := blob.Put(ProgressDataKey, []byte("not json at all")); err != nil {
		t.Fatal(err)
	}

	s := NewProgressStore(blob, testLogger())
	if got := len(s.WeightHistory()); got != 4 {
		t.Errorf("got %d weights from corrupt data, want the 4 defaults", got)
	}
}

func TestProgressPersistsAllThreeSequencesTogether(t *testing.T) {
	blob := storage.NewMemory()

	s := NewProgressStore(blob, testLogger())
	s.LogWeight(82.0)
	s.Close()

	data, err := blob.Get(ProgressDataKey)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"weightHistory", "measurements", "photos"} {
		if !bytes.Contains(data, []byte(field)) {
			t.Errorf("persisted record missing %q", field)
		}
	}
}
