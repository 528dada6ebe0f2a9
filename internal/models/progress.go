// ABOUTME: Body-progress models: weight entries, tape measurements, photos.
// ABOUTME: All entries are immutable once logged and kept most-recent-first.
package models

// WeightEntry is one logged body weight. Date is a short display date
// like "Feb 1".
type WeightEntry struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// MeasurementEntry is one set of tape measurements. Any subset of the
// fields may be present; absent fields stay nil.
type MeasurementEntry struct {
	Date  string   `json:"date"`
	Chest *float64 `json:"chest,omitempty"`
	Waist *float64 `json:"waist,omitempty"`
	Hips  *float64 `json:"hips,omitempty"`
	Arms  *float64 `json:"arms,omitempty"`
}

// ProgressPhoto references a progress photo by URI.
type ProgressPhoto struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	URI  string `json:"uri"`
}
