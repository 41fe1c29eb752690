package workouts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"
)

var ErrInvalidExport = errors.New("invalid export document")

// ExportFileName is the name of a full store export created at the given time.
func ExportFileName(at time.Time) string {
	return fmt.Sprintf("fitness_tracker_export_%d.json", at.UnixMilli())
}

// EncodeStore writes the store as one indented JSON document keyed by date.
func EncodeStore(w io.Writer, store Store) error {
	if store == nil {
		store = Store{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(store)
}

// DecodeStore reads an export document. Map keys are authoritative: a record
// with an empty date takes the date of its key.
func DecodeStore(r io.Reader) (Store, error) {
	var store Store
	if err := json.NewDecoder(r).Decode(&store); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExport, err)
	}
	if store == nil {
		return Store{}, nil
	}

	for date, w := range store {
		if err := ValidateDate(date); err != nil {
			return nil, err
		}
		if w.Date != date {
			w.Date = date
			store[date] = w
		}
	}
	return store, nil
}

// WithPhotos returns the records that have a photo, newest date first.
func WithPhotos(store Store) []WorkoutRecord {
	records := make([]WorkoutRecord, 0)
	for _, w := range store {
		if w.Photo != "" {
			records = append(records, w)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records
}
