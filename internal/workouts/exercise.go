package workouts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrUnknownExercise = errors.New("unknown exercise")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
)

type ExerciseKind int

const (
	PushUps ExerciseKind = iota
	PullUps
	Squats
	SitUps
	Planks

	exerciseKindsCount
)

// ExerciseKinds lists all tracked exercises in display order.
var ExerciseKinds = [exerciseKindsCount]ExerciseKind{PushUps, PullUps, Squats, SitUps, Planks}

var exerciseKeys = [exerciseKindsCount]string{"pushups", "pullups", "squats", "sitUps", "planks"}

var exerciseNames = [exerciseKindsCount]string{"Push-ups", "Pull-ups", "Squats", "Sit-ups", "Planks (sec)"}

// String returns the wire key of the exercise, as used in stored JSON documents.
func (k ExerciseKind) String() string {
	if k < 0 || k >= exerciseKindsCount {
		return fmt.Sprintf("exercise(%d)", int(k))
	}
	return exerciseKeys[k]
}

func (k ExerciseKind) DisplayName() string {
	if k < 0 || k >= exerciseKindsCount {
		return k.String()
	}
	return exerciseNames[k]
}

// Unit is a display concern only: planks are held in seconds, all others counted in reps.
func (k ExerciseKind) Unit() string {
	if k == Planks {
		return "sec"
	}
	return "reps"
}

func ParseExerciseKind(s string) (ExerciseKind, error) {
	for i, key := range exerciseKeys {
		if strings.EqualFold(key, s) {
			return ExerciseKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownExercise, s)
}

type ExerciseRecord struct {
	// Max is the best single set count
	Max int `json:"max"`
	// Total is the summed reps (or seconds) for the day
	Total int `json:"total"`
}

// Exercises holds one record per ExerciseKind. A missing exercise is a zero record, never absent.
type Exercises [exerciseKindsCount]ExerciseRecord

func (e Exercises) Get(kind ExerciseKind) ExerciseRecord {
	return e[kind]
}

func (e *Exercises) Set(kind ExerciseKind, rec ExerciseRecord) {
	e[kind] = rec
}

func (e Exercises) MarshalJSON() ([]byte, error) {
	m := make(map[string]ExerciseRecord, len(e))
	for _, kind := range ExerciseKinds {
		m[kind.String()] = e[kind]
	}
	return json.Marshal(m)
}

// UnmarshalJSON fills missing exercises with zero records and ignores unknown keys.
func (e *Exercises) UnmarshalJSON(data []byte) error {
	var m map[string]ExerciseRecord
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	*e = Exercises{}
	for key, rec := range m {
		kind, err := ParseExerciseKind(key)
		if err != nil {
			continue
		}
		e[kind] = rec
	}
	return nil
}

type WorkoutRecord struct {
	Date      string    `json:"date"`
	Exercises Exercises `json:"exercises"`
	Photo     string    `json:"photo,omitempty"`
	// Timestamp is the creation time in unix millis, used for export file names only
	Timestamp int64 `json:"timestamp"`
}

// Day returns the record date at midnight in the given location.
func (w WorkoutRecord) Day(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, w.Date, loc)
}

// Store maps a date (YYYY-MM-DD) to the single workout record saved for it.
type Store map[string]WorkoutRecord

func (s Store) Records() []WorkoutRecord {
	records := make([]WorkoutRecord, 0, len(s))
	for _, w := range s {
		records = append(records, w)
	}
	return records
}

func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// CoerceCount converts user input to a non-negative count.
// The leading integer part of the input is used ("12abc" -> 12), anything
// unparsable becomes 0 and negative values are clamped to 0.
func CoerceCount(value string) int {
	value = strings.TrimSpace(value)

	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(value[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
