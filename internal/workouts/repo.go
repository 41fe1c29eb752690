package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save stores the workout for its date, overwriting any workout already saved for that date.
func (r *Repo) Save(ctx context.Context, workout WorkoutRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", workout.Date))

	day, err := time.Parse(DateLayout, workout.Date)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, workout.Date)
	}

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout (date, exercises, photo, created_at_ms)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (date) DO UPDATE
				SET exercises = EXCLUDED.exercises,
					photo = EXCLUDED.photo,
					created_at_ms = EXCLUDED.created_at_ms;`,
		day, exercisesJson, workout.Photo, workout.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("upsert workout %s: %w", workout.Date, err)
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, date string) (_ *WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT date, exercises, photo, created_at_ms FROM workout WHERE date = $1;`,
		day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

// ListAll loads the whole workouts store.
func (r *Repo) ListAll(ctx context.Context) (_ Store, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT date, exercises, photo, created_at_ms FROM workout ORDER BY date;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2workouts: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(workouts)))

	store := make(Store, len(workouts))
	for _, w := range workouts {
		store[w.Date] = w
	}
	return store, nil
}

// ClearAll deletes all the stored workouts and returns the number of deleted rows.
func (r *Repo) ClearAll(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.clearall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout;`)
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("deleted", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]WorkoutRecord, error) {
	workouts := make([]WorkoutRecord, 0)
	for rows.Next() {
		var date time.Time
		var exercisesBytes []byte
		var photo *string
		var createdAtMs int64
		if err := rows.Scan(&date, &exercisesBytes, &photo, &createdAtMs); err != nil {
			return nil, err
		}

		w := WorkoutRecord{
			Date:      date.Format(DateLayout),
			Timestamp: createdAtMs,
		}
		if photo != nil {
			w.Photo = *photo
		}

		// missing exercises are repaired to zero records by Exercises.UnmarshalJSON
		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &w.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for workout %s: %w", w.Date, err)
			}
		}

		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}
