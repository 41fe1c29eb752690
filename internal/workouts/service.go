package workouts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Save(ctx context.Context, workout WorkoutRecord) error
	Get(ctx context.Context, date string) (*WorkoutRecord, error)
	ListAll(ctx context.Context) (Store, error)
	ClearAll(ctx context.Context) (int64, error)
}

type snapshotCache interface {
	Get() (Store, bool)
	Generation() uint64
	Set(store Store, generation uint64) bool
	Invalidate()
}

type photoStorage interface {
	Save(ctx context.Context, date, contentType string, photo io.Reader) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
	SaveDailyLog(ctx context.Context, date string, data []byte) error
	Clear(ctx context.Context) error
}

type serviceMetrics interface {
	WorkoutSaved()
	StatsQueried(period string)
	SnapshotCacheLookup(hit bool)
}

type StatsResponse struct {
	Period   Period       `json:"period"`
	Interval Interval     `json:"interval"`
	Stats    WorkoutStats `json:"stats"`
}

type ExportResponse struct {
	FileName string
	Data     []byte
}

type Service struct {
	repo    workoutsRepo
	cache   snapshotCache
	photos  photoStorage
	metrics serviceMetrics
	now     func() time.Time
}

type ServiceOption func(s *Service)

// WithClock replaces the wall clock used to resolve periods and creation timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func WithMetrics(m serviceMetrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(repo workoutsRepo, cache snapshotCache, photos photoStorage, opts ...ServiceOption) *Service {
	s := &Service{
		repo:    repo,
		cache:   cache,
		photos:  photos,
		metrics: noopMetrics{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save stores the workout, overwriting the one saved for the same date, and
// writes the daily log file for it.
func (s *Service) Save(ctx context.Context, workout WorkoutRecord) (_ *WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", workout.Date))

	if err := ValidateDate(workout.Date); err != nil {
		return nil, err
	}

	if workout.Timestamp == 0 {
		workout.Timestamp = s.now().UnixMilli()
	}

	if err := s.repo.Save(ctx, workout); err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}
	s.cache.Invalidate()
	s.metrics.WorkoutSaved()

	s.writeDailyLog(ctx, workout)

	return &workout, nil
}

// writeDailyLog failures are only logged, the database stays the source of truth.
func (s *Service) writeDailyLog(ctx context.Context, workout WorkoutRecord) {
	data, err := json.MarshalIndent(workout, "", "  ")
	if err != nil {
		log.Errorf("marshal daily log [%s]: %s", workout.Date, err)
		return
	}
	if err := s.photos.SaveDailyLog(ctx, workout.Date, data); err != nil {
		log.Warnf("failed to write daily log [%s]: %s", workout.Date, err)
	}
}

func (s *Service) Get(ctx context.Context, date string) (_ *WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, date)
}

// Snapshot returns the complete workouts store, served from the cache when possible.
func (s *Service) Snapshot(ctx context.Context) (_ Store, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if store, ok := s.cache.Get(); ok {
		s.metrics.SnapshotCacheLookup(true)
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return store, nil
	}
	s.metrics.SnapshotCacheLookup(false)
	span.SetAttributes(attribute.Bool("cache_hit", false))

	// saves landing during ListAll bump the generation, and the loaded store is not cached
	generation := s.cache.Generation()
	store, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all workouts: %w", err)
	}
	s.cache.Set(store, generation)

	return store, nil
}

func (s *Service) Stats(ctx context.Context, period Period) (_ *StatsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("period", string(period)))

	if _, known := ParsePeriod(string(period)); !known {
		log.Debugf("unknown period [%s], falling back to [%s]", period, PeriodToday)
	}

	store, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := FilterByPeriod(store, period, now)
	s.metrics.StatsQueried(string(period))

	return &StatsResponse{
		Period:   period,
		Interval: DateRange(now, period),
		Stats:    CalculateStats(filtered),
	}, nil
}

func (s *Service) Chart(ctx context.Context, period Period, kind ExerciseKind, metric Metric) (_ *ChartSeries, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.chart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("period", string(period)),
		attribute.String("exercise", kind.String()),
		attribute.String("metric", string(metric)),
	)

	store, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	series := ChartData(FilterByPeriod(store, period, s.now()), kind, metric)
	return &series, nil
}

// Photos returns the workouts that have a photo attached, newest first.
func (s *Service) Photos(ctx context.Context) (_ []WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.photos")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	store, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return WithPhotos(store), nil
}

// AttachPhoto stores the photo and links it to the workout saved for the date.
// A workout with all zero exercises is created if none exists for that date yet.
func (s *Service) AttachPhoto(ctx context.Context, date, contentType string, photo io.Reader) (_ *WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.attachphoto")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	workout, err := s.repo.Get(ctx, date)
	switch {
	case err == nil:
	case errors.Is(err, ErrWorkoutNotFound):
		workout = &WorkoutRecord{Date: date}
	default:
		return nil, fmt.Errorf("get workout: %w", err)
	}

	name, err := s.photos.Save(ctx, date, contentType, photo)
	if err != nil {
		return nil, fmt.Errorf("save photo: %w", err)
	}
	workout.Photo = name

	saved, err := s.Save(ctx, *workout)
	if err != nil {
		if delErr := s.photos.Delete(ctx, name); delErr != nil {
			log.Errorf("failed to delete orphaned photo %s: %s", name, delErr)
		}
		return nil, err
	}
	return saved, nil
}

func (s *Service) OpenPhoto(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.photos.Open(ctx, name)
}

// Export serializes the whole store into one JSON document.
func (s *Service) Export(ctx context.Context) (_ *ExportResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// export always reads fresh data
	store, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all workouts: %w", err)
	}

	var buf bytes.Buffer
	if err := EncodeStore(&buf, store); err != nil {
		return nil, fmt.Errorf("encode store: %w", err)
	}
	span.SetAttributes(attribute.Int("workouts", len(store)))

	return &ExportResponse{
		FileName: ExportFileName(s.now()),
		Data:     buf.Bytes(),
	}, nil
}

// Import saves every workout from an export document and returns how many were saved.
func (s *Service) Import(ctx context.Context, r io.Reader) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.import")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	store, err := DecodeStore(r)
	if err != nil {
		return 0, err
	}

	now := s.now().UnixMilli()
	imported := 0
	for _, w := range store.Records() {
		if w.Timestamp == 0 {
			w.Timestamp = now
		}
		if err := s.repo.Save(ctx, w); err != nil {
			s.cache.Invalidate()
			return imported, fmt.Errorf("import workout %s: %w", w.Date, err)
		}
		imported++
	}
	s.cache.Invalidate()
	span.SetAttributes(attribute.Int("imported", imported))

	return imported, nil
}

// ClearAll removes every stored workout, photo and daily log.
func (s *Service) ClearAll(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.clearall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deleted, err := s.repo.ClearAll(ctx)
	s.cache.Invalidate()
	if err != nil {
		return 0, fmt.Errorf("clear workouts: %w", err)
	}

	if err := s.photos.Clear(ctx); err != nil {
		return deleted, fmt.Errorf("clear photos: %w", err)
	}

	log.Warnf("cleared all data, %d workouts deleted", deleted)
	return deleted, nil
}

type noopMetrics struct{}

func (noopMetrics) WorkoutSaved()            {}
func (noopMetrics) StatsQueried(string)      {}
func (noopMetrics) SnapshotCacheLookup(bool) {}
