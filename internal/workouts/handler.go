package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/fittrack/internal/photos"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxPhotoUploadSize = 20 << 20 // 20 MB

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Save(ctx context.Context, workout WorkoutRecord) (*WorkoutRecord, error)
	Get(ctx context.Context, date string) (*WorkoutRecord, error)
	Snapshot(ctx context.Context) (Store, error)
	Stats(ctx context.Context, period Period) (*StatsResponse, error)
	Chart(ctx context.Context, period Period, kind ExerciseKind, metric Metric) (*ChartSeries, error)
	Photos(ctx context.Context) ([]WorkoutRecord, error)
	AttachPhoto(ctx context.Context, date, contentType string, photo io.Reader) (*WorkoutRecord, error)
	OpenPhoto(ctx context.Context, name string) (io.ReadCloser, error)
	Export(ctx context.Context) (*ExportResponse, error)
	Import(ctx context.Context, r io.Reader) (int, error)
	ClearAll(ctx context.Context) (int64, error)
}

type ClearAllResponse struct {
	Deleted int64 `json:"deleted"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the workout routes; write routes are returned on a
// separate subrouter so the caller can add write-only middleware (rate limiting).
func (handler *Handler) SetupRoutes(r *mux.Router) *mux.Router {
	r.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{date}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("stats")
	r.HandleFunc("/stats/chart/{exercise}/{metric}", handler.HandleChart).Methods("GET", "OPTIONS").Name("stats-chart")
	r.HandleFunc("/photos", handler.HandlePhotos).Methods("GET", "OPTIONS").Name("list-photos")
	r.HandleFunc("/photos/{name}", handler.HandleGetPhoto).Methods("GET", "OPTIONS").Name("get-photo")
	r.HandleFunc("/export", handler.HandleExport).Methods("GET", "OPTIONS").Name("export")

	writeRouter := r.NewRoute().Subrouter()
	writeRouter.HandleFunc("/workouts", handler.HandleSave).Methods("POST", "OPTIONS").Name("save-workout")
	writeRouter.HandleFunc("/workouts/form", handler.HandleSaveForm).Methods("POST", "OPTIONS").Name("save-workout-form")
	writeRouter.HandleFunc("/workouts/{date}/photo", handler.HandleUploadPhoto).Methods("POST", "OPTIONS").Name("upload-photo")
	writeRouter.HandleFunc("/workouts", handler.HandleClearAll).Methods("DELETE", "OPTIONS").Name("clear-all")
	writeRouter.HandleFunc("/import", handler.HandleImport).Methods("POST", "OPTIONS").Name("import")

	return writeRouter
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save")
	defer span.End()

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout WorkoutRecord
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("save workout, unmarshal json: %s", err)
		http.Error(w, "save workout failed", http.StatusBadRequest)
		return
	}

	// counts are never negative
	for _, kind := range ExerciseKinds {
		rec := workout.Exercises[kind]
		workout.Exercises[kind] = ExerciseRecord{Max: max(rec.Max, 0), Total: max(rec.Total, 0)}
	}

	handler.save(ctx, w, workout)
}

// HandleSaveForm saves a workout from form values: date, photo, and
// <exercise>_max / <exercise>_total for every exercise (e.g. pushups_max).
func (handler *Handler) HandleSaveForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.saveform")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("save workout failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	workout := WorkoutRecord{
		Date:  r.Form.Get("date"),
		Photo: r.Form.Get("photo"),
	}
	for _, kind := range ExerciseKinds {
		workout.Exercises[kind] = ExerciseRecord{
			Max:   CoerceCount(r.Form.Get(kind.String() + "_max")),
			Total: CoerceCount(r.Form.Get(kind.String() + "_total")),
		}
	}

	handler.save(ctx, w, workout)
}

func (handler *Handler) save(ctx context.Context, w http.ResponseWriter, workout WorkoutRecord) {
	saved, err := handler.service.Save(ctx, workout)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to save workout [%s]: %s", workout.Date, err)
		http.Error(w, "error, failed to save workout", http.StatusInternalServerError)
		return
	}

	savedJson, err := json.Marshal(saved)
	if err != nil {
		log.Errorf("failed to marshal saved workout: %s", err)
		http.Error(w, "error, failed to save workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout saved: %s", savedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	date := mux.Vars(r)["date"]
	workout, err := handler.service.Get(ctx, date)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrWorkoutNotFound):
			http.Error(w, "workout not found", http.StatusNotFound)
		default:
			log.Errorf("failed to get workout %s: %s", date, err)
			http.Error(w, "failed to get workout", http.StatusInternalServerError)
		}
		return
	}

	handler.writeJSON(w, workout)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	store, err := handler.service.Snapshot(ctx)
	if err != nil {
		log.Errorf("failed to list workouts: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, store)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	period := periodFromRequest(r)
	stats, err := handler.service.Stats(ctx, period)
	if err != nil {
		log.Errorf("failed to get stats for period [%s]: %s", period, err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, stats)
}

func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.chart")
	defer span.End()

	vars := mux.Vars(r)
	kind, err := ParseExerciseKind(vars["exercise"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metric, err := ParseMetric(vars["metric"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	last := 0
	if lastStr := r.URL.Query().Get("last"); lastStr != "" {
		last, err = strconv.Atoi(lastStr)
		if err != nil || last < 0 {
			http.Error(w, "invalid last parameter (must be non negative integer)", http.StatusBadRequest)
			return
		}
	}

	period := periodFromRequest(r)
	series, err := handler.service.Chart(ctx, period, kind, metric)
	if err != nil {
		log.Errorf("failed to get chart [%s] [%s] for period [%s]: %s", kind, metric, period, err)
		http.Error(w, "failed to get chart data", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, series.Last(last))
}

func (handler *Handler) HandlePhotos(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.photos")
	defer span.End()

	withPhotos, err := handler.service.Photos(ctx)
	if err != nil {
		log.Errorf("failed to list workout photos: %s", err)
		http.Error(w, "failed to list photos", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, withPhotos)
}

func (handler *Handler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.uploadphoto")
	defer span.End()

	date := mux.Vars(r)["date"]
	if err := ValidateDate(date); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoUploadSize)
	if err := r.ParseMultipartForm(maxPhotoUploadSize); err != nil {
		log.Tracef("upload photo, parse multipart form: %s", err)
		http.Error(w, "invalid photo upload", http.StatusBadRequest)
		return
	}

	photo, header, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "photo file missing", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := photo.Close(); err != nil {
			log.Warnf("close uploaded photo: %s", err)
		}
	}()

	workout, err := handler.service.AttachPhoto(ctx, date, header.Header.Get("Content-Type"), photo)
	if err != nil {
		log.Errorf("failed to attach photo to workout [%s]: %s", date, err)
		http.Error(w, "failed to save photo", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "failed to marshal workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleGetPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getphoto")
	defer span.End()

	name := mux.Vars(r)["name"]
	photo, err := handler.service.OpenPhoto(ctx, name)
	if err != nil {
		if errors.Is(err, photos.ErrPhotoNotFound) || errors.Is(err, photos.ErrInvalidPhotoName) {
			http.Error(w, "photo not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to open photo %s: %s", name, err)
		http.Error(w, "failed to get photo", http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := photo.Close(); err != nil {
			log.Warnf("close photo %s: %s", name, err)
		}
	}()

	w.Header().Set("Content-Type", photos.ContentTypeOf(name))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, photo); err != nil {
		log.Errorf("failed to write photo %s: %s", name, err)
	}
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.export")
	defer span.End()

	export, err := handler.service.Export(ctx)
	if err != nil {
		log.Errorf("failed to export workouts: %s", err)
		http.Error(w, "failed to export workouts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, export.Data)
}

func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.import")
	defer span.End()

	imported, err := handler.service.Import(ctx, r.Body)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrInvalidExport) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to import workouts, imported %d: %s", imported, err)
		http.Error(w, "failed to import workouts", http.StatusInternalServerError)
		return
	}

	log.Infof("imported %d workouts", imported)
	handler.writeJSON(w, ImportResponse{Imported: imported})
}

func (handler *Handler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.clearall")
	defer span.End()

	deleted, err := handler.service.ClearAll(ctx)
	if err != nil {
		log.Errorf("failed to clear all data: %s", err)
		http.Error(w, "failed to clear data", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, ClearAllResponse{Deleted: deleted})
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

// periodFromRequest reads the period query param, defaulting to today.
func periodFromRequest(r *http.Request) Period {
	period := r.URL.Query().Get("period")
	if period == "" {
		return PeriodToday
	}
	return Period(period)
}
