package photos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"
)

var (
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrInvalidPhotoName = errors.New("invalid photo name")
)

// daily logs are kept apart from the photos, under this folder (or key prefix)
const dailyLogsDir = "logs"

var (
	photoNameRegex    = regexp.MustCompile(`^workout_\d{4}-\d{2}-\d{2}_\d+\.(jpg|png|webp|heic)$`)
	dailyLogNameRegex = regexp.MustCompile(`^workout_\d{4}-\d{2}-\d{2}\.json$`)
)

// Storage keeps workout photos as opaque blobs, no processing is done on them.
// Next to the photos it keeps one JSON log file per workout day.
type Storage interface {
	// Save stores the photo taken for the workout date and returns its name
	Save(ctx context.Context, date, contentType string, photo io.Reader) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Delete removes one photo, a missing photo is not an error
	Delete(ctx context.Context, name string) error
	// SaveDailyLog writes (or overwrites) the log of the workout date
	SaveDailyLog(ctx context.Context, date string, data []byte) error
	// Clear removes all stored photos and daily logs
	Clear(ctx context.Context) error
}

// PhotoName builds the stored name for a photo of the workout on the given date.
func PhotoName(date, contentType string, at time.Time) string {
	return fmt.Sprintf("workout_%s_%d.%s", date, at.UnixMilli(), extension(contentType))
}

// DailyLogName is the name of a single day's workout log.
func DailyLogName(date string) string {
	return fmt.Sprintf("workout_%s.json", date)
}

func validDailyLogName(date string) (string, error) {
	name := DailyLogName(date)
	if !dailyLogNameRegex.MatchString(name) {
		return "", fmt.Errorf("invalid daily log date: %q", date)
	}
	return name, nil
}

func ValidateName(name string) error {
	if !photoNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidPhotoName, name)
	}
	return nil
}

func ContentTypeOf(name string) string {
	switch {
	case hasExt(name, ".png"):
		return "image/png"
	case hasExt(name, ".webp"):
		return "image/webp"
	case hasExt(name, ".heic"):
		return "image/heic"
	default:
		return "image/jpeg"
	}
}

func extension(contentType string) string {
	switch contentType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	default:
		return "jpg"
	}
}

func hasExt(name, ext string) bool {
	return len(name) > len(ext) && name[len(name)-len(ext):] == ext
}
