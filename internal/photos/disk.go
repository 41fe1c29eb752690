package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var _ Storage = (*DiskStorage)(nil)

// DiskStorage keeps photos as files in a single root folder, and the daily
// logs in its logs/ sub folder.
type DiskStorage struct {
	rootPath string
	now      func() time.Time
}

func NewDiskStorage(rootPath string) (*DiskStorage, error) {
	if rootPath == "" {
		return nil, errors.New("photos root path empty")
	}

	for _, dir := range []string{rootPath, filepath.Join(rootPath, dailyLogsDir)} {
		exists, err := pkg.PathExists(dir, true)
		if err != nil {
			return nil, fmt.Errorf("check photos dir: %w", err)
		}
		if exists {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create photos dir: %w", err)
		}
		log.Debugf("created photos dir: %s", dir)
	}

	return &DiskStorage{
		rootPath: rootPath,
		now:      time.Now,
	}, nil
}

func (d *DiskStorage) Save(ctx context.Context, date, contentType string, photo io.Reader) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := PhotoName(date, contentType, d.now())
	span.SetAttributes(attribute.String("name", name))

	written, err := writeFile(d.rootPath, name, photo)
	if err != nil {
		return "", fmt.Errorf("write photo file: %w", err)
	}
	span.SetAttributes(attribute.Int64("size", written))

	return name, nil
}

func (d *DiskStorage) Open(ctx context.Context, name string) (_ io.ReadCloser, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.open")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))

	if err := ValidateName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(d.rootPath, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return f, nil
}

func (d *DiskStorage) Delete(ctx context.Context, name string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", name))

	if err := ValidateName(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(d.rootPath, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove photo %s: %w", name, err)
	}
	return nil
}

func (d *DiskStorage) SaveDailyLog(ctx context.Context, date string, data []byte) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.savedailylog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name, err := validDailyLogName(date)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("name", name))

	if _, err := writeFile(filepath.Join(d.rootPath, dailyLogsDir), name, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write daily log: %w", err)
	}
	return nil
}

func (d *DiskStorage) Clear(ctx context.Context) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	removedPhotos, err := removeMatching(d.rootPath, func(name string) bool {
		return ValidateName(name) == nil
	})
	if err != nil {
		return fmt.Errorf("clear photos: %w", err)
	}
	removedLogs, err := removeMatching(filepath.Join(d.rootPath, dailyLogsDir), dailyLogNameRegex.MatchString)
	if err != nil {
		return fmt.Errorf("clear daily logs: %w", err)
	}

	span.SetAttributes(attribute.Int("removed", removedPhotos+removedLogs))
	log.Debugf("removed %d photos and %d daily logs from %s", removedPhotos, removedLogs, d.rootPath)
	return nil
}

// writeFile writes into a hidden temp file first and renames it into place,
// so a failed write never leaves a partial file under the final name.
func writeFile(dir, name string, r io.Reader) (written int64, err error) {
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			if removeErr := os.Remove(tmp.Name()); removeErr != nil && !os.IsNotExist(removeErr) {
				log.Warnf("remove temp file %s: %s", tmp.Name(), removeErr)
			}
		}
	}()

	written, err = io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return 0, fmt.Errorf("rename temp file: %w", err)
	}
	return written, nil
}

func removeMatching(dir string, match func(name string) bool) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read dir %s: %w", dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !match(entry.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}
