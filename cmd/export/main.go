package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/workouts"
)

// export dumps all saved workouts to a single JSON document, in the same
// format accepted by POST /import.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	outDir := flag.String("out", ".", "directory to write the export file to")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("FITTRACK_DB_USER"),
		DBPassword: os.Getenv("FITTRACK_DB_PASS"),
		MaxConns:   2,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	store, err := workouts.NewRepo(dbPool).ListAll(ctx)
	if err != nil {
		log.Fatalf("list workouts: %s", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create out dir: %s", err)
	}
	outPath := filepath.Join(*outDir, workouts.ExportFileName(time.Now()))
	if err := writeExport(outPath, store); err != nil {
		log.Fatalf("write export: %s", err)
	}

	log.Infof("exported %d workouts to %s", len(store), outPath)
}

func writeExport(path string, store workouts.Store) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return workouts.EncodeStore(f, store)
}
