package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"hazardmap/config"
	logs "hazardmap/internal/infra/log"
	"hazardmap/internal/infra/loader"
	"hazardmap/internal/infra/persistence/database"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Supported subcommands:
// - hazards:  Load the terrain risk survey from CSV
// - shelters: Load emergency shelters from GeoJSON

func main() {
	hazardsCmd := flag.NewFlagSet(loader.KindHazards, flag.ExitOnError)
	sheltersCmd := flag.NewFlagSet(loader.KindShelters, flag.ExitOnError)

	hazardsCSV := hazardsCmd.String("csv", "./data/osaka_overall_risk.csv", "Hazard survey CSV file")
	hazardsReport := hazardsCmd.String("report", "", "Optional path of a JSON import report")

	sheltersGeoJSON := sheltersCmd.String("geojson", "./data/shelter_osaka.geojson", "Shelter GeoJSON FeatureCollection")
	sheltersReport := sheltersCmd.String("report", "", "Optional path of a JSON import report")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var (
		job importJob
		err error
	)

	switch os.Args[1] {
	case loader.KindHazards:
		err = hazardsCmd.Parse(os.Args[2:])
		job = importJob{kind: loader.KindHazards, source: *hazardsCSV, report: *hazardsReport}
	case loader.KindShelters:
		err = sheltersCmd.Parse(os.Args[2:])
		job = importJob{kind: loader.KindShelters, source: *sheltersGeoJSON, report: *sheltersReport}
	case "help", "-h", "--help":
		printUsage()

		return
	default:
		err = errors.Errorf("unknown subcommand %q", os.Args[1])
	}

	if err == nil {
		err = run(ctx, job)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type importJob struct {
	kind   string
	source string
	report string
}

func run(ctx context.Context, job importJob) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}

	db, err := database.Open(cfg.Database, database.NewGormLogger(logger, cfg))
	if err != nil {
		return err
	}
	defer closeDB(db, logger)

	if err := database.Migrate(db); err != nil {
		return err
	}

	source, err := loader.DescribeSource(job.source)
	if err != nil {
		return err
	}

	report := &loader.Report{Kind: job.kind, Source: source, StartedAt: time.Now().UTC()}
	importer := loader.NewImporter(database.NewHazardRepository(db), database.NewShelterRepository(db), logger)

	logger.Info("Starting import",
		slog.String("kind", job.kind),
		slog.String("file", source.Filename),
		slog.Int64("size_bytes", source.SizeBytes),
		slog.String("sha256", source.SHA256),
	)

	report.Result, err = importFile(ctx, importer, job)
	report.FinishedAt = time.Now().UTC()
	if err != nil {
		return err
	}

	logger.Info("Import finished",
		slog.String("kind", job.kind),
		slog.Int("inserted", report.Result.Inserted),
		slog.Int("skipped", report.Result.Skipped),
		slog.Int("rejected", report.Result.Rejected),
		slog.Duration("duration", report.Duration()),
	)

	if job.report != "" {
		return loader.SaveReport(job.report, report)
	}

	return nil
}

func importFile(ctx context.Context, importer *loader.Importer, job importJob) (loader.Result, error) {
	file, err := os.Open(job.source)
	if err != nil {
		return loader.Result{}, errors.Wrap(err, "failed to open source file")
	}
	defer file.Close()

	switch job.kind {
	case loader.KindHazards:
		parsed, err := loader.ReadHazardCSV(file)
		if err != nil {
			return loader.Result{}, err
		}

		return importer.ImportHazards(ctx, parsed)
	default:
		parsed, err := loader.ReadShelterGeoJSON(file)
		if err != nil {
			return loader.Result{}, err
		}

		return importer.ImportShelters(ctx, parsed)
	}
}

func closeDB(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("Failed to close database", slog.Any("error", err))
	}
}

func printUsage() {
	fmt.Println("Usage: importer <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  hazards   Load the terrain risk survey from CSV")
	fmt.Println("  shelters  Load emergency shelters from GeoJSON")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  importer hazards -csv ./data/osaka_overall_risk.csv")
	fmt.Println("  importer shelters -geojson ./data/shelter_osaka.geojson -report ./data/shelters.report.json")
}
