package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cafemap/config"
	logs "cafemap/internal/infra/log"
	"cafemap/internal/infra/persistence"
	"cafemap/internal/infra/pubsub"
	"cafemap/internal/usecase"
	"cafemap/internal/usecase/impl"
	"cafemap/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func runLoad(ctx context.Context, sourceURL, key string, wipe bool, featuredKeywords []string) error {
	start := time.Now()

	data, err := readPayload(ctx, sourceURL, key)
	if err != nil {
		return err
	}
	featured := prepareRecords(data.Records, featuredKeywords)

	var (
		importer usecase.ImportUsecase
		logger   *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			persistence.New,
			util.NewKeyMutex,
			impl.NewRatingAggregator,
			impl.NewModerationService,
			impl.NewImportService,
		),
		pubsub.Module,
		fx.Populate(&importer, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build importer")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start importer")
	}
	defer func() {
		if stopErr := app.Stop(context.Background()); stopErr != nil {
			logger.Error("Failed to stop importer", slog.Any("error", stopErr))
		}
	}()

	logger.Info("Loaded import payload",
		slog.String("source", sourceURL),
		slog.String("key", key),
		slog.String("size", util.FormatBytes(data.Size)),
		slog.String("sha256", data.Checksum),
		slog.Int("records", len(data.Records)),
		slog.Int("featured", featured),
		slog.String("elapsed", util.FormatDuration(data.Elapsed)),
	)

	result, err := importer.Import(ctx, data.Records, usecase.ImportOptions{Wipe: wipe})
	if err != nil {
		return errors.Wrap(err, "import aborted")
	}

	for _, skipped := range result.Skipped {
		logger.Warn("Skipped import record", slog.String("reason", skipped))
	}
	logger.Info("Import finished",
		slog.Int64("wiped", result.Wiped),
		slog.Int("cafes", result.CafesCreated),
		slog.Int("reviews", result.ReviewsLoaded),
		slog.Int("skipped", len(result.Skipped)),
		slog.String("took", util.FormatDuration(time.Since(start))),
	)
	fmt.Printf("Imported %d cafes and %d reviews\n", result.CafesCreated, result.ReviewsLoaded)

	return nil
}
