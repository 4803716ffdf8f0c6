package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sourabh020820033/learning-path/adapters/event"
	tallyUC "github.com/sourabh020820033/learning-path/internal/application/usecase/tally"
	"github.com/sourabh020820033/learning-path/internal/config"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

const topEntries = 5

func main() {
	fmt.Println("Starting Learning Path Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: cannot load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("KAFKA_BROKERS is required for the worker", nil)
	}

	tally := tallyUC.NewTallyUseCase(appLogger)
	snapshotEvery := max(1, cfg.Worker.SnapshotEvery)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicAnalysisEvents,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicAnalysisEvents), zap.String("group_id", cfg.Kafka.GroupID))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				break
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		evt, err := event.DecodeAnalysisEvent(msg)
		if err != nil {
			appLogger.Warn("Skipping undecodable message", zap.Int64("offset", msg.Offset), zap.Error(err))
			commitMessage(ctx, consumer, msg, appLogger)
			continue
		}

		if n := tally.Record(ctx, evt); n%snapshotEvery == 0 {
			s := tally.Snapshot(topEntries)
			appLogger.Info("Analysis tally",
				zap.Int("analyses", s.Analyses),
				zap.Int("cached", s.Cached),
				zap.Int("average_completion_rate", s.AverageCompletionRate),
				zap.Any("top_goals", s.TopGoals),
				zap.Any("top_missing_skills", s.TopMissingSkills),
			)
		}

		commitMessage(ctx, consumer, msg, appLogger)
	}

	appLogger.Info("Worker stopped", zap.Any("final_tally", tally.Snapshot(topEntries)))
}

func commitMessage(ctx context.Context, consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}
