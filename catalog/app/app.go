package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/config"
	"github.com/Astemirdum/library-catalog/catalog/internal/events"
	"github.com/Astemirdum/library-catalog/catalog/internal/handler"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/catalog/internal/server"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
	"github.com/Astemirdum/library-catalog/catalog/migrations"
	"github.com/Astemirdum/library-catalog/pkg/auth"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	"github.com/Astemirdum/library-catalog/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "catalog")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var (
		publisher service.Publisher = events.Noop{}
		producer  *events.Publisher
		group     sarama.ConsumerGroup
	)
	if cfg.Kafka.Enable {
		if err := kafka.CreateTopics(cfg.Kafka, kafka.CatalogEventsTopic); err != nil {
			log.Warn("kafka.CreateTopics", zap.Error(err))
		}
		syncProducer, err := kafka.NewSyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewSyncProducer", zap.Error(err))
		}
		producer = events.NewPublisher(syncProducer, kafka.CatalogEventsTopic, log)
		publisher = producer
	}

	svc := service.NewService(repo, publisher, log,
		service.WithPageSize(cfg.Catalog.PageSize),
		service.WithSessionAge(cfg.Catalog.SessionAge),
	)

	if cfg.Kafka.Enable {
		group, err = kafka.NewConsumer(cfg.Kafka, kafka.CatalogEventsConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		go kafka.Consume(ctx, group, handler.NewConsumer(svc.RecordEvent, log), log, kafka.CatalogEventsTopic)
	}

	h := handler.New(svc, auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	if group != nil {
		if err := group.Close(); err != nil {
			log.Error("consumer close", zap.Error(err))
		}
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("producer close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

// Catalog is the service stack without the HTTP and Kafka layers, used by
// the operator CLI.
type Catalog struct {
	*service.Service
	db *pgxpool.Pool
}

func OpenCatalog(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Catalog, error) {
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, errors.Wrap(err, "db init")
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "repo")
	}
	svc := service.NewService(repo, events.Noop{}, log,
		service.WithPageSize(cfg.Catalog.PageSize),
		service.WithSessionAge(cfg.Catalog.SessionAge),
	)
	return &Catalog{Service: svc, db: db}, nil
}

func (c *Catalog) Close() {
	c.db.Close()
}
