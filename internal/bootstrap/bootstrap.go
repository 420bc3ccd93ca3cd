package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/kirillkom/docsight/internal/analysis"
	"github.com/kirillkom/docsight/internal/config"
	"github.com/kirillkom/docsight/internal/core/ports"
	"github.com/kirillkom/docsight/internal/core/usecase"
	"github.com/kirillkom/docsight/internal/infrastructure/extractor"
	"github.com/kirillkom/docsight/internal/infrastructure/ocr"
	"github.com/kirillkom/docsight/internal/infrastructure/queue/nats"
	"github.com/kirillkom/docsight/internal/infrastructure/repository/postgres"
	"github.com/kirillkom/docsight/internal/infrastructure/resilience"
	"github.com/kirillkom/docsight/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/docsight/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Queue ports.MessageQueue
	Repo  ports.DocumentRepository

	IngestUC  ports.DocumentIngestor
	QueryUC   ports.DocumentReader
	ProcessUC ports.DocumentProcessor

	HTTPMetrics   *metrics.HTTPServerMetrics
	WorkerMetrics *metrics.WorkerMetrics

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	ocrClient := ocr.NewWithOptions(cfg.OCRURL, cfg.OCRLanguage, ocr.Options{
		Timeout:            time.Duration(cfg.OCRTimeoutSeconds) * time.Second,
		ResilienceExecutor: executor,
	})

	engine := analysis.NewEngine()
	textExtractor := extractor.New(ocrClient)
	workerMetrics := metrics.NewWorkerMetrics("worker")

	analyzeUC := usecase.NewAnalyzeDocumentUseCase(
		textExtractor,
		engine,
		time.Duration(cfg.ExtractTimeoutSeconds)*time.Second,
	)
	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue)
	processUC := usecase.NewProcessDocumentUseCase(
		repo,
		storage,
		analyzeUC,
		engine,
		cfg.DegradedMetadataFallback,
		workerObserver{m: workerMetrics},
	)
	queryUC := usecase.NewQueryDocumentsUseCase(repo)

	return &App{
		Config: cfg,
		Queue:  queue,
		Repo:   repo,

		IngestUC:  ingestUC,
		QueryUC:   queryUC,
		ProcessUC: processUC,

		HTTPMetrics:   metrics.NewHTTPServerMetrics("api"),
		WorkerMetrics: workerMetrics,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

type workerObserver struct {
	m *metrics.WorkerMetrics
}

func (o workerObserver) DocumentAnalyzed(documentType string, degraded bool) {
	o.m.RecordAnalyzedDocument("worker", documentType)
	if degraded {
		o.m.RecordDegradedDocument("worker")
	}
}
