package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/chitwa-lm/admissions-verifier/internal/config"
	"github.com/chitwa-lm/admissions-verifier/internal/core/ports"
	"github.com/chitwa-lm/admissions-verifier/internal/core/usecase"
	"github.com/chitwa-lm/admissions-verifier/internal/infrastructure/extractor"
	"github.com/chitwa-lm/admissions-verifier/internal/infrastructure/llm/ollama"
	"github.com/chitwa-lm/admissions-verifier/internal/infrastructure/queue/nats"
	"github.com/chitwa-lm/admissions-verifier/internal/infrastructure/repository/postgres"
	"github.com/chitwa-lm/admissions-verifier/internal/infrastructure/resilience"
	"github.com/chitwa-lm/admissions-verifier/internal/infrastructure/storage/localfs"
	"github.com/chitwa-lm/admissions-verifier/internal/verifier/heuristic"
	"github.com/chitwa-lm/admissions-verifier/internal/verifier/score"
	"github.com/chitwa-lm/admissions-verifier/internal/verifier/signatures"
)

type App struct {
	Config     config.Config
	Signatures *signatures.Table

	Queue     ports.MessageQueue
	Repo      ports.DocumentRepository
	IngestUC  ports.DocumentIngestor
	VerifyUC  ports.DocumentVerifier
	ProcessUC ports.DocumentProcessor

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

	table, err := signatures.LoadFile(cfg.SignaturesPath)
	if err != nil {
		return nil, fmt.Errorf("load signature table: %w", err)
	}

	analyzer, err := buildAnalyzer(cfg, table, executor)
	if err != nil {
		return nil, err
	}

	verifyUC := usecase.NewVerifyDocumentUseCase(extractor.New(), analyzer, score.NewAggregator(table))
	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue)
	processUC := usecase.NewProcessDocumentUseCase(repo, storage, verifyUC)

	return &App{
		Config:     cfg,
		Signatures: table,

		Queue:     queue,
		Repo:      repo,
		IngestUC:  ingestUC,
		VerifyUC:  verifyUC,
		ProcessUC: processUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func buildAnalyzer(cfg config.Config, table *signatures.Table, executor *resilience.Executor) (ports.DocumentAnalyzer, error) {
	switch cfg.VerifierMode {
	case "", "heuristic":
		return heuristic.NewAnalyzer(table), nil
	case "llm":
		client := ollama.New(cfg.OllamaURL, cfg.OllamaModel)
		timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second
		return ollama.NewAnalyzer(client, table, executor, timeout), nil
	default:
		return nil, fmt.Errorf("unknown verifier mode %q (want heuristic or llm)", cfg.VerifierMode)
	}
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
