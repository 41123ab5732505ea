package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/okafor-dev/pdfproc/gen/proto/pdfproc/v1"
	"github.com/okafor-dev/pdfproc/internal/async"
	"github.com/okafor-dev/pdfproc/internal/cascade"
	"github.com/okafor-dev/pdfproc/internal/common"
	"github.com/okafor-dev/pdfproc/internal/export"
	"github.com/okafor-dev/pdfproc/internal/ingest"
	"github.com/okafor-dev/pdfproc/internal/llm/backends"
	"github.com/okafor-dev/pdfproc/internal/normalize"
	"github.com/okafor-dev/pdfproc/internal/pdf"
	processor "github.com/okafor-dev/pdfproc/internal/pipeline"
	repo "github.com/okafor-dev/pdfproc/internal/repository"
	svc "github.com/okafor-dev/pdfproc/internal/server"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.EnsureDirs(); err != nil {
		logger.Error("failed to create data directories", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "db_url", cfg.Database.DSN)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		logger.Error("failed to run schema migration", "error", err)
		os.Exit(1)
	}
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)

	backend, err := backends.New(cfg.LLM, logger)
	if err != nil {
		logger.Error("failed to build LLM backend", "provider", cfg.LLM.Provider, "error", err)
		os.Exit(1)
	}
	casc := cascade.New(backend, cfg.LLM.ConfidenceThreshold, logger)
	normalizer := normalize.New(cfg.Paths.ShortnamesPath, logger)
	docs := pdf.NewService(cfg.Paths.ProcessedDir, logger)

	proc := processor.NewProcessor(logger, docs, casc, normalizer, jobsRepo, invoicesRepo)
	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Workers.Count),
		async.WithQueueSize(cfg.Workers.QueueSize),
		async.WithProcessTimeout(cfg.Workers.JobTimeout),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	exporter := export.NewService(invoicesRepo, logger)
	invoiceService := svc.NewInvoiceService(jobsRepo, invoicesRepo, queue, exporter, cfg.Paths.UploadDir, logger)
	v1.RegisterInvoiceServiceServer(grpcServer, invoiceService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	if cfg.Paths.InboxDir != "" {
		inbox := ingest.NewInbox(jobsRepo, queue, cfg.Paths.UploadDir, logger)
		go func() {
			if err := inbox.Run(ctx, cfg.Paths.InboxDir); err != nil {
				logger.Error("inbox watcher stopped", "dir", cfg.Paths.InboxDir, "error", err)
			}
		}()
	}

	logger.Info("pdfprocd listening",
		"addr", cfg.Server.GRPCAddr,
		"provider", cfg.LLM.Provider,
		"model_text", cfg.LLM.TextModel,
		"model_vision", cfg.LLM.VisionModel,
		"confidence_threshold", cfg.LLM.ConfidenceThreshold,
	)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
