package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/adsops/campaign-optimizer-api/infrastructure/integrator/llm/llmclient"
	"github.com/adsops/campaign-optimizer-api/infrastructure/integrator/meta"
	"github.com/adsops/campaign-optimizer-api/infrastructure/integrator/meta/metaclient"
	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/api"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/scheduler"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/dispatching"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/endpoint"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/metrics"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/pool"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/scoring"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	directiveRepo := repository.NewDirectiveRepository(pgConn)
	placementRepo := repository.NewPlacementRepository(pgConn)
	snapshotRepo := repository.NewMetricSnapshotRepository(pgConn)
	batchRepo := repository.NewDispatchBatchRepository(pgConn)

	tokenManager := metaclient.NewTokenManager(cfg)
	tokenManager.InitToken()
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	llmClient := llmclient.NewClient(cfg)

	metricsCache := metrics.NewService(cfg, snapshotRepo, placementRepo, metaIntegrator)
	placementPool := pool.NewService(placementRepo, metaIntegrator)
	endpointResolver := endpoint.NewService(accountRepo, metaIntegrator)

	dispatcher := dispatching.NewService(
		cfg,
		batchRepo,
		placementRepo,
		directiveRepo,
		accountRepo,
		placementPool,
		endpointResolver,
		metaIntegrator,
	)

	scorer := scoring.NewScorer(cfg, llmClient)

	notifier := scheduler.NewLogNotifier()

	optimizationLoopService := scheduler.NewOptimizationLoopService(
		accountRepo,
		directiveRepo,
		placementRepo,
		snapshotRepo,
		batchRepo,
		metricsCache,
		placementPool,
		scorer,
		dispatcher,
		notifier,
		cfg,
	)

	snapshotRetentionService := scheduler.NewSnapshotRetentionService(snapshotRepo, cfg)

	// Inicia os agendadores em background
	if err := optimizationLoopService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do loop de otimização")
	} else {
		logrus.Info("Agendador do loop de otimização iniciado com sucesso")
	}

	if err := snapshotRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da retenção de snapshots")
	} else {
		logrus.Info("Agendador da retenção de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		placementPool,
		dispatcher,
		endpointResolver,
		accountRepo,
		directiveRepo,
		placementRepo,
		batchRepo,
		optimizationLoopService,
		snapshotRetentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
