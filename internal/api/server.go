package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/api/handler"
	"github.com/adsops/campaign-optimizer-api/internal/api/handler/router"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/scheduler"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/dispatching"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/endpoint"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/pool"
	"github.com/adsops/campaign-optimizer-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	placementPool pool.Pool,
	dispatcher dispatching.Dispatcher,
	resolver endpoint.Resolver,
	accountRepo repository.AccountRepository,
	directiveRepo repository.DirectiveRepository,
	placementRepo repository.PlacementRepository,
	batchRepo repository.DispatchBatchRepository,
	optimizationLoopService *scheduler.OptimizationLoopService,
	snapshotRetentionService *scheduler.SnapshotRetentionService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		OptimizationLoopService:  optimizationLoopService,
		SnapshotRetentionService: snapshotRetentionService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Placements(placementPool, placementRepo)...),
		router.WithRoutes(handler.Directives(directiveRepo, accountRepo, resolver)...),
		router.WithRoutes(handler.Dispatching(dispatcher, batchRepo)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
