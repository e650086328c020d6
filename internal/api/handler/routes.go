package handler

import (
	"net/http"

	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/api/handler/router"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/dispatching"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/endpoint"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/pool"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Placements(placementPool pool.Pool, placementRepo repository.PlacementRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/placements/link",
			Method:  http.MethodPost,
			Handler: LinkPlacement(placementPool),
		},
		{
			Path:    "/v1/placements/:id",
			Method:  http.MethodDelete,
			Handler: UnlinkPlacement(placementPool),
		},
		{
			Path:    "/v1/accounts/:id/placements",
			Method:  http.MethodGet,
			Handler: ListPlacements(placementRepo),
		},
		{
			Path:    "/v1/accounts/:id/pool",
			Method:  http.MethodGet,
			Handler: GetPoolState(placementPool),
		},
	}
}

func Directives(directiveRepo repository.DirectiveRepository, accountRepo repository.AccountRepository, resolver endpoint.Resolver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/directives",
			Method:  http.MethodGet,
			Handler: ListDirectives(directiveRepo),
		},
		{
			Path:    "/v1/directives/:id/endpoint",
			Method:  http.MethodPut,
			Handler: UpdateDirectiveEndpoint(directiveRepo),
		},
		{
			Path:    "/v1/directives/:id/endpoint",
			Method:  http.MethodGet,
			Handler: ResolveDirectiveEndpoint(directiveRepo, accountRepo, resolver),
		},
	}
}

func Dispatching(dispatcher dispatching.Dispatcher, batchRepo repository.DispatchBatchRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dispatch",
			Method:  http.MethodPost,
			Handler: DispatchBatch(dispatcher),
		},
		{
			Path:    "/v1/accounts/:id/batches",
			Method:  http.MethodGet,
			Handler: ListBatchReports(dispatcher, batchRepo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
