package handler

import (
	"net/http"

	"github.com/vfg2006/adset-control-api/internal/api/handler/router"
	"github.com/vfg2006/adset-control-api/internal/usecases/adsetting"
	"github.com/vfg2006/adset-control-api/pkg/metrics"
)

func Healthcheck(metaConfigured bool) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(metaConfigured),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Hello(service adsetting.AdSetter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/hello",
			Method:  http.MethodGet,
			Handler: SayHello(service),
		},
	}
}

// AdSets são as rotas do comando "ads"
func AdSets(service adsetting.AdSetter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads/search",
			Method:  http.MethodGet,
			Handler: SearchAdSets(service),
		},
		{
			Path:    "/v1/ads/toggle",
			Method:  http.MethodPost,
			Handler: ToggleAdSets(service),
		},
		{
			Path:    "/v1/ads/status",
			Method:  http.MethodGet,
			Handler: AdSetStatus(service),
		},
		{
			Path:    "/v1/ads/list",
			Method:  http.MethodGet,
			Handler: ListAdSets(service),
		},
		{
			Path:    "/v1/ads/api-test",
			Method:  http.MethodGet,
			Handler: APITest(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/" + CronJobTypeBudgetWatch + "/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services, CronJobTypeBudgetWatch),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
