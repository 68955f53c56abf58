package handler

import (
	"net/http"

	"github.com/vfg2006/bitsblog-admin/internal/api/handler/router"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/authorizing"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/managing"
	"github.com/vfg2006/bitsblog-admin/pkg/middleware"
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

// Admin retorna as rotas genéricas de listagem e mutação dos recursos do painel
func Admin(h ResourceHandlers, guard *authorizing.Guard) []router.Route {
	staffOnly := []func(http.Handler) http.Handler{middleware.StaffOnly(guard)}

	return []router.Route{
		{
			Path:        "/v1/overview",
			Method:      http.MethodGet,
			Handler:     h.Overview(),
			Middlewares: staffOnly,
		},
		{
			Path:        "/v1/admin/:resource",
			Method:      http.MethodGet,
			Handler:     h.List(),
			Middlewares: staffOnly,
		},
		{
			Path:        "/v1/admin/:resource",
			Method:      http.MethodPost,
			Handler:     h.Create(),
			Middlewares: staffOnly,
		},
		{
			Path:        "/v1/admin/:resource/:key",
			Method:      http.MethodPatch,
			Handler:     h.Update(),
			Middlewares: staffOnly,
		},
		{
			Path:        "/v1/admin/:resource/:key",
			Method:      http.MethodDelete,
			Handler:     h.Delete(),
			Middlewares: staffOnly,
		},
		{
			Path:        "/v1/admin/:resource/:key/status",
			Method:      http.MethodPost,
			Handler:     h.Transition(),
			Middlewares: staffOnly,
		},
		{
			Path:        "/v1/admin/:resource/:key/actions/:verb",
			Method:      http.MethodPost,
			Handler:     h.ItemAction(),
			Middlewares: staffOnly,
		},
		{
			Path:        "/v1/actions/:resource/:verb",
			Method:      http.MethodPost,
			Handler:     h.CollectionAction(),
			Middlewares: staffOnly,
		},
	}
}

// Public retorna as rotas abertas usadas pelos widgets do blog
func Public(service managing.PublicService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/newsletter/subscribe",
			Method:  http.MethodPost,
			Handler: Subscribe(service),
		},
		{
			Path:    "/v1/newsletter/verify/:token",
			Method:  http.MethodGet,
			Handler: VerifySubscription(service),
		},
		{
			Path:    "/v1/newsletter/unsubscribe/:token",
			Method:  http.MethodGet,
			Handler: Unsubscribe(service),
		},
		{
			Path:    "/v1/contact",
			Method:  http.MethodPost,
			Handler: SendContactMessage(service),
		},
	}
}

func CronJobs(services CronJobServices, guard *authorizing.Guard) []router.Route {
	staffOnly := []func(http.Handler) http.Handler{middleware.StaffOnly(guard)}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: staffOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: staffOnly,
		},
	}
}
