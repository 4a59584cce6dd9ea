// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	apidocsfeature "github.com/dalemusser/weshare/internal/app/features/apidocs"
	groupsfeature "github.com/dalemusser/weshare/internal/app/features/groups"
	healthfeature "github.com/dalemusser/weshare/internal/app/features/health"
	usersfeature "github.com/dalemusser/weshare/internal/app/features/users"
	groupstore "github.com/dalemusser/weshare/internal/app/store/groups"
	userstore "github.com/dalemusser/weshare/internal/app/store/users"
	"github.com/dalemusser/weshare/internal/app/system/apierr"
	"github.com/dalemusser/weshare/internal/app/system/metrics"
	"github.com/dalemusser/weshare/internal/app/system/reqlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The Mongo-backed stores are built here
// from the shared database handle and injected into the feature handlers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	return newRouter(routerDeps{
		Users:  userstore.New(deps.WeShareMongoDatabase),
		Groups: groupstore.New(deps.WeShareMongoDatabase),
		Pinger: deps.WeShareMongoClient,
	}, appCfg, logger)
}

// routerDeps are the backends the router needs. Tests swap in fakes.
type routerDeps struct {
	Users  usersfeature.Store
	Groups groupsfeature.Store
	Pinger healthfeature.Pinger
}

func newRouter(deps routerDeps, appCfg AppConfig, logger *zap.Logger) (http.Handler, error) {
	docsHandler, err := apidocsfeature.NewHandler(apidocsfeature.Info{
		Title:   appCfg.APITitle,
		Version: appCfg.APIVersion,
		BaseURL: appCfg.BaseURL,
	}, logger)
	if err != nil {
		logger.Error("openapi document init failed", zap.Error(err))
		return nil, err
	}

	m := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(reqlog.Middleware(logger))
	r.Use(m.Instrument)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteStatus(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteStatus(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	healthHandler := healthfeature.NewHandler(deps.Pinger, appCfg.HealthPingTimeout, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Mount("/users", usersfeature.Routes(usersfeature.NewHandler(deps.Users, logger)))
	r.Mount("/groups", groupsfeature.Routes(groupsfeature.NewHandler(deps.Groups, logger)))

	apidocsfeature.MountRoutes(r, docsHandler)

	return r, nil
}
