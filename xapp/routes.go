package xapp

import (
	"context"
	"net/http"
	"sort"

	"github.com/kbukum/xappkit/server"
	"github.com/kbukum/xappkit/server/endpoint"
)

// defaultRoutes builds the pre-registered route table every xApp serves:
// liveness, health and readiness probes, build version, the raw
// configuration file, and the programmatic shutdown trigger.
func defaultRoutes(app *App, cfg *runConfig) []server.Route {
	checker := cfg.health
	if checker == nil {
		checker = mainTaskChecker(app)
	}

	return []server.Route{
		{Method: http.MethodGet, Path: "/status", Handler: endpoint.Status(cfg.name)},
		{Method: http.MethodGet, Path: "/health", Handler: endpoint.Health(cfg.name, checker)},
		{Method: http.MethodGet, Path: "/ready", Handler: endpoint.Ready(cfg.name, checker)},
		{Method: http.MethodGet, Path: "/version", Handler: endpoint.Version()},
		{Method: http.MethodGet, Path: "/config", Handler: endpoint.ConfigFile(app.ConfigPath)},
		{Method: http.MethodPost, Path: "/shutdown", Handler: endpoint.ShutdownTrigger(app.RequestShutdown)},
	}
}

// mainTaskChecker reports the supervised entrypoint's state as a health
// check. A failed entrypoint marks the xApp unhealthy; a completed one is
// still healthy since short-lived entrypoints are allowed.
func mainTaskChecker(app *App) endpoint.HealthChecker {
	return func(ctx context.Context) []endpoint.Check {
		check := endpoint.Check{Name: "main-task", Healthy: true}
		if t := app.mainTask; t != nil {
			state := t.State()
			if state == TaskFailed {
				check.Healthy = false
				check.Message = "entrypoint failed"
			} else {
				check.Message = state.String()
			}
		}
		return []endpoint.Check{check}
	}
}

// mergeRoutes combines the pre-registered table with user-supplied routes.
// Route identity is the (method, path) pair. On any collision, with the
// defaults or among the user routes themselves, nothing is merged and a
// DuplicateRouteError listing every colliding identity is returned.
func mergeRoutes(defaults, user []server.Route) ([]server.Route, error) {
	seen := make(map[RouteKey]bool, len(defaults)+len(user))
	merged := make([]server.Route, 0, len(defaults)+len(user))

	for _, r := range defaults {
		seen[RouteKey{Method: r.Method, Path: r.Path}] = true
		merged = append(merged, r)
	}

	var conflicts []RouteKey
	for _, r := range user {
		key := RouteKey{Method: r.Method, Path: r.Path}
		if seen[key] {
			conflicts = append(conflicts, key)
			continue
		}
		seen[key] = true
		merged = append(merged, r)
	}

	if len(conflicts) > 0 {
		sort.Slice(conflicts, func(i, j int) bool {
			return conflicts[i].String() < conflicts[j].String()
		})
		return nil, &DuplicateRouteError{Conflicts: conflicts}
	}
	return merged, nil
}
