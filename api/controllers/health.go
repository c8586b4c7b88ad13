package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/rohitvarpe/stitchkart-backend/api/responses"
	"github.com/rohitvarpe/stitchkart-backend/pkg/config"
	"github.com/rohitvarpe/stitchkart-backend/pkg/db"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
)

const readyCheckTimeout = 3 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-StitchKart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when both the database and redis answer a
// ping within the check timeout.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-StitchKart-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		if err := ping(ctx, dbP); err != nil {
			checks["db"] = err.Error()
			healthy = false
		} else {
			checks["db"] = "ok"
		}

		if err := ping(ctx, redisP); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}

		if !healthy {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable").WithDetails(checks))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}

func ping(ctx context.Context, p db.Pinger) error {
	if p == nil {
		return nil
	}
	return p.Ping(ctx)
}
