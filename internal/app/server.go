package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"property_manager/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the HTTP server and the reconciliation scheduler until ctx is
// cancelled or the listener fails.
func (a *App) Serve(ctx context.Context) error {
	switch a.Config.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(a.Config.Server.Mode)
	}

	router, err := a.Router()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Logger().WithField("addr", srv.Addr).Info("[app] http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		a.Scheduler.Run(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logging.Logger().Info("[app] shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
