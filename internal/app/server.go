package app

import (
	"context"
	"sync"

	"github.com/agbru/paracc/internal/logging"
	"github.com/agbru/paracc/internal/server"
)

// startMetricsServer serves the collector on Config.MetricsAddr until the
// returned stop function is called.
func (a *Application) startMetricsServer(ctx context.Context) (stop func()) {
	srv := server.New(a.Config.MetricsAddr, a.Metrics, a.Logger)
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Run(ctx); err != nil {
			a.Logger.Error("metrics server stopped", err, logging.String("addr", a.Config.MetricsAddr))
		}
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}
