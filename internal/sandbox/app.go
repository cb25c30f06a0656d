// Package sandbox runs a local stand-in for the CalamaUnido API: seeded
// accounts and publications served over the production REST contract.
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/calamaunido/internal/logging"
	"github.com/dmitrijs2005/calamaunido/internal/sandbox/config"
	"github.com/dmitrijs2005/calamaunido/internal/sandbox/handlers"
	"github.com/dmitrijs2005/calamaunido/internal/sandbox/store"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

// NewApp seeds the in-memory store and builds the HTTP server.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))

	m := store.NewMemory(bcrypt.DefaultCost)
	if err := store.Seed(m, time.Now()); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	h := handlers.NewHandler(m, handlers.Options{
		SecretKey:       []byte(c.SecretKey),
		AccessTokenTTL:  c.AccessTokenTTL,
		RefreshTokenTTL: c.RefreshTokenTTL,
		PageSize:        c.PageSize,
		PublicURL:       c.PublicURL,
	}, logging.Named(logger, "http"))

	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           handlers.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{config: c, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.Addr, err)
	}

	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	app.logger.Info(ctx, "Starting sandbox...", "addr", ln.Addr().String(), "public_url", app.config.PublicURL)

	errCh := make(chan error, 1)
	go func() {
		if err := app.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
