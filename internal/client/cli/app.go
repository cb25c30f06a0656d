package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/golang/geo/s2"

	"github.com/dmitrijs2005/calamaunido/internal/client/client"
	"github.com/dmitrijs2005/calamaunido/internal/client/config"
	"github.com/dmitrijs2005/calamaunido/internal/client/feed"
	"github.com/dmitrijs2005/calamaunido/internal/client/models"
	"github.com/dmitrijs2005/calamaunido/internal/client/render"
	"github.com/dmitrijs2005/calamaunido/internal/client/securestore"
	"github.com/dmitrijs2005/calamaunido/internal/client/services"
	"github.com/dmitrijs2005/calamaunido/internal/logging"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	api         client.Client
	authService services.AuthService
	closer      io.Closer

	nav    *Navigator
	reader *bufio.Reader
	out    io.Writer

	// Home
	sideMenu bool
	userMenu bool

	// Publications; nil while the screen is not on the stack.
	feed *feed.Feed

	// PublicationDetail
	detail   *render.DetailRenderer
	selected models.Publication

	// CreatePublication
	draft *models.Draft
}

// NewApp opens the secure store and builds the API client and services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := securestore.Open(ctx, c.StoragePath, c.KeyPath)
	if err != nil {
		log.Error(ctx, "error initializing secure storage", "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.MediaBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithTokenSource(store),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, store, logging.Named(log, "auth"))

	a := newApp(c, log, apiClient, as, os.Stdin, os.Stdout)
	a.closer = store
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, api client.Client, as services.AuthService, in io.Reader, out io.Writer) *App {
	return &App{
		config:      c,
		log:         log,
		api:         api,
		authService: as,
		nav:         NewNavigator(ScreenLogin),
		reader:      bufio.NewReader(in),
		out:         out,
		detail:      render.NewDetailRenderer(api.EvidenceURL, s2.LatLngFromDegrees(c.CityLat, c.CityLng)),
	}
}

// Run picks the start screen and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.start(ctx)
	a.render(ctx)

	runREPL(ctx, a, a.prompt, a.reader)
}

// Close releases the secure store. Later calls do nothing.
func (a *App) Close() {
	if a.closer != nil {
		closer := a.closer
		a.closer = nil
		if err := closer.Close(); err != nil {
			a.log.Warn(context.Background(), "closing secure storage", "error", err)
		}
	}
}

// start reads the stored token. Its presence only decides the start screen
// when SkipLoginIfSession is set.
func (a *App) start(ctx context.Context) {
	token, err := a.authService.SessionToken(ctx)
	if err != nil {
		a.log.Warn(ctx, "reading stored session", "error", err)
	}
	a.log.Info(ctx, "stored session", "present", token != "")

	if token != "" && a.config.SkipLoginIfSession {
		a.nav.Reset(ScreenHome)
	}
}

// Screen is the screen on top of the navigation stack.
func (a *App) Screen() Screen {
	return a.nav.Current()
}

func (a *App) prompt() string {
	return string(a.nav.Current())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// render prints the current screen, followed by the bottom bar outside Login.
func (a *App) render(ctx context.Context) {
	switch a.nav.Current() {
	case ScreenLogin:
		a.println("CalamaUnido: inicia sesión con tu RUT (login)")
		return
	case ScreenHome:
		a.println(render.Home(a.sideMenu, a.userMenu))
	case ScreenPublications:
		if a.feed != nil {
			st := a.feed.Snapshot()
			if st.FilterVisible {
				a.println(render.Filters(st))
			} else {
				a.println(render.Feed(st))
			}
		}
	case ScreenPublicationDetail:
		a.println(a.detail.Render(a.selected))
	case ScreenCreatePublication:
		if a.draft != nil {
			a.println(render.Draft(a.draft))
		}
	}
	a.println(render.BottomBar())
}

// navigate moves to s and tears down the state of every screen it leaves.
func (a *App) navigate(ctx context.Context, s Screen) {
	for _, left := range a.nav.Navigate(s) {
		a.leave(left)
	}
	a.enter(ctx, s)
	a.render(ctx)
}

// Back pops the current screen. At the root it does nothing.
func (a *App) Back(ctx context.Context) error {
	left, ok := a.nav.Back()
	if !ok {
		return nil
	}
	a.leave(left)
	a.render(ctx)
	return nil
}

func (a *App) enter(ctx context.Context, s Screen) {
	switch s {
	case ScreenHome:
		a.sideMenu, a.userMenu = false, false
	case ScreenPublications:
		if a.feed == nil {
			a.feed = feed.New(a.api, logging.Named(a.log, "feed"))
			// failures are logged by the feed and leave the list empty
			_ = a.feed.Mount(ctx)
		}
	case ScreenCreatePublication:
		if a.draft == nil {
			a.draft = models.NewDraft()
		}
	}
}

func (a *App) leave(s Screen) {
	switch s {
	case ScreenPublications:
		a.feed = nil
	case ScreenPublicationDetail:
		a.selected = models.Publication{}
	case ScreenCreatePublication:
		a.draft = nil
	}
}
