package console

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dvillarroel/actifijo/internal/client/api"
	"github.com/dvillarroel/actifijo/internal/client/audit"
	"github.com/dvillarroel/actifijo/internal/client/config"
	"github.com/dvillarroel/actifijo/internal/client/gateway"
	"github.com/dvillarroel/actifijo/internal/client/notify"
	"github.com/dvillarroel/actifijo/internal/client/session"
	"github.com/dvillarroel/actifijo/internal/client/store"
	"github.com/dvillarroel/actifijo/internal/logging"
)

// App wires the console's moving parts together: the request client, the
// durable session store, the session controller, the audit side channel, the
// notification center and one page per entity.
type App struct {
	config   *config.Config
	log      logging.Logger
	api      *api.Client
	db       *sql.DB
	session  *session.Controller
	audit    *audit.Logger
	notify   *notify.Center
	gateways *gateway.Set
	pages    map[pageID]pager

	reader *bufio.Reader
	out    io.Writer

	// report flow state; export reuses the filter of the last preview.
	reportFilter gateway.ReportFilter
	previewed    bool
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	apiClient := api.New(cfg.ServerBaseURL)
	sessionStore := store.New(db)

	a := &App{
		config:  cfg,
		log:     log,
		api:     apiClient,
		db:      db,
		session: session.NewController(apiClient, sessionStore),
		audit:   audit.NewLogger(apiClient, log, cfg.AuditQueueSize),
		notify:  notify.NewCenter(cfg.NotifyTTL),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.gateways = gateway.NewSet(apiClient, a.audit)
	a.pages = buildPages(a)
	return a, nil
}

// Run restores the persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session bootstrap failed", "error", err)
	}

	fmt.Fprintln(a.out, "Fixed-asset console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, a.flash, scanner)
}

// Close drains the audit queue and releases the session store.
func (a *App) Close() {
	a.audit.Close()
	if a.db != nil {
		a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// getStatus renders the prompt suffix: the active user and company.
func (a *App) getStatus() string {
	claims := a.session.Claims()
	if claims == nil {
		return ""
	}
	return fmt.Sprintf("(%s @ %s)", claims.Username, claims.EmpresaNombre)
}

// flash returns the pending notification lines for the status area.
func (a *App) flash() []string {
	active := a.notify.Active()
	lines := make([]string, 0, len(active))
	for _, n := range active {
		lines = append(lines, fmt.Sprintf("[%s] %s", n.Kind, n.Message))
	}
	return lines
}

func (a *App) page(name string) (pager, bool) {
	id, ok := parsePage(name)
	if !ok {
		a.notify.Error("Unknown page: " + name)
		return nil, false
	}
	return a.pages[id], true
}

// OpenList shows the records of an entity page.
func (a *App) OpenList(ctx context.Context, name string) error {
	p, ok := a.page(name)
	if !ok {
		return nil
	}
	return p.list(ctx)
}

// OpenCreate runs the create form of an entity page.
func (a *App) OpenCreate(ctx context.Context, name string) error {
	p, ok := a.page(name)
	if !ok {
		return nil
	}
	return p.create(ctx)
}

// OpenEdit runs the edit form of an entity page for one record.
func (a *App) OpenEdit(ctx context.Context, name string, id int64) error {
	p, ok := a.page(name)
	if !ok {
		return nil
	}
	return p.edit(ctx, id)
}

// Delete removes one record of an entity page, confirmation gated.
func (a *App) Delete(ctx context.Context, name string, id int64) error {
	p, ok := a.page(name)
	if !ok {
		return nil
	}
	return p.remove(ctx, id)
}
