package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/constants"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/internal"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/messages"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/state"
)

// ErrSessionExpired is logged when a request carries the cookie of a session
// that has been dropped. The request continues in a new session.
var ErrSessionExpired = errors.New("web: session expired")

// Options configures a Server.
type Options struct {
	Title      string           // Page title
	Language   string           // Forces the notice language; empty follows Accept-Language
	SessionTTL time.Duration    // Idle time before a session is dropped
	Logger     *slog.Logger     // Defaults to the internal logger
	Now        func() time.Time // Clock, for tests
}

// Stats is a snapshot of server activity.
type Stats struct {
	Sessions int64  // Live sessions
	Cycles   uint64 // Render cycles served
}

// Server hosts an App over HTTP. It is safe for concurrent use.
type Server struct {
	app    App
	opts   Options
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session

	live   atomic.Int64
	cycles atomic.Uint64
}

// session is one browser session. mu serialises its render cycles.
type session struct {
	mu       sync.Mutex
	id       string
	query    *state.Query
	state    *state.Session
	widgets  map[string]*widget
	lastSeen time.Time
}

// New creates a Server running app.
func New(app App, opts Options) *Server {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = constants.DefaultSessionTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Title == "" {
		opts.Title = "zaproute"
	}
	logger := opts.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}
	return &Server{
		app:      app,
		opts:     opts,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// Stats returns current counters.
func (s *Server) Stats() Stats {
	return Stats{Sessions: s.live.Load(), Cycles: s.cycles.Load()}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.serveCycle(w, r)
	case http.MethodPost:
		s.serveWidget(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// serveCycle runs one render cycle and writes the page.
func (s *Server) serveCycle(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.query.Replace(r.URL.Query())

	printer := messages.New(s.opts.Language, r.Header.Get("Accept-Language"))
	n := s.cycles.Inc()
	logger := s.logger.With("session", sess.id, "cycle", n)

	cycle := NewCycle(sess.query, sess.state, printer, logger)
	start := s.opts.Now()
	if err := s.app(cycle); err != nil {
		sess.widgets = nil
		logger.Error("render cycle failed", "error", err)
		http.Error(w, "render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	sess.widgets = cycle.widgets

	page := pageView{
		Lang:    printer.Tag().String(),
		Title:   s.opts.Title,
		Main:    viewBlocks(cycle.Main.blocks, sess.query.Encode()),
		Sidebar: viewBlocks(cycle.Sidebar.blocks, sess.query.Encode()),
	}
	if sess.query.Encode() != r.URL.Query().Encode() {
		page.ReplaceURL = pageURL(sess.query)
	}

	var buf bytes.Buffer
	if err := writePage(&buf, page); err != nil {
		logger.Error("write page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Debug("render cycle", "query", sess.query.Encode(), "widgets", len(cycle.widgets), "took", s.opts.Now().Sub(start))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// serveWidget runs the callback of a posted widget and redirects to the page.
func (s *Server) serveWidget(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if query, err := url.ParseQuery(r.PostForm.Get("_query")); err == nil {
		sess.query.Replace(query)
	}

	key := r.PostForm.Get("_widget")
	if wdg, ok := sess.widgets[key]; ok {
		ran := wdg.activate(r.PostForm.Get("_value"), sess.state)
		s.logger.Debug("widget posted", "session", sess.id, "key", key, "kind", wdg.kind.GetName(), "callback", ran)
	} else {
		s.logger.Debug("stale widget posted", "session", sess.id, "key", key)
	}

	http.Redirect(w, r, pageURL(sess.query), http.StatusSeeOther)
}

// session returns the caller's session, starting a new one when the cookie is
// missing or expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session {
	now := s.opts.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.expire(now)

	if cookie, err := r.Cookie(constants.SessionCookieName); err == nil {
		if sess, ok := s.sessions[cookie.Value]; ok {
			sess.lastSeen = now
			return sess
		}
		s.logger.Info("starting new session", "error", ErrSessionExpired)
	}

	sess := &session{
		id:       uuid.NewString(),
		query:    state.NewQuery(nil),
		state:    state.NewSession(),
		lastSeen: now,
	}
	s.sessions[sess.id] = sess
	s.live.Inc()

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// expire drops idle sessions. Callers hold s.mu.
func (s *Server) expire(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.opts.SessionTTL {
			delete(s.sessions, id)
			s.live.Dec()
			s.logger.Debug("session expired", "session", id)
		}
	}
}

func pageURL(query *state.Query) string {
	if encoded := query.Encode(); encoded != "" {
		return "/?" + encoded
	}
	return "/"
}
