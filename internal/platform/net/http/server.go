package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"strings"
	"time"

	"portfolio/internal/platform/config"
	perr "portfolio/internal/platform/errors"
	"portfolio/internal/platform/logger"
	pnet "portfolio/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the stdlib server listening for it
type Server struct {
	addr  string
	mux   *chi.Mux
	srv   *stdhttp.Server
	grace time.Duration
}

// NewServer reads PORT (bare port or host:port, :4000 by default) and
// SHUTDOWN_GRACE (10s) from cfg. Unknown routes and methods answer with
// the error envelope. opts can tweak the mux before routes are mounted
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("PORT", ":4000")
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	m := chi.NewRouter()
	m.NotFound(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		RespondError(w, r, perr.NotFoundf("no route for %s", r.URL.Path))
	})
	m.MethodNotAllowed(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		err := perr.Newf(perr.ErrorCodeInvalidArgument, "method %s not allowed on %s", r.Method, r.URL.Path)
		_, env := pnet.Error(err, pnet.RequestID(r.Context()))
		env.StatusCode = stdhttp.StatusMethodNotAllowed
		env.Status = stdhttp.StatusText(stdhttp.StatusMethodNotAllowed)
		JSON(w, stdhttp.StatusMethodNotAllowed, env)
	})
	for _, o := range opts {
		o(m)
	}

	return &Server{
		addr:  addr,
		mux:   m,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router returns the mux as a Router
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.addr }

// Run listens until ctx is cancelled, then drains in flight requests for up to
// the grace period. A clean stop returns nil
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	log.Info().Str("addr", s.addr).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return ignoreClosed(err)
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	return ignoreClosed(<-errc)
}

func ignoreClosed(err error) error {
	if errors.Is(err, stdhttp.ErrServerClosed) {
		return nil
	}
	return err
}
