package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blacktop/socialshare/internal/logutil"
	"github.com/blacktop/socialshare/internal/placeholder"
	"github.com/blacktop/socialshare/internal/share/printer"
	"github.com/blacktop/socialshare/internal/share/redirect"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	if s.cfg.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	if s.limiter != nil {
		r.Use(s.limiter.middleware(s.metrics))
	}

	r.Get("/healthz", handleHealth)
	r.Get("/networks", s.handleNetworks)
	r.Get("/share/{network}", s.handleShare)
	r.Get("/link/{network}", s.handleLink)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("ok\n")); err != nil {
		logWriteError(r, err)
	}
}

// handleShare redirects to the resolved share link.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	link, err := s.resolve(r, chi.URLParam(r, "network"))
	s.redirector.Respond(w, r, link, err)
}

// handleLink writes the resolved share link as text instead of redirecting.
func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	link, err := s.resolve(r, chi.URLParam(r, "network"))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err != nil {
		w.WriteHeader(redirect.StatusFor(err))
	}
	p := &printer.Printer{Out: w, Err: w, Quiet: !s.cfg.Server.Diagnostic}
	if werr := p.Print(link, err); err == nil && werr != nil {
		logWriteError(r, werr)
	}
}

func logWriteError(r *http.Request, err error) {
	logutil.Debug("write response", "path", r.URL.Path, "request_id", RequestID(r.Context()), "error", err)
}

type networkInfo struct {
	Name         string            `json:"name"`
	Template     string            `json:"template"`
	Placeholders []string          `json:"placeholders"`
	Defaults     map[string]string `json:"defaults,omitempty"`
}

func (s *Server) handleNetworks(w http.ResponseWriter, _ *http.Request) {
	var out []networkInfo
	for _, n := range s.builder.Networks() {
		tmpl, _ := s.builder.Template(n)
		info := networkInfo{
			Name:         n.String(),
			Template:     tmpl,
			Placeholders: placeholder.References(tmpl),
		}
		defs := s.builder.Defaults(n)
		for _, k := range defs.Keys() {
			if info.Defaults == nil {
				info.Defaults = make(map[string]string)
			}
			info.Defaults[k], _ = defs.Get(k)
		}
		out = append(out, info)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
