package main

import (
	_ "embed"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/starline-salvage/starline/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	cfg := config.Load()

	upstream, err := url.Parse(cfg.UpstreamURL)
	if err != nil {
		log.Fatal("invalid upstream URL", "url", cfg.UpstreamURL, "err", err)
	}
	proxy := httputil.NewSingleHostReverseProxy(upstream)

	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := strings.Replace(htmlPage, "{{.SSHHost}}", sshHost, -1)
		fmt.Fprint(w, page)
	})
	r.Get("/healthz", healthz(upstream))
	// Deployment variant two: the backend is reachable through the
	// gateway under /_/backend instead of its own /api origin.
	r.Handle("/_/backend/*", http.StripPrefix("/_/backend", proxy))

	addr := fmt.Sprintf("%s:%s", cfg.WebHost, cfg.WebPort)
	log.Info("starting web gateway", "addr", addr, "upstream", upstream.String())
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("server error", "err", err)
	}
}

// healthz relays the upstream health probe so load balancers see the
// gateway and the backend as one unit.
func healthz(upstream *url.URL) http.HandlerFunc {
	probe := &http.Client{Timeout: 3 * time.Second}
	target := strings.TrimRight(upstream.String(), "/") + "/health"
	return func(w http.ResponseWriter, req *http.Request) {
		resp, err := probe.Get(target)
		if err != nil {
			http.Error(w, "upstream unreachable", http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			http.Error(w, "upstream unhealthy", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
