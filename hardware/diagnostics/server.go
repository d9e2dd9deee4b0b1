// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

//go:build diagnostics

package diagnostics

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/rs/cors"
)

// Server runs the statsview live-memory/goroutine dashboard alongside a
// small CORS-wrapped JSON endpoint reporting a Collector's
// cycle-budget counters, so a host-side dev tool running on another
// origin can poll it directly.
type Server struct {
	mgr      *statsview.Manager
	mux      *http.Server
	collector *Collector
}

// NewServer builds (but does not start) a Server. addr is used for both
// the statsview dashboard and the JSON metrics endpoint, on different
// paths of the same mux.
func NewServer(addr string, c *Collector) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics/cycles", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(c.Snapshot())
	})

	handler := cors.Default().Handler(mux)

	return &Server{
		mgr:       statsview.New(statsview.WithAddr(addr)),
		mux:       &http.Server{Addr: addr, Handler: handler},
		collector: c,
	}
}

// Start launches the statsview dashboard goroutine and serves the JSON
// metrics endpoint, blocking until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		_ = s.mgr.Start()
	}()

	go func() {
		<-ctx.Done()
		s.mgr.Stop()
		_ = s.mux.Shutdown(context.Background())
	}()

	err := s.mux.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
