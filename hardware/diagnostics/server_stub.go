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

//go:build !diagnostics

package diagnostics

import "context"

// Server is a no-op stand-in used when the module is built without the
// diagnostics tag, so System never needs a build-tag check of its own.
type Server struct{}

// NewServer returns a Server that does nothing; c is accepted only to
// keep the constructor signature identical across both build variants.
func NewServer(addr string, c *Collector) *Server {
	return &Server{}
}

// Start returns immediately.
func (s *Server) Start(ctx context.Context) error {
	return nil
}
