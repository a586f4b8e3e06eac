// This file is part of vcs2600.
//
// vcs2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcs2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcs2600.  If not, see <https://www.gnu.org/licenses/>.

// Package statsdash exposes a live, browser-viewable dashboard of the
// running emulator's goroutine count, heap usage and GC pause times —
// useful while soak-testing a ROM for the cycle-exact scheduler running
// flat out in a tight Run loop.
package statsdash

import (
	"fmt"

	"github.com/go-echarts/statsview"

	"github.com/retrocore/vcs2600/internal/logger"
)

// Dashboard wraps a statsview manager bound to a single address.
type Dashboard struct {
	mgr  *statsview.Manager
	addr string
}

// New prepares (without yet starting) a dashboard served at addr, e.g.
// "localhost:18066".
func New(addr string) *Dashboard {
	return &Dashboard{
		mgr:  statsview.New(statsview.WithAddr(addr)),
		addr: addr,
	}
}

// Start runs the dashboard's HTTP server in the background. It returns
// immediately; call Stop to shut it down.
func (d *Dashboard) Start() {
	logger.Logf(logger.Allow, "statsdash", "serving runtime dashboard at http://%s/debug/statsview", d.addr)
	go d.mgr.Start()
}

// Stop shuts the dashboard's HTTP server down.
func (d *Dashboard) Stop() {
	d.mgr.Stop()
}

// String reports the dashboard's URL, for printing in a startup banner.
func (d *Dashboard) String() string {
	return fmt.Sprintf("http://%s/debug/statsview", d.addr)
}
