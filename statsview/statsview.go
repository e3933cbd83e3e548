// This file is part of s2d.
//
// s2d is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// s2d is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with s2d.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/s2d/logger"
)

// Address of the statistics server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// Launch a new goroutine running the statsview server.
func Launch() {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go mgr.Start()
	logger.Logf(logger.Allow, "statsview", "server available at %s%s", Address, url)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
