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

// Package memviz dumps a Graphviz rendering of the live VCS object graph
// to a file, for post-mortem inspection of a console that has locked up
// or crashed: the cartridge, memory map, TIA and RIOT state are all
// reachable from a single root, so one call captures the whole machine.
package memviz

import (
	"os"

	"github.com/bradleyjkemp/memviz"
)

// Dump renders v's object graph as a .dot file at path, suitable for
// feeding to `dot -Tpng`.
func Dump(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, v)
	return nil
}
