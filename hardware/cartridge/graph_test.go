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

package cartridge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/neogeo/hardware/cartridge"
)

// TestBoardDispatchGraph dumps a .dot diagram of a detected board's
// internal field layout, the same way the debugger's command-line
// parser test visualises its own parse tree: a developer aid for
// inspecting how a board controller's embedded base and per-title
// protection fields are laid out, not a correctness check.
func TestBoardDispatchGraph(t *testing.T) {
	prom := make([]uint8, 0x100000)
	board := cartridge.NewSMA(prom, cartridge.SMAKOF99)

	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "board.dot"))
	if err != nil {
		t.Fatalf(err.Error())
	}
	defer f.Close()

	memviz.Map(f, board)

	info, err := f.Stat()
	if err != nil {
		t.Fatalf(err.Error())
	}
	if info.Size() == 0 {
		t.Fatalf("memviz produced an empty graph")
	}
}
