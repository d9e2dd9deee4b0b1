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

// Package resources locates the files the emulator persists between runs
// (preferences, save states, NVRAM/memory-card/save-RAM images) under a
// single well-known directory.
package resources

import "path/filepath"

// baseDir is the directory name every resource path is rooted under.
const baseDir = ".neogeo"

// JoinPath builds a path under the resource directory from the given
// segments, dropping any empty ones.
func JoinPath(paths ...string) (string, error) {
	segs := make([]string, 0, len(paths)+1)
	segs = append(segs, baseDir)

	for _, p := range paths {
		if p != "" {
			segs = append(segs, p)
		}
	}

	return filepath.Join(segs...), nil
}
