// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

package cartridgeloader

import (
	"path/filepath"
	"strings"
)

// recognisedExtensions are stripped from the display name of a loaded file.
var recognisedExtensions = [...]string{".NEO", ".ZIP"}

// filepathExt returns the extension of filename, including the leading dot,
// with its letter case unchanged.
func filepathExt(filename string) string {
	return filepath.Ext(filename)
}

// decideOnName uses information in the Loader instance to decide how the
// ROM should be referred to by code outside of the package.
func decideOnName(ld Loader) string {
	if ld.embedded {
		return ld.Filename
	}

	if len(strings.TrimSpace(ld.Filename)) == 0 {
		return ""
	}

	return NameFromFilename(ld.Filename)
}

// NameFromFilename converts a filename to a shortened version suitable for
// display.
func NameFromFilename(filename string) string {
	name := filepath.Base(filename)
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range recognisedExtensions {
		if ext == e {
			return strings.TrimSuffix(name, filepath.Ext(filename))
		}
	}
	return name
}
