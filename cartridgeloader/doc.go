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

// Package cartridgeloader loads NEO cartridge containers and BIOS ZIP
// archives so that their contents can be handed to the hardware package.
//
// # NEO containers
//
// A Loader created with NewLoaderFromFilename reads the whole file into
// memory when Open is called, making a SHA1 and MD5 hash of the raw bytes
// available. ZIP archives are streamed instead and are not hashed. A
// Loader created with NewLoaderFromData hashes its data on creation.
//
// # BIOS archives
//
// OpenBIOSArchive extracts named members (see the BIOS* constants) from a
// ZIP file. Member selection by region/system happens in the hardware
// package; this package only knows how to pull a named member's bytes out
// of the archive.
package cartridgeloader
