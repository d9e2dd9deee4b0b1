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

package curated

// Error patterns used across the emulator core, grouped by subsystem.
// Each is passed as the first argument to Errorf and matched against with
// Is()/Has().
const (
	// loading
	LoadError          = "load: %v"
	InvalidNEOHeader   = "load: not a valid NEO ROM: %v"
	MissingBIOSMember  = "load: missing BIOS archive member: %v"
	UnsupportedTitle   = "load: title is not compatible with this system: %v"
	StateMismatch      = "state: %v"
	StateSizeMismatch  = "state: persisted file size does not match in-memory block: %v"

	// scheduler / reset
	WatchdogTimeout = "watchdog: %v"

	// bus decode
	ProtectionOverreach = "bus: unmapped protection access: %v"
	UnmappedRead        = "bus: unmapped read: %v"
	UnmappedWrite       = "bus: unmapped write: %v"

	// cartridge
	UnknownBoard = "cartridge: unknown board: %v"
)
