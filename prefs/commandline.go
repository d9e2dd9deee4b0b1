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

package prefs

import (
	"sort"
	"strings"
	"sync"
)

// commandLineStack holds groups of "key::value" pairs pushed from the
// command line, most-recently-pushed on top.
var commandLineStack struct {
	crit  sync.Mutex
	stack []map[string]string
}

// isValidAssignment reports whether s is a well-formed "key::value" pair.
func isValidAssignment(s string) (string, string, bool) {
	parts := strings.SplitN(s, "::", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	k := strings.TrimSpace(parts[0])
	v := strings.TrimSpace(parts[1])
	if k == "" {
		return "", "", false
	}
	return k, v, true
}

// PushCommandLineStack parses a ";"-separated list of "key::value" pairs
// and pushes the valid ones as a new group on the stack. Malformed pairs
// are silently dropped.
func PushCommandLineStack(s string) {
	commandLineStack.crit.Lock()
	defer commandLineStack.crit.Unlock()

	group := make(map[string]string)
	for _, part := range strings.Split(s, ";") {
		if k, v, ok := isValidAssignment(strings.TrimSpace(part)); ok {
			group[k] = v
		}
	}

	commandLineStack.stack = append(commandLineStack.stack, group)
}

// PopCommandLineStack removes and returns the top group as a sorted,
// reconstituted "key::value; key::value" string. Returns the empty string
// if the stack is empty or the top group has no valid pairs.
func PopCommandLineStack() string {
	commandLineStack.crit.Lock()
	defer commandLineStack.crit.Unlock()

	if len(commandLineStack.stack) == 0 {
		return ""
	}

	n := len(commandLineStack.stack) - 1
	group := commandLineStack.stack[n]
	commandLineStack.stack = commandLineStack.stack[:n]

	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "::" + group[k]
	}

	return strings.Join(parts, "; ")
}

// GetCommandLinePref looks up key in the top group of the stack without
// popping it.
func GetCommandLinePref(key string) (bool, string) {
	commandLineStack.crit.Lock()
	defer commandLineStack.crit.Unlock()

	if len(commandLineStack.stack) == 0 {
		return false, ""
	}

	v, ok := commandLineStack.stack[len(commandLineStack.stack)-1][key]
	return ok, v
}
