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
	"bufio"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/neogeo/curated"
)

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "# this file is generated and updated by the emulator. manual edits may be lost."

// Disk groups named Pref values and persists them as a flat key :: value
// text file.
type Disk struct {
	crit     sync.Mutex
	filename string
	entries  map[string]Pref
	order    []string
}

// NewDisk creates a Disk backed by filename. The file is not touched until
// Save or Load is called.
func NewDisk(filename string) (*Disk, error) {
	return &Disk{
		filename: filename,
		entries:  make(map[string]Pref),
	}, nil
}

// Add registers a Pref under key.
func (d *Disk) Add(key string, p Pref) error {
	d.crit.Lock()
	defer d.crit.Unlock()

	if _, ok := d.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key: %v", key)
	}
	d.entries[key] = p
	d.order = append(d.order, key)
	return nil
}

// readRaw loads the key/value pairs currently on disk, if the file exists.
func (d *Disk) readRaw() (map[string]string, error) {
	raw := make(map[string]string)

	f, err := os.Open(d.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return raw, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "::", 2)
		if len(parts) != 2 {
			continue
		}
		raw[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return raw, nil
}

// Save writes every registered Pref to disk, merged alphabetically with
// whatever keys already exist in the file (so that two Disk instances
// sharing one file don't clobber one another).
func (d *Disk) Save() error {
	d.crit.Lock()
	defer d.crit.Unlock()

	raw, err := d.readRaw()
	if err != nil {
		return err
	}

	for key, p := range d.entries {
		raw[key] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(d.filename)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	w.WriteString(WarningBoilerPlate)
	w.WriteString("\n")
	for _, k := range keys {
		w.WriteString(k)
		w.WriteString(" :: ")
		w.WriteString(raw[k])
		w.WriteString("\n")
	}

	return w.Flush()
}

// Load reads the file and applies every key that matches a registered Pref.
func (d *Disk) Load() error {
	d.crit.Lock()
	defer d.crit.Unlock()

	raw, err := d.readRaw()
	if err != nil {
		return err
	}

	for key, p := range d.entries {
		if v, ok := raw[key]; ok {
			if err := p.Set(v); err != nil {
				return err
			}
		}
	}

	return nil
}
