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
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/neogeo/curated"
)

// Value is whatever can be marshalled to and from a single preferences line.
type Value interface{}

// Pref is the interface a value type must implement to be added to a Disk.
type Pref interface {
	Set(Value) error
	String() string
}

// Bool is a boolean preference value.
type Bool struct {
	crit sync.Mutex
	v    bool
}

// Set the value, accepting a bool or a string. A string that
// strconv.ParseBool does not accept sets the value to false.
func (b *Bool) Set(v Value) error {
	b.crit.Lock()
	defer b.crit.Unlock()

	switch t := v.(type) {
	case bool:
		b.v = t
	case string:
		p, err := strconv.ParseBool(strings.TrimSpace(t))
		b.v = err == nil && p
	default:
		return curated.Errorf("prefs: unsupported type for bool value: %T", v)
	}
	return nil
}

// Get the current value.
func (b *Bool) Get() Value {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.v
}

func (b *Bool) String() string {
	b.crit.Lock()
	defer b.crit.Unlock()
	return strconv.FormatBool(b.v)
}

// String is a string preference value, optionally capped to a maximum length.
type String struct {
	crit   sync.Mutex
	v      string
	maxLen int
}

// SetMaxLen caps the string to n runes, cropping any existing value. A
// length of zero removes the cap without restoring a previously cropped
// value.
func (s *String) SetMaxLen(n int) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.maxLen = n
	if s.maxLen > 0 && len(s.v) > s.maxLen {
		s.v = s.v[:s.maxLen]
	}
}

// Set the value.
func (s *String) Set(v Value) error {
	s.crit.Lock()
	defer s.crit.Unlock()

	switch t := v.(type) {
	case string:
		s.v = t
	default:
		s.v = fmt.Sprintf("%v", t)
	}

	if s.maxLen > 0 && len(s.v) > s.maxLen {
		s.v = s.v[:s.maxLen]
	}
	return nil
}

// Get the current value.
func (s *String) Get() Value {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.v
}

func (s *String) String() string {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.v
}

// Int is an integer preference value.
type Int struct {
	crit sync.Mutex
	v    int
}

// Set the value, accepting an int or a string parseable as an int.
func (n *Int) Set(v Value) error {
	n.crit.Lock()
	defer n.crit.Unlock()

	switch t := v.(type) {
	case int:
		n.v = t
	case string:
		p, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return curated.Errorf("prefs: %v", err)
		}
		n.v = p
	default:
		return curated.Errorf("prefs: unsupported type for int value: %T", v)
	}
	return nil
}

// Get the current value.
func (n *Int) Get() Value {
	n.crit.Lock()
	defer n.crit.Unlock()
	return n.v
}

func (n *Int) String() string {
	n.crit.Lock()
	defer n.crit.Unlock()
	return strconv.Itoa(n.v)
}

// Float is a floating point preference value.
type Float struct {
	crit sync.Mutex
	v    float64
}

// Set the value, accepting only a float64.
func (f *Float) Set(v Value) error {
	f.crit.Lock()
	defer f.crit.Unlock()

	switch t := v.(type) {
	case float64:
		f.v = t
	default:
		return curated.Errorf("prefs: unsupported type for float value: %T", v)
	}
	return nil
}

// Get the current value.
func (f *Float) Get() Value {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.v
}

func (f *Float) String() string {
	f.crit.Lock()
	defer f.crit.Unlock()
	return strconv.FormatFloat(f.v, 'f', -1, 64)
}

// Generic wraps arbitrary set/get funcs as a Pref, for values that don't fit
// the Bool/String/Int/Float shapes (eg. a packed "w,h" dimension pair).
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric builds a Generic preference from a set and a get function.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

// Set the value via the wrapped set function.
func (g *Generic) Set(v Value) error {
	return g.set(v)
}

// Get the current value via the wrapped get function.
func (g *Generic) Get() Value {
	return g.get()
}

func (g *Generic) String() string {
	return fmt.Sprintf("%v", g.get())
}
