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

// Package test contains small helpers shared by most packages' test
// files, used in place of raw t.Fatalf comparisons.
package test

import (
	"math"
	"reflect"
	"testing"
)

func isFailure(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return !x
	case error:
		return x != nil
	case nil:
		return false
	}
	return false
}

// ExpectFailure checks that v represents a failure value (false or a
// non-nil error).
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if !isFailure(v) {
		t.Errorf("expected failure, got %v", v)
	}
}

// ExpectSuccess checks that v represents a success value (true, a nil
// error, or the untyped nil).
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if isFailure(v) {
		t.Errorf("expected success, got %v", v)
	}
}

// ExpectEquality checks that a and b are deeply equal.
func ExpectEquality(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected equality: %v != %v", a, b)
	}
}

// ExpectInequality checks that a and b are not deeply equal.
func ExpectInequality(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("expected inequality: %v == %v", a, b)
	}
}

// ExpectApproximate checks that a and b differ by no more than tolerance.
func ExpectApproximate(t *testing.T, a float64, b float64, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > tolerance {
		t.Errorf("expected %v to be within %v of %v", a, tolerance, b)
	}
}

// Equate is an alias for ExpectEquality kept for call sites that use the
// shorter spelling.
func Equate(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	ExpectEquality(t, a, b)
}
