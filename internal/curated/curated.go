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

// Package curated implements a lightweight curated-error type so that
// callers can match on a stable, predefined message head rather than
// parsing free-form fmt.Errorf text.
package curated

import (
	"fmt"
	"strings"
)

// Values holds the formatting arguments for a curated error.
type Values []interface{}

// Error is a curated error: a fixed message head plus formatting values.
type Error struct {
	head   string
	values Values
}

// Errorf creates a new curated error from a message head (which may
// contain fmt verbs) and its values.
func Errorf(head string, values ...interface{}) error {
	return Error{head: head, values: values}
}

// Error implements the error interface. Adjacent duplicate message parts
// (common when wrapping a curated error in another curated error with the
// same head) are collapsed.
func (e Error) Error() string {
	s := fmt.Errorf(e.head, e.values...).Error()

	parts := strings.SplitN(s, ": ", 3)
	if len(parts) > 1 && parts[0] == parts[1] {
		return strings.Join(parts[1:], ": ")
	}
	return strings.Join(parts, ": ")
}

// Head returns the leading message of a curated error, or the plain
// Error() string if err is not curated.
func Head(err error) string {
	if e, ok := err.(Error); ok {
		return e.head
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Is reports whether err is a curated error with the given head.
func Is(err error, head string) bool {
	if err == nil {
		return false
	}
	e, ok := err.(Error)
	return ok && e.head == head
}
