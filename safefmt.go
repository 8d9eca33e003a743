/*
 * Copyright (c) 2026 The safefmt Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package safefmt formats text from printf-style templates whose
// directives are checked against the categories of their arguments
// before any output is produced.
//
// Arguments enter through a closed set of constructors (Int, Uint,
// Float, Text, Ptr, Of) that normalize a value and tag it with its
// category; a value outside the supported type sets does not compile.
// A template is then validated by a single linear scan matching each
// directive (%f, %g, %d, %s; %% is a literal percent) against the
// category of its positional argument, and only a fully validated
// call reaches the underlying formatting routine.
package safefmt

import (
	"fmt"
	"io"
	"log"
	"os"
)

// -----------------------------------------------------------------------------

// Fprintf validates format against args and, when the check clears,
// performs the substitution, writing the result to w. It returns the
// number of bytes written. A failed check writes nothing.
func Fprintf(w io.Writer, format string, args ...Value) (n int, err error) {
	if err = Check(format, args...); err != nil {
		return
	}
	return fmt.Fprintf(w, format, operands(args)...)
}

// Printf is Fprintf to the standard output stream.
func Printf(format string, args ...Value) (n int, err error) {
	return Fprintf(os.Stdout, format, args...)
}

// Sprintf validates format against args and returns the formatted
// text. A failed check returns the empty string and the error.
func Sprintf(format string, args ...Value) (s string, err error) {
	if err = Check(format, args...); err != nil {
		return
	}
	return fmt.Sprintf(format, operands(args)...), nil
}

// MustSprintf is Sprintf that panics on a failed check.
func MustSprintf(format string, args ...Value) string {
	s, err := Sprintf(format, args...)
	check(err)
	return s
}

func operands(args []Value) []interface{} {
	if len(args) == 0 {
		return nil
	}
	ops := make([]interface{}, len(args))
	for i, a := range args {
		ops[i] = a.val
	}
	return ops
}

func check(err error) {
	if err != nil {
		log.Panicln(err)
	}
}

// -----------------------------------------------------------------------------
