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

package safefmt

import (
	"fmt"
)

// -----------------------------------------------------------------------------

// MismatchError reports a directive whose required category does not
// match the category of its positional argument.
type MismatchError struct {
	Format string
	Pos    int  // offset of the '%' introducing the directive
	Verb   byte // conversion character
	Arg    int  // zero-based index of the offending argument
	Want   Kind
	Got    Kind
}

func (e *MismatchError) Error() string {
	var msg string
	switch e.Want {
	case KindIntegral:
		msg = "parameter is not integral"
	case KindFloat:
		msg = "parameter is not floating point"
	case KindText:
		msg = "non-string parameter"
	default:
		msg = "parameter category mismatch"
	}
	return fmt.Sprintf("%%%c at %d: %s (argument %d is %s)", e.Verb, e.Pos, msg, e.Arg+1, e.Got)
}

// -----------------------------------------------------------------------------

// VerbError reports a conversion character outside the recognized set,
// or a '%' that ends the template with no conversion character at all
// (Verb is 0 in that case).
type VerbError struct {
	Format string
	Pos    int
	Verb   byte
}

func (e *VerbError) Error() string {
	if e.Pos == len(e.Format)-1 {
		return fmt.Sprintf("invalid format character: template ends after '%%' at %d", e.Pos)
	}
	return fmt.Sprintf("invalid format character %q at %d", e.Verb, e.Pos)
}

// -----------------------------------------------------------------------------

// ArityError reports a directive count that does not match the
// argument count. Pos is the offset of the directive that found no
// argument, or len(Format) when arguments were left unconsumed.
type ArityError struct {
	Format string
	Pos    int
	Args   int // arguments supplied
	Used   int // arguments consumed before the failure
}

func (e *ArityError) Error() string {
	if e.Pos < len(e.Format) {
		return fmt.Sprintf("missing argument for directive at %d (%d supplied)", e.Pos, e.Args)
	}
	return fmt.Sprintf("%d argument(s) unconsumed at end of template", e.Args-e.Used)
}

// -----------------------------------------------------------------------------
