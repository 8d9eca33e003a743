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

// -----------------------------------------------------------------------------

// Directive is one parsed conversion marker of a format template:
// its verb, the argument category the verb requires, and the byte
// offset of the introducing '%'.
type Directive struct {
	Verb byte
	Kind Kind
	Pos  int
}

// verbKind maps a conversion character to the category it requires.
func verbKind(c byte) Kind {
	switch c {
	case 'f', 'g':
		return KindFloat
	case 'd':
		return KindIntegral
	case 's':
		return KindText
	}
	return KindInvalid
}

// nextDirective advances from offset i to the next conversion
// directive, skipping literal text and %% escapes. ok reports whether
// a directive was found; when it is false the template is exhausted
// and next == len(format).
func nextDirective(format string, i int) (d Directive, next int, ok bool, err error) {
	for i < len(format) {
		if format[i] != '%' {
			i++
			continue
		}
		if i+1 == len(format) {
			err = &VerbError{Format: format, Pos: i}
			return
		}
		verb := format[i+1]
		if verb == '%' {
			i += 2
			continue
		}
		k := verbKind(verb)
		if k == KindInvalid {
			err = &VerbError{Format: format, Pos: i, Verb: verb}
			return
		}
		return Directive{Verb: verb, Kind: k, Pos: i}, i + 2, true, nil
	}
	return Directive{}, len(format), false, nil
}

// Directives scans format and returns its conversion directives in
// order, excluding %% escapes.
func Directives(format string) (ds []Directive, err error) {
	for i := 0; i < len(format); {
		d, next, ok, e := nextDirective(format, i)
		if e != nil {
			return nil, e
		}
		if !ok {
			break
		}
		ds = append(ds, d)
		i = next
	}
	return
}

// -----------------------------------------------------------------------------

// Check validates format against args in a single left-to-right scan.
// Each recognized directive consumes exactly one argument and must
// match its category; %% consumes none. The first violation aborts
// the scan: an unrecognized conversion character (or a '%' ending the
// template) yields a *VerbError, a category mismatch a
// *MismatchError, and a directive with no argument left - or
// arguments left over at the end of the template - an *ArityError.
func Check(format string, args ...Value) error {
	arg := 0
	for i := 0; i < len(format); {
		d, next, ok, err := nextDirective(format, i)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if arg == len(args) {
			return &ArityError{Format: format, Pos: d.Pos, Args: len(args), Used: arg}
		}
		if got := args[arg].kind; got != d.Kind {
			return &MismatchError{
				Format: format, Pos: d.Pos, Verb: d.Verb, Arg: arg, Want: d.Kind, Got: got,
			}
		}
		arg++
		i = next
	}
	if arg != len(args) {
		return &ArityError{Format: format, Pos: len(format), Args: len(args), Used: arg}
	}
	return nil
}

// -----------------------------------------------------------------------------
