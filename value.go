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
	"reflect"
)

// -----------------------------------------------------------------------------

// Kind classifies a normalized argument into one of the categories a
// conversion directive can require.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindIntegral
	KindFloat
	KindPointer
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindIntegral:
		return "integral"
	case KindFloat:
		return "floating-point"
	case KindPointer:
		return "pointer"
	case KindText:
		return "text"
	}
	return "invalid"
}

// -----------------------------------------------------------------------------

// Signed, Unsigned, Real and Chars are the type sets a formatting
// argument may be drawn from. A value outside these sets cannot be
// turned into a Value at all: the constructors below fail to compile.
type (
	Signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}
	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
	}
	Real interface {
		~float32 | ~float64
	}
	Chars interface {
		~string | ~[]byte
	}
	Basic interface {
		Signed | Unsigned | Real | Chars
	}
)

// Value is the canonical representation of one formatting argument:
// a category tag plus the normalized payload (int64 or uint64 for
// integrals, float64 for floats, string for text, the pointer itself
// for pointers).
type Value struct {
	kind Kind
	val  interface{}
}

// Kind returns the category of the normalized argument.
func (v Value) Kind() Kind { return v.kind }

// Interface returns the canonical payload.
func (v Value) Interface() interface{} { return v.val }

// -----------------------------------------------------------------------------

// Int normalizes a signed integral value.
func Int[T Signed](v T) Value {
	return Value{kind: KindIntegral, val: int64(v)}
}

// Uint normalizes an unsigned integral value.
func Uint[T Unsigned](v T) Value {
	return Value{kind: KindIntegral, val: uint64(v)}
}

// Float normalizes a floating-point value.
func Float[T Real](v T) Value {
	return Value{kind: KindFloat, val: float64(v)}
}

// Text normalizes a string-like value.
func Text[T Chars](v T) Value {
	return Value{kind: KindText, val: string(v)}
}

// Ptr normalizes a pointer. The pointer passes through unchanged.
func Ptr[T any](p *T) Value {
	return Value{kind: KindPointer, val: p}
}

// Of normalizes any value of the Basic set, dispatching named types on
// the kind of their underlying type.
func Of[T Basic](v T) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindIntegral, val: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{kind: KindIntegral, val: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return Value{kind: KindFloat, val: rv.Float()}
	case reflect.String:
		return Value{kind: KindText, val: rv.String()}
	case reflect.Slice:
		return Value{kind: KindText, val: string(rv.Bytes())}
	}
	return Value{} // unreachable: T is constrained to the Basic set
}

// -----------------------------------------------------------------------------
