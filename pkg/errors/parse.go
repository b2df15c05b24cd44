// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ParseError is returned when a string cannot be parsed as Type.
type ParseError struct {
	Value string
	Type  string
	Err   error
}

func (e *ParseError) Error() string {
	return "cannot parse \"" + e.Value + "\" as " + e.Type
}

func (e *ParseError) Unwrap() error { return e.Err }

// NarrowingError is returned when a 16-bit value does not fit Type.
type NarrowingError struct {
	Value int16
	Type  string
}

func (e *NarrowingError) Error() string {
	return fmt.Sprintf("cannot convert \"%d\" to %s", e.Value, e.Type)
}

// Parse runs parse on s. A failure is returned as a KindParse error naming typ.
func Parse[T any](s, typ string, parse func(string) (T, error)) (T, error) {
	v, err := parse(s)
	if err != nil {
		var zero T
		return zero, FromParse(&ParseError{Value: s, Type: typ, Err: err})
	}
	return v, nil
}

type narrowTarget interface {
	~int8 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Narrow converts v to T, failing with a KindNarrowing error when v is out
// of T's range.
func Narrow[T narrowTarget](v int16) (T, error) {
	t := T(v)
	unsigned := T(0)-1 > 0
	if int16(t) != v || (unsigned && v < 0) {
		var zero T
		return zero, FromNarrowing(&NarrowingError{Value: v, Type: fmt.Sprintf("%T", zero)})
	}
	return t, nil
}

// DecodeUTF8 validates b as UTF-8 text. A failure is returned as a KindUTF8 error.
func DecodeUTF8(b []byte) (string, error) {
	out, _, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", FromUTF8(err)
	}
	return string(out), nil
}

// numErrType maps strconv function names onto the target type name.
func numErrType(fn string) string {
	switch fn {
	case "Atoi", "ParseInt":
		return "int"
	case "ParseUint":
		return "uint"
	case "ParseFloat":
		return "float"
	case "ParseBool":
		return "bool"
	case "ParseComplex":
		return "complex"
	default:
		return strings.TrimPrefix(fn, "Parse")
	}
}

func fromNumError(err *strconv.NumError) error {
	return FromParse(&ParseError{Value: err.Num, Type: numErrType(err.Func), Err: err})
}
