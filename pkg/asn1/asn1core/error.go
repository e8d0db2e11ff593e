package asn1core

import (
	"errors"
	"fmt"
)

// ErrorType classifies codec failures. Every failure is terminal for the call that raised it.
type ErrorType int

const (
	UnknownError           ErrorType = iota
	TagMismatch                      // leading identifier octet is not the one expected
	TruncatedLength                  // long form length claims more octets than remain
	TruncatedValue                   // input ends before the tag, length or declared body
	NonCanonicalLength               // indefinite, oversized or non minimal length octets
	TrailingData                     // bytes remain after a complete structure
	NegativeValue                    // only unsigned integers are encoded
	MalformedOid                     // OID components out of range or body cannot be parsed
	InvalidIntegerEncoding           // empty, negative or non minimal INTEGER body
	InvalidText                      // base64, hex or PEM text could not be decoded
)

var errorTypeMap nameTable[ErrorType]

func init() {
	errorTypeMap.Add("Unknown", UnknownError)
	errorTypeMap.Add("TagMismatch", TagMismatch)
	errorTypeMap.Add("TruncatedLength", TruncatedLength)
	errorTypeMap.Add("TruncatedValue", TruncatedValue)
	errorTypeMap.Add("NonCanonicalLength", NonCanonicalLength)
	errorTypeMap.Add("TrailingData", TrailingData)
	errorTypeMap.Add("NegativeValue", NegativeValue)
	errorTypeMap.Add("MalformedOid", MalformedOid)
	errorTypeMap.Add("InvalidIntegerEncoding", InvalidIntegerEncoding)
	errorTypeMap.Add("InvalidText", InvalidText)
}

func (t ErrorType) String() string {
	name, err := errorTypeMap.Name(t)
	if err == nil {
		return name
	}
	return fmt.Sprintf("error-type=%d", int(t))
}

type Error interface {
	error
	Type() ErrorType
}

type UnexpectedError[T any] struct {
	inner            error
	units            string
	errorType        ErrorType
	expected, actual T
}

func (e *UnexpectedError[T]) Error() string {
	if e.units == "" {
		return fmt.Sprintf("der: %s: expected=%v, actual=%v", e.inner.Error(), e.expected, e.actual)
	}
	return fmt.Sprintf("der: %s: expected=%v %s, actual=%v %s", e.inner.Error(), e.expected, e.units, e.actual, e.units)
}

func (e *UnexpectedError[T]) Unwrap() error {
	return e.inner
}

func (e *UnexpectedError[T]) WithUnits(units string) *UnexpectedError[T] {
	e.units = units
	return e
}

func (e *UnexpectedError[T]) Type() ErrorType {
	return e.errorType
}

func (e *UnexpectedError[T]) WithType(errorType ErrorType) *UnexpectedError[T] {
	e.errorType = errorType
	return e
}

func (e *UnexpectedError[T]) Expected() T {
	return e.expected
}

func (e *UnexpectedError[T]) Actual() T {
	return e.actual
}

func NewUnexpectedError[T any](expected, actual T, format string, args ...any) *UnexpectedError[T] {
	return &UnexpectedError[T]{
		inner:    fmt.Errorf(format, args...),
		expected: expected,
		actual:   actual,
	}
}

type GeneralError struct {
	inner error
	cause error
	eType ErrorType
}

func NewErrorf(format string, args ...any) *GeneralError {
	return &GeneralError{
		inner: fmt.Errorf(format, args...),
	}
}

func (e *GeneralError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("der: %s: %s", e.inner.Error(), e.cause.Error())
	}
	return "der: " + e.inner.Error()
}

func (e *GeneralError) Type() ErrorType {
	return e.eType
}

// Unwrap exposes the cause when there is one so errors.Is reaches the collaborator's error.
func (e *GeneralError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.inner
}

func (e *GeneralError) WithType(eType ErrorType) *GeneralError {
	e.eType = eType
	return e
}

func (e *GeneralError) WithCause(cause error) *GeneralError {
	e.cause = cause
	return e
}

// TypeOf returns the type of the outermost codec error in err's chain.
func TypeOf(err error) ErrorType {
	var typed Error
	if errors.As(err, &typed) {
		return typed.Type()
	}
	return UnknownError
}

// IsType reports whether any codec error in err's chain has type t.
func IsType(err error, t ErrorType) bool {
	for err != nil {
		var typed Error
		if !errors.As(err, &typed) {
			return false
		}
		if typed.Type() == t {
			return true
		}
		err = errors.Unwrap(typed)
	}
	return false
}

type ErrorList []error

func (el ErrorList) Error() string {
	if len(el) == 0 {
		return ""
	}
	if len(el) == 1 {
		return el[0].Error()
	}
	var s string
	for i, e := range el {
		if i > 0 {
			s += "; "
		}
		s += e.Error()
	}
	return s
}

func (el ErrorList) Unwrap() []error {
	return el
}

// Err returns nil for an empty list so callers can return it directly.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}
