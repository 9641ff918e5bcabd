package contracts

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a formula could not produce a clean result.
// ErrorNone is the success sentinel.
type ErrorKind uint8

const (
	ErrorNone ErrorKind = iota
	ErrorEmpty
	ErrorInvalidFormula
	ErrorInvalidOperator
	ErrorInvalidCell
	ErrorDivideByZero
	ErrorMissingParentheses
	ErrorPartial
	ErrorInvalidNumber
)

var UnknownErrorKindError = errors.New("unknown error kind")

var errorKindNames = map[ErrorKind]string{
	ErrorNone:               "",
	ErrorEmpty:              "Empty",
	ErrorInvalidFormula:     "InvalidFormula",
	ErrorInvalidOperator:    "InvalidOperator",
	ErrorInvalidCell:        "InvalidCell",
	ErrorDivideByZero:       "DivideByZero",
	ErrorMissingParentheses: "MissingParentheses",
	ErrorPartial:            "Partial",
	ErrorInvalidNumber:      "InvalidNumber",
}

// String returns the display text downstream renderers show in place of a value
func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return ""
	case ErrorEmpty:
		return "#EMPTY!"
	case ErrorDivideByZero:
		return "#DIV/0!"
	case ErrorInvalidCell:
		return "#REF!"
	case ErrorPartial, ErrorInvalidFormula, ErrorInvalidNumber, ErrorInvalidOperator, ErrorMissingParentheses:
		return "#ERR"
	}
	return "#ERR"
}

// Name is lossless, unlike the display text several kinds share
func (k ErrorKind) Name() string {
	return errorKindNames[k]
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	if _, ok := errorKindNames[k]; !ok {
		return nil, fmt.Errorf("%d: %w", k, UnknownErrorKindError)
	}
	return []byte(k.Name()), nil
}

func (k *ErrorKind) UnmarshalText(text []byte) error {
	kind, err := ParseErrorKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

func ParseErrorKind(name string) (ErrorKind, error) {
	for kind, kindName := range errorKindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return ErrorNone, fmt.Errorf("%s: %w", name, UnknownErrorKindError)
}
