package code

import (
	"strings"

	"code-lookup/internal/pkg/errs"
)

var (
	ErrEmptyCode    = errs.Mark(errs.New("code is required"), errs.ErrInvalidInput)
	ErrEmptyMessage = errs.Mark(errs.New("message is required"), errs.ErrInvalidInput)
)

// Code is a normalized lookup key: trimmed and upper-cased.
type Code string

// Normalize trims surrounding whitespace and upper-cases s. It is idempotent.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func NewCode(raw string) (Code, error) {
	c := Normalize(raw)
	if c == "" {
		return Code(""), ErrEmptyCode
	}
	return Code(c), nil
}

func (c Code) String() string {
	return string(c)
}

// Message is stored as submitted apart from surrounding whitespace.
type Message string

func NewMessage(raw string) (Message, error) {
	m := strings.TrimSpace(raw)
	if m == "" {
		return Message(""), ErrEmptyMessage
	}
	return Message(m), nil
}

func (m Message) String() string {
	return string(m)
}
