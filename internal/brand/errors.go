// Package brand orchestrates the generation of complete brand identities:
// prompt construction, LLM calls, structured extraction of the responses,
// logo synthesis with deterministic fallback, and per-facet regeneration.
package brand

import (
	"errors"
	"fmt"
)

// Kind classifies generation failures so callers can map them to the right
// HTTP status or retry behaviour.
type Kind string

const (
	// KindValidation means the caller's input was rejected before any
	// network call was made.
	KindValidation Kind = "validation"
	// KindUpstream means the text or image provider call itself failed.
	KindUpstream Kind = "upstream"
	// KindParse means the model's response contained no parseable JSON
	// payload of the expected container type.
	KindParse Kind = "parse"
	// KindShape means the payload parsed but did not match the required
	// structure (missing keys, wrong element count, bad formats).
	KindShape Kind = "shape"
)

// Error is the typed error returned by all generation operations.
type Error struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "generate-concept"
	Message string
	Err     error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s [%s]: %v", e.Op, e.Message, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s [%s]", e.Op, e.Message, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err if it is (or wraps) a *brand.Error, and ""
// otherwise.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

func validationError(op, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: fmt.Sprintf(format, args...)}
}

func upstreamError(op string, err error) *Error {
	return &Error{Kind: KindUpstream, Op: op, Message: "provider call failed", Err: err}
}

func parseError(op, format string, args ...any) *Error {
	return &Error{Kind: KindParse, Op: op, Message: fmt.Sprintf(format, args...)}
}

func shapeError(op, format string, args ...any) *Error {
	return &Error{Kind: KindShape, Op: op, Message: fmt.Sprintf(format, args...)}
}
