package parsererror

import (
	"errors"
	"fmt"
)

// Kind identifies why the interpreter could not produce a transaction.
type Kind string

const (
	KindNoAmountFound   Kind = "NoAmountFound"
	KindInternalFailure Kind = "InternalFailure"
)

// User-facing messages
const (
	MessageNoAmountFound   = "Could not find amount in your message. Please include a number."
	MessageInternalFailure = "Failed to parse your message. Please try again."
)

// Sentinels usable with errors.Is against any *InterpretError of the same kind.
var (
	ErrNoAmountFound   = errors.New("no amount found")
	ErrInternalFailure = errors.New("internal failure")
)

// InterpretError is the only error the interpreter returns.
type InterpretError struct {
	Kind    Kind
	Message string
	Stage   string
	Err     error
}

func (e *InterpretError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at %s: %s: %v", e.Kind, e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *InterpretError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *InterpretError) Is(target error) bool {
	switch target {
	case ErrNoAmountFound:
		return e.Kind == KindNoAmountFound
	case ErrInternalFailure:
		return e.Kind == KindInternalFailure
	}
	return false
}

// NewNoAmountFound returns the error for a message without a usable number.
func NewNoAmountFound() *InterpretError {
	return &InterpretError{
		Kind:    KindNoAmountFound,
		Message: MessageNoAmountFound,
		Stage:   "amount",
	}
}

// NewInternalFailure wraps an unexpected fault raised while running stage.
func NewInternalFailure(stage string, err error) *InterpretError {
	return &InterpretError{
		Kind:    KindInternalFailure,
		Message: MessageInternalFailure,
		Stage:   stage,
		Err:     err,
	}
}

// UserMessage returns the message to show a user for err. Errors that did not
// come from the interpreter get the generic retry prompt.
func UserMessage(err error) string {
	var ie *InterpretError
	if errors.As(err, &ie) {
		return ie.Message
	}
	return MessageInternalFailure
}

// ParseError represents an error parsing one field of an input row
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure of a configuration file
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
