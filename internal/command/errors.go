package command

import (
	"errors"
	"fmt"
)

// ParseErrorKind categorizes command parse failures.
type ParseErrorKind string

const (
	// ErrKindMissingKey indicates a required key=value pair was absent.
	ErrKindMissingKey ParseErrorKind = "MISSING_KEY"

	// ErrKindInvalidNumber indicates a numeric value failed to parse.
	ErrKindInvalidNumber ParseErrorKind = "INVALID_NUMBER"

	// ErrKindUnterminatedQuote indicates a quoted value with no closing quote.
	ErrKindUnterminatedQuote ParseErrorKind = "UNTERMINATED_QUOTE"
)

// ParseError reports a malformed command. Recoverable: the offending
// command is rejected and processing continues with the next line.
type ParseError struct {
	Kind ParseErrorKind
	Key  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrKindMissingKey:
		return fmt.Sprintf("missing %s=", e.Key)
	case ErrKindInvalidNumber:
		return fmt.Sprintf("invalid %s", e.Key)
	case ErrKindUnterminatedQuote:
		return fmt.Sprintf("missing closing quote for %s", e.Key)
	}
	return string(e.Kind)
}

// IsParseError returns true if the error is a command parse failure.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
