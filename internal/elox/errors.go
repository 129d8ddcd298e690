package elox

import (
	"fmt"
	"strings"
)

// ErrorKind partitions errors by the phase and rule that produced them.
type ErrorKind uint

const (
	// LexError is a malformed lexeme found during scanning.
	LexError ErrorKind = iota
	// SyntaxError means the parser could not form a valid node.
	SyntaxError
	// NameError is a reference to an undeclared or unbound identifier.
	NameError
	// TypeError is an operator applied to incompatible operand types.
	TypeError
	// ControlFlowError is a break/continue/return escaping its valid scope.
	ControlFlowError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case SyntaxError:
		return "SyntaxError"
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case ControlFlowError:
		return "ControlFlowError"
	}
	return "Error"
}

// Error wraps an error message with its kind and the source span where the
// error occurred.
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
	Col     int
	EndCol  int

	where string
}

func (err *Error) Error() string {
	return fmt.Sprintf("[line %d] %s%s: %s", err.Line, err.Kind, err.where, err.Message)
}

func newLexError(line, col, endCol int, message string) *Error {
	return &Error{LexError, message, line, col, endCol, ""}
}

func newSyntaxError(token *Token, message string) *Error {
	return newTokenError(SyntaxError, token, message)
}

func newNameError(token *Token, message string) *Error {
	return newTokenError(NameError, token, message)
}

func newTypeError(token *Token, message string) *Error {
	return newTokenError(TypeError, token, message)
}

func newControlFlowError(token *Token, message string) *Error {
	return newTokenError(ControlFlowError, token, message)
}

func newTokenError(kind ErrorKind, token *Token, message string) *Error {
	where := " at end"
	if token.Typ != EOF {
		where = fmt.Sprintf(" at '%s'", token.Lexeme)
	}
	return &Error{kind, message, token.Line, token.Col, token.EndCol, where}
}

// ErrorSet is an ordered collection of the errors found during a phase. It
// implements Reporter so the scanner, parser, and resolver can accumulate
// into it, and error so a whole phase's failure can be returned as one value.
type ErrorSet struct {
	errors []error
}

func NewErrorSet() *ErrorSet {
	return &ErrorSet{make([]error, 0)}
}

func (set *ErrorSet) Report(err error) {
	set.errors = append(set.errors, err)
}

func (set *ErrorSet) HadError() bool {
	return len(set.errors) != 0
}

// Errors returns the collected errors in the order they were reported.
func (set *ErrorSet) Errors() []error {
	return set.errors
}

func (set *ErrorSet) Len() int {
	return len(set.errors)
}

// Reset drops all collected errors so the set can be reused, e.g. between
// REPL lines.
func (set *ErrorSet) Reset() {
	set.errors = set.errors[:0]
}

func (set *ErrorSet) Error() string {
	msgs := make([]string, len(set.errors))
	for i, err := range set.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}
