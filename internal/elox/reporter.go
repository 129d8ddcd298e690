package elox

import (
	"fmt"
	"io"
	"strings"
)

// Reporter defines the interface for structures that can collect errors as
// they are found. A reporter is defined to separate error reporting code
// from error displaying code. Fully-featured languages have a complex setup
// for reporting errors to users.
type Reporter interface {
	Report(err error)
	HadError() bool
}

// SimpleReporter writes errors as-is to an inner writer.
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

// RenderSpan produces a two-line display for a source span: the offending
// source line verbatim, then a marker line with '^' characters under the
// implicated column range.
func RenderSpan(source string, line, col, endCol int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	text := strings.TrimSuffix(lines[line-1], "\r")
	if col < 1 {
		col = 1
	}
	width := endCol - col
	if width < 1 {
		width = 1
	}
	// Spans produced by multi-line lexemes can point past the rendered line.
	if col > len([]rune(text))+1 {
		col = len([]rune(text)) + 1
		width = 1
	}
	marker := strings.Repeat(" ", col-1) + strings.Repeat("^", width)
	return text + "\n" + marker
}

// RenderError formats an error with its source-line indicator when the error
// carries a span.
func RenderError(source string, err error) string {
	if err, ok := err.(*Error); ok {
		return err.Error() + "\n" + RenderSpan(source, err.Line, err.Col, err.EndCol)
	}
	return err.Error()
}
