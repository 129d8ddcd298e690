package elox

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(ioutil.Discard)

	assert.False(r.HadError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := newLexError(1, 1, 2, "Unexpected character.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
}

func TestRenderSpan(t *testing.T) {
	testCases := []struct {
		source string
		line   int
		col    int
		endCol int
		want   string
	}{
		// a single-column marker under the offending character
		{"let x = ;", 1, 9, 10, "let x = ;\n        ^"},
		// a marker covering the whole span
		{"let x = nil ?? 0", 1, 13, 15, "let x = nil ?? 0\n            ^^"},
		// the marked line of a multi-line source
		{"a\nbb ccc", 2, 4, 7, "bb ccc\n   ^^^"},
		{"a\nbb ccc\nd", 2, 1, 3, "bb ccc\n^^"},
		// a degenerate span still gets one marker
		{"abc", 1, 2, 2, "abc\n ^"},
		// a span at the end of input points one past the last character
		{"ab", 1, 3, 3, "ab\n  ^"},
		// spans from multi-line lexemes are clamped to the rendered line
		{"ab", 1, 9, 12, "ab\n  ^"},
		// carriage returns don't show up in the rendering
		{"ab\r\ncd", 1, 1, 2, "ab\n^"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		got := RenderSpan(tc.source, tc.line, tc.col, tc.endCol)
		assert.Equal(tc.want, got, "source: %q line %d col %d", tc.source, tc.line, tc.col)
	}
}

func TestRenderSpanLineOutOfRange(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", RenderSpan("a", 5, 1, 2))
	assert.Equal("", RenderSpan("a", 0, 1, 2))
}

func TestRenderError(t *testing.T) {
	assert := assert.New(t)

	source := "let x = @"
	errs := NewErrorSet()
	NewScanner([]rune(source), errs).Scan()

	if assert.Equal(1, errs.Len()) {
		want := "[line 1] LexError: Unexpected character.\n" +
			"let x = @\n" +
			"        ^"
		assert.Equal(want, RenderError(source, errs.Errors()[0]))
	}
}

func TestRenderErrorWithoutSpan(t *testing.T) {
	assert := assert.New(t)

	// errors that carry no span render as-is
	err := errors.New("boom")
	assert.Equal("boom", RenderError("let x = 1", err))
}
