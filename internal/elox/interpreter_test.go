package elox

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkEval asserts that the source evaluates to the given value. Programs
// with several statements yield the value of the last one.
func checkEval(t *testing.T, assert *assert.Assertions, src string, want interface{}) {
	t.Helper()
	val, err, _ := evalSource(t, src)
	if assert.NoError(err, "source: %q", src) {
		assert.Equal(want, val, "source: %q", src)
	}
}

func TestInterpretArithmetic(t *testing.T) {
	testCases := []struct {
		src string
		val interface{}
	}{
		{"1 + 2", 3.0},
		{"7 - 10", -3.0},
		{"2 * 3", 6.0},
		{"10 / 4", 2.5},
		{"2 + 3 * 4", 14.0},
		{"(2 + 3) * 4", 20.0},
		{"-3 + 1", -2.0},
		{"--3", 3.0},
		// '+' concatenates strings, and mixes strings with numbers
		{"\"ab\" + \"cd\"", "abcd"},
		{"\"x=\" + 1", "x=1"},
		{"1 + \"x\"", "1x"},
		{"\"v\" + 2.5", "v2.5"},
		// '*' repeats a string by an integer count
		{"\"ab\" * 3", "ababab"},
		{"\"ab\" * 0", ""},
		{"\"ab\" * 1", "ab"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checkEval(t, assert, tc.src, tc.val)
	}
}

func TestInterpretDivisionByZero(t *testing.T) {
	assert := assert.New(t)

	val, err, _ := evalSource(t, "1 / 0")
	assert.NoError(err)
	if assert.IsType(0.0, val) {
		assert.True(math.IsNaN(val.(float64)))
	}

	// NaN is falsy and equal to nothing, including itself
	checkEval(t, assert, "!(1 / 0)", true)
	checkEval(t, assert, "(1 / 0) == (1 / 0)", false)
	checkEval(t, assert, "let x = 1 / 0; x == x", false)
	checkEval(t, assert, "if (1 / 0) \"then\" else \"else\"", "else")
	checkEval(t, assert, "0 / 0 != 0 / 0", true)
}

func TestInterpretComparisonAndEquality(t *testing.T) {
	testCases := []struct {
		src string
		val interface{}
	}{
		{"1 < 2", true},
		{"2 < 1", false},
		{"2 <= 2", true},
		{"3 > 4", false},
		{"4 >= 4", true},
		{"1 == 1", true},
		{"1 != 2", true},
		{"\"a\" == \"a\"", true},
		{"\"a\" == \"b\"", false},
		{"true == true", true},
		{"true == false", false},
		{"nil == nil", true},
		// values of different variants are never equal
		{"1 == \"1\"", false},
		{"0 == false", false},
		{"\"\" == false", false},
		{"nil == false", false},
		{"nil == 0", false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checkEval(t, assert, tc.src, tc.val)
	}
}

func TestInterpretTruthiness(t *testing.T) {
	testCases := []struct {
		src string
		val interface{}
	}{
		{"!false", true},
		{"!nil", true},
		{"!0", true},
		{"!\"\"", true},
		{"!true", false},
		{"!1", false},
		{"!-1", false},
		{"!\"a\"", false},
		{"!fun () { 1 }", false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checkEval(t, assert, tc.src, tc.val)
	}
}

func TestInterpretLogical(t *testing.T) {
	testCases := []struct {
		src string
		val interface{}
	}{
		// the result is the operand that decided it, not a coerced boolean
		{"1 or 2", 1.0},
		{"0 or 2", 2.0},
		{"nil or \"x\"", "x"},
		{"1 and 2", 2.0},
		{"0 and 2", 0.0},
		{"false and true", false},
		{"nil and 1", nil},
		// the right operand is not evaluated when short-circuiting
		{"let a = 1; false and (a = 2); a", 1.0},
		{"let a = 1; true or (a = 2); a", 1.0},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checkEval(t, assert, tc.src, tc.val)
	}
}

func TestInterpretCoalesce(t *testing.T) {
	testCases := []struct {
		src string
		val interface{}
	}{
		{"nil ?? 3", 3.0},
		{"0 ?? 3", 3.0},
		{"\"\" ?? \"y\"", "y"},
		{"false ?? true", true},
		{"5 ?? 3", 5.0},
		{"\"x\" ?? \"y\"", "x"},
		{"nil ?? 0 ?? 7", 7.0},
		// the left operand is evaluated exactly once
		{"let n = 0; fun f() { n += 1, n }; f() ?? 9; n", 1.0},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checkEval(t, assert, tc.src, tc.val)
	}
}

func TestInterpretConditional(t *testing.T) {
	testCases := []struct {
		src string
		val interface{}
	}{
		{"if (true) 1 else 2", 1.0},
		{"if (false) 1 else 2", 2.0},
		// a falsy condition with no else yields nil
		{"if (false) 1", nil},
		{"if (\"\") 1", nil},
		{"if (0) 1", nil},
		{"let grade = if (75 >= 60) \"pass\" else \"fail\"; grade", "pass"},
		{"1 < 2 ? \"y\" : \"n\"", "y"},
		{"1 > 2 ? \"y\" : \"n\"", "n"},
		{"if (true) { 1, 2 } else { 3 }", 2.0},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checkEval(t, assert, tc.src, tc.val)
	}
}

func TestInterpretBlocksAndScopes(t *testing.T) {
	testCases := []struct {
		src string
		val interface{}
	}{
		// a block's value is its last statement's value
		{"{ 1, 2, 3 }", 3.0},
		{"{ }", nil},
		{"{ let x = 1, x + 1 }", 2.0},
		// shadowing in an inner scope leaves the outer binding alone
		{"let a = 1; { let a = 2, a }", 2.0},
		{"let a = 1; { let a = 2 }; a", 1.0},
		// assignment mutates the innermost existing binding
		{"let a = 1; { a = 5 }; a", 5.0},
		{"let a = 1; { let a = 2, a = 3 }; a", 1.0},
		// the first declaration of a name wins
		{"let a = 1; let a = 2; a", 1.0},
		// a re-declaration's initializer is still evaluated
		{"let a = 1; let n = 0; let a = (n = 5); a + n", 6.0},
		// a chained let-initializer binds every name on the spine
		{"let a = b = 10; a + b", 20.0},
		{"let a = 0; let b = 0; a = b = 7; a + b", 14.0},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checkEval(t, assert, tc.src, tc.val)
	}
}

func TestInterpretUnderscore(t *testing.T) {
	testCases := []struct {
		src string
		val interface{}
	}{
		// '_' holds the previous statement's value
		{"1 + 2; _ * 2", 6.0},
		{"_", nil},
		{"\"a\"; _ + \"b\"", "ab"},
		// lookups walk outward when the inner scope hasn't rebound it yet
		{"5; { _ }", 5.0},
		{"5; { 10, _ }; _", 10.0},
		{"print 3; _", 3.0},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checkEval(t, assert, tc.src, tc.val)
	}
}

func TestInterpretLoops(t *testing.T) {
	testCases := []struct {
		src string
		val interface{}
	}{
		{"let i = 0; while (i < 4) i += 1; i", 4.0},
		// a loop's value is the body value of the last completed iteration
		{"let i = 0; while (i < 3) { i += 1, i * 10 }", 30.0},
		{"while (false) 1", nil},
		{"let sum = 0; for (let i = 1; i <= 4; i += 1) sum += i; sum", 10.0},
		{"for (let i = 0; i < 3; i += 1) { i }", 2.0},
		// 'break' leaves the loop and skips the rest of the body
		{"let i = 0; while (true) { if (i >= 2) break, i += 1 }; i", 2.0},
		{"let i = 0; while (true) { i += 1, if (i == 3) break, i * 2 }", 4.0},
		{"let i = 0; let j = 0; while (true) { i += 1, if (i > 2) break, j += 1 }; j", 2.0},
		// 'continue' skips to the next iteration but still runs the
		// for-loop's increment
		{"let acc = 0; for (let k = 0; k < 5; k += 1) { if (k == 2) continue, acc += 1 }; acc", 4.0},
		{"let i = 0; let acc = 0; while (i < 5) { i += 1, if (i == 2) continue, acc += 1 }; acc", 4.0},
		// a 'let' in the body re-initializes every iteration
		{"let out = 0; for (let i = 0; i < 3; i += 1) { let x = i, out = out * 10 + x }; out", 12.0},
		// 'break' only leaves the innermost loop
		{"let n = 0; for (let i = 0; i < 3; i += 1) { for (let j = 0; j < 3; j += 1) { if (j == 1) break, n += 1 } }; n", 3.0},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checkEval(t, assert, tc.src, tc.val)
	}
}

func TestInterpretFunctions(t *testing.T) {
	testCases := []struct {
		src string
		val interface{}
	}{
		{"fun add(a, b) { a + b }; add(3, 4)", 7.0},
		// without an explicit return, a call yields the body's value
		{"fun f(n) { if (n > 0) return \"pos\", \"non-pos\" }; f(1)", "pos"},
		{"fun f(n) { if (n > 0) return \"pos\", \"non-pos\" }; f(0)", "non-pos"},
		{"fun f() { return, 1 }; f()", nil},
		{"fun f() { }; f()", nil},
		// a function may refer to its own binding
		{"fun fact(n) { if (n < 2) 1 else n * fact(n - 1) }; fact(5)", 120.0},
		{"fun fib(n) { if (n < 2) n else fib(n - 1) + fib(n - 2) }; fib(10)", 55.0},
		// functions are first-class values
		{"fun twice(f, x) { f(f(x)) }; fun inc(n) { n + 1 }; twice(inc, 5)", 7.0},
		{"fun (x) { x * 2 }(21)", 42.0},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		checkEval(t, assert, tc.src, tc.val)
	}
}

func TestInterpretClosures(t *testing.T) {
	assert := assert.New(t)

	// a closure captures its defining environment, which outlives the call
	// that created it
	checkEval(t, assert,
		"fun counter() { let n = 0, fun () { n += 1, n } };"+
			"let c = counter(); c(); c()",
		2.0)

	// separate calls produce independent environments
	checkEval(t, assert,
		"fun counter() { let n = 0, fun () { n += 1, n } };"+
			"let a = counter(); let b = counter(); a(); a(); b()",
		1.0)
}

func TestInterpretRuntimeErrors(t *testing.T) {
	testCases := []struct {
		src     string
		kind    ErrorKind
		message string
	}{
		{"1 + nil", TypeError, "Operands must be two numbers or two strings."},
		{"true + 1", TypeError, "Operands must be two numbers or two strings."},
		{"-\"s\"", TypeError, "Operand must be a number."},
		{"1 < \"a\"", TypeError, "Operands must be numbers."},
		{"true * 2", TypeError, "Operands must be numbers."},
		{"\"a\" * \"b\"", TypeError, "Operands must be numbers."},
		{"1 - nil", TypeError, "Operands must be numbers."},
		// string repetition wants a non-negative integer count
		{"\"x\" * 1.5", TypeError, "String repetition count must be a non-negative integer."},
		{"\"x\" * -1", TypeError, "String repetition count must be a non-negative integer."},
		{"1(2)", TypeError, "Can only call functions."},
		{"\"f\"(2)", TypeError, "Can only call functions."},
		{"fun f(a) { a }; f(1, 2)", TypeError, "Expected 1 arguments but got 2."},
		{"fun f(a, b) { a }; f(1)", TypeError, "Expected 2 arguments but got 1."},
		{"break", ControlFlowError, "Can't use 'break' outside of a loop."},
		{"continue", ControlFlowError, "Can't use 'continue' outside of a loop."},
		{"return 1", ControlFlowError, "Can't return from top-level code."},
		// break and continue never cross a call boundary
		{"fun f() { break }; f()", ControlFlowError, "Can't use 'break' outside of a loop."},
		{"while (true) { fun f() { continue }, f() }", ControlFlowError, "Can't use 'continue' outside of a loop."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err, _ := evalSource(t, tc.src)

		assert.Nil(val, "source: %q", tc.src)
		if assert.Error(err, "source: %q", tc.src) {
			eloxErr, ok := err.(*Error)
			if assert.True(ok, "source: %q", tc.src) {
				assert.Equal(tc.kind, eloxErr.Kind, "source: %q", tc.src)
				assert.Equal(tc.message, eloxErr.Message, "source: %q", tc.src)
			}
		}
	}
}

func TestInterpretPrint(t *testing.T) {
	testCases := []struct {
		src    string
		output string
	}{
		{"print \"hello\"", "hello\n"},
		{"print 1 + 2", "3\n"},
		{"print nil", "nil\n"},
		{"print true", "true\n"},
		{"print 3.14", "3.14\n"},
		{"print 4294967296", "4294967296\n"},
		{"print 1 / 0", "NaN\n"},
		{"print \"a\" + 1", "a1\n"},
		{"print 1; print 2", "1\n2\n"},
		{"print fun (a) { a }", "<fn/1>\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err, output := evalSource(t, tc.src)

		assert.NoError(err, "source: %q", tc.src)
		assert.Equal(tc.output, output, "source: %q", tc.src)
	}
}

// A print statement is an expression statement at heart: it evaluates to the
// value it printed.
func TestInterpretPrintValue(t *testing.T) {
	assert := assert.New(t)

	val, err, output := evalSource(t, "let x = 21; print x * 2")
	assert.NoError(err)
	assert.Equal(42.0, val)
	assert.Equal("42\n", output)
}

func TestInterpretStatementsBeforeRuntimeErrorTakeEffect(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	result := Run("print 1; print 2; nil + 1", &out)

	assert.False(result.Ok())
	assert.NotNil(result.RuntimeErr)
	assert.Equal("1\n2\n", out.String())
}
