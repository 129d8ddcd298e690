package elox

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// RunResult is the outcome of running one piece of source text: the final
// value, the set of scan/parse/resolve errors, or a single runtime error.
type RunResult struct {
	Value         interface{}
	CompileErrors *ErrorSet
	RuntimeErr    *Error
}

// Ok reports whether the run produced a value.
func (result RunResult) Ok() bool {
	return result.CompileErrors == nil && result.RuntimeErr == nil
}

// Run scans, parses, resolves, and evaluates the source text against a fresh
// top-level scope. Print statements write to output. Bindings never leak
// between calls.
func Run(source string, output io.Writer) RunResult {
	errs := NewErrorSet()
	scanner := NewScanner([]rune(source), errs)
	tokens := scanner.Scan()
	parser := NewParser(tokens, errs)
	statements := parser.Parse()
	if errs.HadError() {
		return RunResult{CompileErrors: errs}
	}
	resolver := NewResolver(errs)
	resolver.Resolve(statements)
	if errs.HadError() {
		return RunResult{CompileErrors: errs}
	}

	interpreter := NewInterpreter(output)
	val, err := interpreter.Interpret(statements)
	if err != nil {
		return RunResult{RuntimeErr: err.(*Error)}
	}
	return RunResult{Value: val}
}

// breakSignal, continueSignal, and returnSignal are the non-local control
// flow outcomes of evaluation. They travel the same path as errors so every
// recursive evaluation step propagates them explicitly; loop and call
// boundaries inspect and consume them, and a signal escaping its valid scope
// becomes a ControlFlowError.
type breakSignal struct {
	token *Token
}

func (s *breakSignal) Error() string { return "break" }

type continueSignal struct {
	token *Token
}

func (s *continueSignal) Error() string { return "continue" }

type returnSignal struct {
	token *Token
	val   interface{}
}

func (s *returnSignal) Error() string {
	return fmt.Sprintf("return %v", stringify(s.val))
}

// escapedSignal converts a control signal that reached an invalid boundary
// into the ControlFlowError reported to the user. Other errors pass through.
func escapedSignal(err error) error {
	switch sig := err.(type) {
	case *breakSignal:
		return newControlFlowError(sig.token, "Can't use 'break' outside of a loop.")
	case *continueSignal:
		return newControlFlowError(sig.token, "Can't use 'continue' outside of a loop.")
	case *returnSignal:
		return newControlFlowError(sig.token, "Can't return from top-level code.")
	}
	return err
}

// callable is implemented by values that can be called.
type callable interface {
	arity() int
	call(in *Interpreter, args []interface{}) (interface{}, error)
}

// function is a function value: the literal it was created from plus the
// environment chain captured at its definition.
type function struct {
	decl    *FunctionExpr
	closure *Environment
}

func newFunction(decl *FunctionExpr, closure *Environment) *function {
	fn := new(function)
	fn.decl = decl
	fn.closure = closure
	return fn
}

func (fn *function) arity() int {
	return len(fn.decl.Params)
}

func (fn *function) call(in *Interpreter, args []interface{}) (interface{}, error) {
	// Each call gets its own environment over the captured closure,
	// otherwise recursion would break: multiple calls to the same function
	// in play at the same time each need their own parameter bindings.
	env := NewEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	val, err := in.execBlock(fn.decl.Body.Stmts, env)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.val, nil
		}
		// break/continue never cross a call boundary
		return nil, escapedSignal(err)
	}
	// without an explicit return, a call yields the body's value
	return val, nil
}

func (fn *function) String() string {
	return fmt.Sprintf("<fn/%d>", fn.arity())
}

// stringify renders a value in its canonical string form.
func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Stringify renders a value in its canonical string form, as the print
// statement would.
func Stringify(v interface{}) string {
	return stringify(v)
}

// isTruthy maps a value to a boolean for use in conditions: false and nil
// are falsy, as are NaN, zero, and the empty string.
func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case string:
		return v != ""
	default:
		return true
	}
}

// isEqual compares by value within the same variant; values of different
// variants are never equal, and NaN is equal to nothing, including itself.
func isEqual(a, b interface{}) bool {
	if aNum, ok := a.(float64); ok {
		bNum, ok := b.(float64)
		return ok && !math.IsNaN(aNum) && !math.IsNaN(bNum) && aNum == bNum
	}
	if _, ok := b.(float64); ok {
		return false
	}
	return a == b
}

func isInteger(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}
