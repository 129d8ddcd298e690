package elox

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Interpreter evaluates a syntax tree by walking it one node at a time. It
// owns the environment chain for a single run; a fresh interpreter starts
// from a fresh top-level scope.
type Interpreter struct {
	environment *Environment
	output      io.Writer
}

func NewInterpreter(output io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	globals.rebind("_", nil)
	return &Interpreter{globals, output}
}

// Interpret runs the program and returns the value of its last statement. A
// break, continue, or return signal reaching the top of evaluation is a
// ControlFlowError.
func (in *Interpreter) Interpret(statements []Stmt) (interface{}, error) {
	var last interface{}
	for _, stmt := range statements {
		val, err := in.exec(stmt)
		if err != nil {
			return nil, escapedSignal(err)
		}
		last = val
	}
	return last, nil
}

func (in *Interpreter) VisitBreakStmt(stmt *BreakStmt) (interface{}, error) {
	return nil, &breakSignal{stmt.Keyword}
}

func (in *Interpreter) VisitContinueStmt(stmt *ContinueStmt) (interface{}, error) {
	return nil, &continueSignal{stmt.Keyword}
}

func (in *Interpreter) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	return in.eval(stmt.Expression)
}

func (in *Interpreter) VisitLetStmt(stmt *LetStmt) (interface{}, error) {
	val, err := in.evalLetInit(stmt.Init)
	if err != nil {
		return nil, err
	}
	in.environment.Define(stmt.Name.Lexeme, val)
	return val, nil
}

// evalLetInit evaluates a let-initializer. The targets of a chained
// assignment spine are bound as well, so 'let a = b = 10' binds both names
// in the declaring scope; a target that is already bound somewhere in the
// chain is assigned in place instead.
func (in *Interpreter) evalLetInit(init Expr) (interface{}, error) {
	if init == nil {
		return nil, nil
	}
	assign, ok := init.(*AssignExpr)
	if !ok {
		return in.eval(init)
	}
	val, err := in.evalLetInit(assign.Val)
	if err != nil {
		return nil, err
	}
	if in.environment.IsDefined(assign.Name.Lexeme) {
		if err := in.environment.Assign(assign.Name, val); err != nil {
			return nil, err
		}
	} else {
		in.environment.Define(assign.Name.Lexeme, val)
	}
	return val, nil
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	val, err := in.eval(stmt.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.output, stringify(val))
	return val, nil
}

func (in *Interpreter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	var val interface{}
	if stmt.Val != nil {
		var err error
		val, err = in.eval(stmt.Val)
		if err != nil {
			return nil, err
		}
	}
	return nil, &returnSignal{stmt.Keyword, val}
}

func (in *Interpreter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	val, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}
	if err := in.environment.Assign(expr.Name, val); err != nil {
		return nil, err
	}
	// an assignment evaluates to the assigned value, so chains work
	return val, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return !isEqual(lhs, rhs), nil

	case EQUAL_EQUAL:
		return isEqual(lhs, rhs), nil

	case GREATER:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum > rightNum, nil

	case GREATER_EQUAL:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum >= rightNum, nil

	case LESS:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum < rightNum, nil

	case LESS_EQUAL:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum <= rightNum, nil

	case MINUS:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum - rightNum, nil

	case PLUS:
		return add(expr.Op, lhs, rhs)

	case SLASH:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		// division by zero is NaN, not an error
		if rightNum == 0 {
			return math.NaN(), nil
		}
		return leftNum / rightNum, nil

	case STAR:
		return multiply(expr.Op, lhs, rhs)
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitBlockExpr(expr *BlockExpr) (interface{}, error) {
	return in.execBlock(expr.Stmts, NewEnvironment(in.environment))
}

func (in *Interpreter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, err := in.eval(expr.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]interface{}, 0, len(expr.Args))
	for _, argExpr := range expr.Args {
		arg, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	fn, ok := callee.(callable)
	if !ok {
		return nil, newTypeError(expr.Paren, "Can only call functions.")
	}
	if len(args) != fn.arity() {
		return nil, newTypeError(expr.Paren,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.arity(), len(args)))
	}
	return fn.call(in, args)
}

func (in *Interpreter) VisitConditionalExpr(expr *ConditionalExpr) (interface{}, error) {
	cond, err := in.eval(expr.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.exec(expr.Then)
	}
	if expr.Else != nil {
		return in.exec(expr.Else)
	}
	// a falsy condition with no else branch yields nil
	return nil, nil
}

func (in *Interpreter) VisitFunctionExpr(expr *FunctionExpr) (interface{}, error) {
	return newFunction(expr, in.environment), nil
}

func (in *Interpreter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return in.eval(expr.Expression)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Val, nil
}

func (in *Interpreter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}

	// The expression's value is whichever operand's value determined the
	// result, not a coerced boolean.
	switch expr.Op.Typ {
	case OR:
		if isTruthy(lhs) {
			return lhs, nil
		}
	case AND:
		if !isTruthy(lhs) {
			return lhs, nil
		}
	default:
		panic("Unreachable")
	}

	return in.eval(expr.Rhs)
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	exprVal, err := in.eval(expr.Expression)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return !isTruthy(exprVal), nil
	case MINUS:
		if exprNum, ok := exprVal.(float64); ok {
			return -exprNum, nil
		}
		return nil, newTypeError(expr.Op, "Operand must be a number.")
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return in.environment.Get(expr.Name)
}

func (in *Interpreter) VisitWhileExpr(expr *WhileExpr) (interface{}, error) {
	// The loop's value is the body value of the last completed iteration.
	var last interface{}
	for {
		cond, err := in.eval(expr.Cond)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return last, nil
		}

		val, err := in.execLoopBody(expr.Body)
		if err != nil {
			switch err.(type) {
			case *breakSignal:
				return last, nil
			case *continueSignal:
				// fall through to the increment
			default:
				return nil, err
			}
		} else {
			last = val
		}

		if expr.Incr != nil {
			if _, err := in.eval(expr.Incr); err != nil {
				return nil, err
			}
		}
	}
}

// execLoopBody runs one loop iteration in a fresh child scope, so a 'let' in
// the body re-initializes on every iteration.
func (in *Interpreter) execLoopBody(body Stmt) (interface{}, error) {
	prev := in.environment
	in.environment = NewEnvironment(prev)
	defer func() {
		in.environment = prev
	}()
	return in.exec(body)
}

// execBlock runs statements in the given environment and returns the last
// statement's value.
func (in *Interpreter) execBlock(statements []Stmt, environment *Environment) (interface{}, error) {
	prev := in.environment
	in.environment = environment
	defer func() {
		in.environment = prev
	}()
	var last interface{}
	for _, stmt := range statements {
		val, err := in.exec(stmt)
		if err != nil {
			return nil, err
		}
		last = val
	}
	return last, nil
}

// exec evaluates a single statement and rebinds '_' in the innermost active
// scope to the statement's value.
func (in *Interpreter) exec(stmt Stmt) (interface{}, error) {
	val, err := stmt.Accept(in)
	if err != nil {
		return nil, err
	}
	in.environment.rebind("_", val)
	return val, nil
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}

// add implements '+': numeric sum, string concatenation, or mixed
// string/number concatenation with the number in its canonical string form.
func add(op *Token, lhs, rhs interface{}) (interface{}, error) {
	leftNum, okLeftNum := lhs.(float64)
	rightNum, okRightNum := rhs.(float64)
	if okLeftNum && okRightNum {
		return leftNum + rightNum, nil
	}
	leftStr, okLeftStr := lhs.(string)
	rightStr, okRightStr := rhs.(string)
	if okLeftStr && okRightStr {
		return leftStr + rightStr, nil
	}
	if okLeftStr && okRightNum {
		return leftStr + stringify(rightNum), nil
	}
	if okLeftNum && okRightStr {
		return stringify(leftNum) + rightStr, nil
	}
	return nil, newTypeError(op, "Operands must be two numbers or two strings.")
}

// multiply implements '*': numeric product, or a string repeated by an
// integer-valued count.
func multiply(op *Token, lhs, rhs interface{}) (interface{}, error) {
	leftNum, okLeftNum := lhs.(float64)
	rightNum, okRightNum := rhs.(float64)
	if okLeftNum && okRightNum {
		return leftNum * rightNum, nil
	}
	if leftStr, ok := lhs.(string); ok && okRightNum {
		if !isInteger(rightNum) || rightNum < 0 {
			return nil, newTypeError(op,
				"String repetition count must be a non-negative integer.")
		}
		return strings.Repeat(leftStr, int(rightNum)), nil
	}
	return nil, newTypeError(op, "Operands must be numbers.")
}

func numberOperands(op *Token, lhs, rhs interface{}) (float64, float64, error) {
	leftNum, okLeftNum := lhs.(float64)
	rightNum, okRightNum := rhs.(float64)
	if !okLeftNum || !okRightNum {
		return 0, 0, newTypeError(op, "Operands must be numbers.")
	}
	return leftNum, rightNum, nil
}
