package elox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders a syntax tree as parenthesized prefix notation. It is
// mainly a debugging aid and keeps the parser tests independent of the
// evaluator.
type AstPrinter struct{}

// Print renders a whole program, one statement per line.
func (printer *AstPrinter) Print(statements []Stmt) string {
	lines := make([]string, len(statements))
	for i, stmt := range statements {
		s, _ := stmt.Accept(printer)
		lines[i] = fmt.Sprintf("%v", s)
	}
	return strings.Join(lines, "\n")
}

// PrintExpr renders a single expression.
func (printer *AstPrinter) PrintExpr(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitBreakStmt(stmt *BreakStmt) (interface{}, error) {
	return "(break)", nil
}

func (printer *AstPrinter) VisitContinueStmt(stmt *ContinueStmt) (interface{}, error) {
	return "(continue)", nil
}

func (printer *AstPrinter) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	return stmt.Expression.Accept(printer)
}

func (printer *AstPrinter) VisitLetStmt(stmt *LetStmt) (interface{}, error) {
	if stmt.Init == nil {
		return fmt.Sprintf("(let %s)", stmt.Name.Lexeme), nil
	}
	init, _ := stmt.Init.Accept(printer)
	return fmt.Sprintf("(let %s %s)", stmt.Name.Lexeme, init), nil
}

func (printer *AstPrinter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	expr, _ := stmt.Expression.Accept(printer)
	return fmt.Sprintf("(print %s)", expr), nil
}

func (printer *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	if stmt.Val == nil {
		return "(return)", nil
	}
	val, _ := stmt.Val.Accept(printer)
	return fmt.Sprintf("(return %s)", val), nil
}

func (printer *AstPrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	val, _ := expr.Val.Accept(printer)
	return fmt.Sprintf("(= %s %s)", expr.Name.Lexeme, val), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	left, _ := expr.Lhs.Accept(printer)
	right, _ := expr.Rhs.Accept(printer)
	return fmt.Sprintf("(%s %s %s)", expr.Op.Lexeme, left, right), nil
}

func (printer *AstPrinter) VisitBlockExpr(expr *BlockExpr) (interface{}, error) {
	parts := make([]string, 0, len(expr.Stmts)+1)
	parts = append(parts, "block")
	for _, stmt := range expr.Stmts {
		s, _ := stmt.Accept(printer)
		parts = append(parts, fmt.Sprintf("%v", s))
	}
	return "(" + strings.Join(parts, " ") + ")", nil
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	parts := make([]string, 0, len(expr.Args)+2)
	callee, _ := expr.Callee.Accept(printer)
	parts = append(parts, "call", fmt.Sprintf("%v", callee))
	for _, arg := range expr.Args {
		s, _ := arg.Accept(printer)
		parts = append(parts, fmt.Sprintf("%v", s))
	}
	return "(" + strings.Join(parts, " ") + ")", nil
}

func (printer *AstPrinter) VisitConditionalExpr(expr *ConditionalExpr) (interface{}, error) {
	cond, _ := expr.Cond.Accept(printer)
	then, _ := expr.Then.Accept(printer)
	if expr.Else == nil {
		return fmt.Sprintf("(if %s %s)", cond, then), nil
	}
	els, _ := expr.Else.Accept(printer)
	return fmt.Sprintf("(if %s %s %s)", cond, then, els), nil
}

func (printer *AstPrinter) VisitFunctionExpr(expr *FunctionExpr) (interface{}, error) {
	params := make([]string, len(expr.Params))
	for i, param := range expr.Params {
		params[i] = param.Lexeme
	}
	body, _ := expr.Body.Accept(printer)
	return fmt.Sprintf("(fun (%s) %s)", strings.Join(params, " "), body), nil
}

func (printer *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	exprStr, _ := expr.Expression.Accept(printer)
	return fmt.Sprintf("(group %s)", exprStr), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	switch v := expr.Val.(type) {
	case nil:
		return "nil", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		return strconv.Quote(v), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (printer *AstPrinter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	left, _ := expr.Lhs.Accept(printer)
	right, _ := expr.Rhs.Accept(printer)
	return fmt.Sprintf("(%s %s %s)", expr.Op.Lexeme, left, right), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	exprStr, _ := expr.Expression.Accept(printer)
	return fmt.Sprintf("(%s %s)", expr.Op.Lexeme, exprStr), nil
}

func (printer *AstPrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (printer *AstPrinter) VisitWhileExpr(expr *WhileExpr) (interface{}, error) {
	cond, _ := expr.Cond.Accept(printer)
	body, _ := expr.Body.Accept(printer)
	if expr.Incr == nil {
		return fmt.Sprintf("(while %s %s)", cond, body), nil
	}
	incr, _ := expr.Incr.Accept(printer)
	return fmt.Sprintf("(while %s %s %s)", cond, body, incr), nil
}
