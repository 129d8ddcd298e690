package elox

import (
	"container/list"
	"fmt"
)

// Each map represents a single block scope. The resolver mirrors the scopes
// the interpreter will create, so it can check that every variable is
// declared before it is referenced in textual order.
type scopeMap = map[string]bool

// Resolver performs semantic analysis on the syntax tree. Violations are
// reported as NameErrors into the compile-phase error set; break, continue,
// and return placement stays a runtime concern because signals are checked
// where they land.
type Resolver struct {
	scopes   *list.List
	reporter Reporter
}

func NewResolver(reporter Reporter) *Resolver {
	r := new(Resolver)
	r.scopes = list.New()
	r.reporter = reporter
	r.beginScope()
	// '_' is maintained by the interpreter and always in scope.
	r.declareName("_")
	return r
}

// Resolve checks the statements against the scopes seen so far. Bindings
// declared at the top level persist in the resolver, so a REPL can resolve
// lines incrementally against one resolver.
func (r *Resolver) Resolve(statements []Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) VisitBreakStmt(stmt *BreakStmt) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitContinueStmt(stmt *ContinueStmt) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitLetStmt(stmt *LetStmt) (interface{}, error) {
	// A function literal may refer to its own binding recursively, so the
	// name is declared before the initializer is resolved.
	if _, isFn := stmt.Init.(*FunctionExpr); isFn {
		r.declare(stmt.Name)
		r.resolveExpr(stmt.Init)
		return nil, nil
	}
	if stmt.Init != nil {
		r.resolveLetInit(stmt.Init)
	}
	r.declare(stmt.Name)
	return nil, nil
}

// resolveLetInit declares the targets of a chained assignment spine in a
// let-initializer, matching the interpreter's handling of
// 'let a = b = 10' which binds both names.
func (r *Resolver) resolveLetInit(init Expr) {
	if assign, ok := init.(*AssignExpr); ok {
		r.resolveLetInit(assign.Val)
		if !r.isDeclared(assign.Name.Lexeme) {
			r.declare(assign.Name)
		}
		return
	}
	r.resolveExpr(init)
}

func (r *Resolver) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	if stmt.Val != nil {
		r.resolveExpr(stmt.Val)
	}
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	r.resolveExpr(expr.Val)
	r.checkDeclared(expr.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	r.resolveExpr(expr.Lhs)
	r.resolveExpr(expr.Rhs)
	return nil, nil
}

func (r *Resolver) VisitBlockExpr(expr *BlockExpr) (interface{}, error) {
	r.beginScope()
	for _, stmt := range expr.Stmts {
		r.resolveStmt(stmt)
	}
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitConditionalExpr(expr *ConditionalExpr) (interface{}, error) {
	r.resolveExpr(expr.Cond)
	r.resolveStmt(expr.Then)
	if expr.Else != nil {
		r.resolveStmt(expr.Else)
	}
	return nil, nil
}

func (r *Resolver) VisitFunctionExpr(expr *FunctionExpr) (interface{}, error) {
	r.beginScope()
	for _, param := range expr.Params {
		r.declare(param)
	}
	// The body's statements resolve directly in the parameter scope, the
	// same environment layout the interpreter uses for a call.
	for _, stmt := range expr.Body.Stmts {
		r.resolveStmt(stmt)
	}
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	r.resolveExpr(expr.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	r.resolveExpr(expr.Lhs)
	r.resolveExpr(expr.Rhs)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	r.resolveExpr(expr.Expression)
	return nil, nil
}

func (r *Resolver) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	r.checkDeclared(expr.Name)
	return nil, nil
}

func (r *Resolver) VisitWhileExpr(expr *WhileExpr) (interface{}, error) {
	r.resolveExpr(expr.Cond)
	// the interpreter gives every loop iteration a fresh scope
	r.beginScope()
	r.resolveStmt(expr.Body)
	r.endScope()
	if expr.Incr != nil {
		r.resolveExpr(expr.Incr)
	}
	return nil, nil
}

// Similar to Interpreter.exec
func (r *Resolver) resolveStmt(stmt Stmt) {
	stmt.Accept(r)
}

// Similar to Interpreter.eval
func (r *Resolver) resolveExpr(expr Expr) {
	expr.Accept(r)
}

// called when the resolver enters a new scope
func (r *Resolver) beginScope() {
	r.scopes.PushFront(make(scopeMap))
}

// called when the resolver exits a scope
func (r *Resolver) endScope() {
	r.scopes.Remove(r.scopes.Front())
}

func (r *Resolver) declare(name *Token) {
	r.declareName(name.Lexeme)
}

func (r *Resolver) declareName(name string) {
	scope := r.scopes.Front().Value.(scopeMap)
	scope[name] = true
}

func (r *Resolver) checkDeclared(name *Token) {
	if !r.isDeclared(name.Lexeme) {
		r.reporter.Report(newNameError(name,
			fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)))
	}
}

func (r *Resolver) isDeclared(name string) bool {
	for scope := r.scopes.Front(); scope != nil; scope = scope.Next() {
		if _, ok := scope.Value.(scopeMap)[name]; ok {
			return true
		}
	}
	return false
}
