package elox

type Expr interface {
	Accept(visitor ExprVisitor) (interface{}, error)
}
type ExprVisitor interface {
	VisitAssignExpr(expr *AssignExpr) (interface{}, error)
	VisitBinaryExpr(expr *BinaryExpr) (interface{}, error)
	VisitBlockExpr(expr *BlockExpr) (interface{}, error)
	VisitCallExpr(expr *CallExpr) (interface{}, error)
	VisitConditionalExpr(expr *ConditionalExpr) (interface{}, error)
	VisitFunctionExpr(expr *FunctionExpr) (interface{}, error)
	VisitGroupingExpr(expr *GroupingExpr) (interface{}, error)
	VisitLiteralExpr(expr *LiteralExpr) (interface{}, error)
	VisitLogicalExpr(expr *LogicalExpr) (interface{}, error)
	VisitUnaryExpr(expr *UnaryExpr) (interface{}, error)
	VisitVariableExpr(expr *VariableExpr) (interface{}, error)
	VisitWhileExpr(expr *WhileExpr) (interface{}, error)
}

type AssignExpr struct {
	Name *Token
	Val  Expr
}

func NewAssignExpr(Name *Token, Val Expr) *AssignExpr {
	return &AssignExpr{Name, Val}
}
func (expr *AssignExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitAssignExpr(expr)
}

type BinaryExpr struct {
	Op  *Token
	Lhs Expr
	Rhs Expr
}

func NewBinaryExpr(Op *Token, Lhs Expr, Rhs Expr) *BinaryExpr {
	return &BinaryExpr{Op, Lhs, Rhs}
}
func (expr *BinaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitBinaryExpr(expr)
}

// BlockExpr is a sequence of statements that evaluates to the value of its
// last statement.
type BlockExpr struct {
	Brace *Token
	Stmts []Stmt
}

func NewBlockExpr(Brace *Token, Stmts []Stmt) *BlockExpr {
	return &BlockExpr{Brace, Stmts}
}
func (expr *BlockExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitBlockExpr(expr)
}

type CallExpr struct {
	Callee Expr
	Paren  *Token
	Args   []Expr
}

func NewCallExpr(Callee Expr, Paren *Token, Args []Expr) *CallExpr {
	return &CallExpr{Callee, Paren, Args}
}
func (expr *CallExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitCallExpr(expr)
}

// ConditionalExpr is an if-expression. Ternary and null-coalescing forms are
// desugared into this node at parse time. Else may be nil, in which case the
// expression yields nil on a falsy condition.
type ConditionalExpr struct {
	Keyword *Token
	Cond    Expr
	Then    Stmt
	Else    Stmt
}

func NewConditionalExpr(Keyword *Token, Cond Expr, Then Stmt, Else Stmt) *ConditionalExpr {
	return &ConditionalExpr{Keyword, Cond, Then, Else}
}
func (expr *ConditionalExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitConditionalExpr(expr)
}

// FunctionExpr is a function literal. A value created from it captures the
// environment chain that was active at its definition.
type FunctionExpr struct {
	Keyword *Token
	Params  []*Token
	Body    *BlockExpr
}

func NewFunctionExpr(Keyword *Token, Params []*Token, Body *BlockExpr) *FunctionExpr {
	return &FunctionExpr{Keyword, Params, Body}
}
func (expr *FunctionExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitFunctionExpr(expr)
}

type GroupingExpr struct {
	Expression Expr
}

func NewGroupingExpr(Expression Expr) *GroupingExpr {
	return &GroupingExpr{Expression}
}
func (expr *GroupingExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitGroupingExpr(expr)
}

type LiteralExpr struct {
	Val   interface{}
	Token *Token
}

func NewLiteralExpr(Val interface{}, Token *Token) *LiteralExpr {
	return &LiteralExpr{Val, Token}
}
func (expr *LiteralExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitLiteralExpr(expr)
}

type LogicalExpr struct {
	Op  *Token
	Lhs Expr
	Rhs Expr
}

func NewLogicalExpr(Op *Token, Lhs Expr, Rhs Expr) *LogicalExpr {
	return &LogicalExpr{Op, Lhs, Rhs}
}
func (expr *LogicalExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitLogicalExpr(expr)
}

type UnaryExpr struct {
	Op         *Token
	Expression Expr
}

func NewUnaryExpr(Op *Token, Expression Expr) *UnaryExpr {
	return &UnaryExpr{Op, Expression}
}
func (expr *UnaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitUnaryExpr(expr)
}

type VariableExpr struct {
	Name *Token
}

func NewVariableExpr(Name *Token) *VariableExpr {
	return &VariableExpr{Name}
}
func (expr *VariableExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitVariableExpr(expr)
}

// WhileExpr evaluates its body repeatedly while the condition is truthy. The
// expression's value is the body value of the last completed iteration, or
// nil if the body never ran. Incr is only set by the for-loop desugaring; it
// runs after every iteration, including iterations cut short by 'continue'.
type WhileExpr struct {
	Keyword *Token
	Cond    Expr
	Body    Stmt
	Incr    Expr
}

func NewWhileExpr(Keyword *Token, Cond Expr, Body Stmt, Incr Expr) *WhileExpr {
	return &WhileExpr{Keyword, Cond, Body, Incr}
}
func (expr *WhileExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitWhileExpr(expr)
}
