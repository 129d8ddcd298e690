package elox

type Stmt interface {
	Accept(visitor StmtVisitor) (interface{}, error)
}
type StmtVisitor interface {
	VisitBreakStmt(stmt *BreakStmt) (interface{}, error)
	VisitContinueStmt(stmt *ContinueStmt) (interface{}, error)
	VisitExprStmt(stmt *ExprStmt) (interface{}, error)
	VisitLetStmt(stmt *LetStmt) (interface{}, error)
	VisitPrintStmt(stmt *PrintStmt) (interface{}, error)
	VisitReturnStmt(stmt *ReturnStmt) (interface{}, error)
}

type BreakStmt struct {
	Keyword *Token
}

func NewBreakStmt(Keyword *Token) *BreakStmt {
	return &BreakStmt{Keyword}
}
func (stmt *BreakStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitBreakStmt(stmt)
}

type ContinueStmt struct {
	Keyword *Token
}

func NewContinueStmt(Keyword *Token) *ContinueStmt {
	return &ContinueStmt{Keyword}
}
func (stmt *ContinueStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitContinueStmt(stmt)
}

type ExprStmt struct {
	Expression Expr
}

func NewExprStmt(Expression Expr) *ExprStmt {
	return &ExprStmt{Expression}
}
func (stmt *ExprStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitExprStmt(stmt)
}

// LetStmt declares a variable in the scope it textually appears in. The
// first declaration of a name wins; re-declaring the same name in the same
// scope is a no-op, though the initializer still runs for its effects.
type LetStmt struct {
	Name *Token
	Init Expr
}

func NewLetStmt(Name *Token, Init Expr) *LetStmt {
	return &LetStmt{Name, Init}
}
func (stmt *LetStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitLetStmt(stmt)
}

type PrintStmt struct {
	Keyword    *Token
	Expression Expr
}

func NewPrintStmt(Keyword *Token, Expression Expr) *PrintStmt {
	return &PrintStmt{Keyword, Expression}
}
func (stmt *PrintStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitPrintStmt(stmt)
}

type ReturnStmt struct {
	Keyword *Token
	Val     Expr
}

func NewReturnStmt(Keyword *Token, Val Expr) *ReturnStmt {
	return &ReturnStmt{Keyword, Val}
}
func (stmt *ReturnStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitReturnStmt(stmt)
}
