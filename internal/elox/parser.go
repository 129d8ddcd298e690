package elox

import "fmt"

// Parser composes the syntax tree from the sequence of tokens. The grammar
// is expression-oriented: blocks, conditionals, and loops are expressions
// that yield values, and a program is a sequence of declarations whose last
// value is the program's value. See doc.go for the full grammar.
//
// On a syntax error the parser records the error and enters synchronization,
// discarding tokens until a safe restart boundary, so a single pass surfaces
// multiple independent errors. When any error was recorded, Parse returns no
// syntax tree.
type Parser struct {
	current  int
	tokens   []*Token
	reporter Reporter
}

// NewParser creates a new parser over the scanned tokens.
func NewParser(tokens []*Token, reporter Reporter) *Parser {
	return &Parser{0, tokens, reporter}
}

// Parse consumes the token sequence and produces the program's statements,
// or nil if any syntax error was found.
func (parser *Parser) Parse() []Stmt {
	stmts := make([]Stmt, 0)
	hadError := false
	for !parser.isEOF() {
		// stray separators are empty statements
		if parser.match(SEMICOLON, COMMA) {
			continue
		}
		stmt, err := parser.declaration()
		if err != nil {
			parser.reporter.Report(err)
			hadError = true
			parser.sync()
			continue
		}
		stmts = append(stmts, stmt)
	}
	if hadError {
		return nil
	}
	return stmts
}

// declaration --> letDecl | funDecl | stmt ;
func (parser *Parser) declaration() (Stmt, error) {
	stmt, err := parser.statement()
	if err != nil {
		return nil, err
	}
	if err := parser.terminator(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// statement parses a single statement without its trailing separator, so the
// same rule can serve as a branch or loop body where no separator follows.
func (parser *Parser) statement() (Stmt, error) {
	switch {
	case parser.match(LET, VAR):
		return parser.letDecl()
	case parser.check(FUN) && parser.checkNext(IDENTIFIER):
		return parser.funDecl()
	case parser.match(PRINT):
		return parser.printStmt()
	case parser.match(BREAK):
		return NewBreakStmt(parser.prev()), nil
	case parser.match(CONTINUE):
		return NewContinueStmt(parser.prev()), nil
	case parser.match(RETURN):
		return parser.returnStmt()
	default:
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		return NewExprStmt(expr), nil
	}
}

// letDecl --> ( "let" | "var" ) IDENT ( "=" expr )? ;
func (parser *Parser) letDecl() (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	if name.Lexeme == "_" {
		return nil, newSyntaxError(name,
			"'_' is maintained by the interpreter and can't be declared.")
	}
	var init Expr
	if parser.match(EQUAL) {
		init, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	return NewLetStmt(name, init), nil
}

// funDecl --> "fun" IDENT "(" params? ")" block ;
//
// A named function declaration is sugar for binding a function literal,
// 'let name = fun (params) block'.
func (parser *Parser) funDecl() (Stmt, error) {
	parser.advance() // the 'fun' keyword
	keyword := parser.prev()
	name := parser.advance()
	if name.Lexeme == "_" {
		return nil, newSyntaxError(name,
			"'_' is maintained by the interpreter and can't be declared.")
	}
	fn, err := parser.finishFunction(keyword)
	if err != nil {
		return nil, err
	}
	return NewLetStmt(name, fn), nil
}

func (parser *Parser) printStmt() (Stmt, error) {
	keyword := parser.prev()
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	return NewPrintStmt(keyword, expr), nil
}

func (parser *Parser) returnStmt() (Stmt, error) {
	keyword := parser.prev()
	var val Expr
	if !parser.check(SEMICOLON) && !parser.check(COMMA) &&
		!parser.check(RIGHT_BRACE) && !parser.isEOF() {
		var err error
		val, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	return NewReturnStmt(keyword, val), nil
}

// terminator consumes the separator ending a statement. The statement
// terminator and comma are equivalent separators; a trailing expression in a
// block or the whole program needs no separator at all.
func (parser *Parser) terminator() error {
	if parser.match(SEMICOLON, COMMA) {
		for parser.match(SEMICOLON, COMMA) {
		}
		return nil
	}
	if parser.check(RIGHT_BRACE) || parser.isEOF() {
		return nil
	}
	return newSyntaxError(parser.peek(), "Expect ';' after statement.")
}

// expression --> assignment ;
func (parser *Parser) expression() (Expr, error) {
	return parser.assignment()
}

// assignment --> IDENT ( "=" | "+=" | "-=" | "*=" | "/=" ) assignment
//              | ternary ;
//
// Compound assignment desugars into a plain assignment of the matching
// binary expression.
func (parser *Parser) assignment() (Expr, error) {
	expr, err := parser.ternary()
	if err != nil {
		return nil, err
	}
	if parser.match(EQUAL, PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL) {
		op := parser.prev()
		val, err := parser.assignment()
		if err != nil {
			return nil, err
		}
		target, ok := expr.(*VariableExpr)
		if !ok {
			return nil, newSyntaxError(op, "Invalid assignment target.")
		}
		if target.Name.Lexeme == "_" {
			return nil, newSyntaxError(target.Name,
				"'_' is maintained by the interpreter and can't be assigned.")
		}
		if op.Typ != EQUAL {
			val = NewBinaryExpr(compoundOp(op), expr, val)
		}
		return NewAssignExpr(target.Name, val), nil
	}
	return expr, nil
}

// ternary --> coalesce ( "?" expr ":" ternary )? ;
//
// The ternary form desugars into an if-expression.
func (parser *Parser) ternary() (Expr, error) {
	expr, err := parser.coalesce()
	if err != nil {
		return nil, err
	}
	if parser.match(QUESTION) {
		op := parser.prev()
		thenExpr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(COLON, "Expect ':' in ternary expression."); err != nil {
			return nil, err
		}
		elseExpr, err := parser.ternary()
		if err != nil {
			return nil, err
		}
		return NewConditionalExpr(
			op, expr, NewExprStmt(thenExpr), NewExprStmt(elseExpr)), nil
	}
	return expr, nil
}

// coalesce --> or ( "??" or )* ;
//
// 'a ?? b' desugars into '{ let «a» = a; if («a») «a» else b }'. The hidden
// binding keeps the left operand evaluated once; its name is not utterable
// in source so it can't collide with user bindings.
func (parser *Parser) coalesce() (Expr, error) {
	expr, err := parser.or()
	if err != nil {
		return nil, err
	}
	for parser.match(QUESTION_QUESTION) {
		op := parser.prev()
		right, err := parser.or()
		if err != nil {
			return nil, err
		}
		tmp := NewToken(IDENTIFIER, "«??»", nil, op.Line, op.Col, op.EndCol)
		cond := NewConditionalExpr(
			op,
			NewVariableExpr(tmp),
			NewExprStmt(NewVariableExpr(tmp)),
			NewExprStmt(right),
		)
		expr = NewBlockExpr(op, []Stmt{
			NewLetStmt(tmp, expr),
			NewExprStmt(cond),
		})
	}
	return expr, nil
}

// or --> and ( "or" and )* ;
func (parser *Parser) or() (Expr, error) {
	expr, err := parser.and()
	if err != nil {
		return nil, err
	}
	for parser.match(OR) {
		op := parser.prev()
		right, err := parser.and()
		if err != nil {
			return nil, err
		}
		expr = NewLogicalExpr(op, expr, right)
	}
	return expr, nil
}

// and --> equality ( "and" equality )* ;
func (parser *Parser) and() (Expr, error) {
	expr, err := parser.equality()
	if err != nil {
		return nil, err
	}
	for parser.match(AND) {
		op := parser.prev()
		right, err := parser.equality()
		if err != nil {
			return nil, err
		}
		expr = NewLogicalExpr(op, expr, right)
	}
	return expr, nil
}

// Creates a left-associative nested tree of binary operator nodes. Matches a
// higher precedence rule `comparison` if it does not hit "!=" or "==".
//
// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	expr, err := parser.comparison()
	if err != nil {
		return nil, err
	}
	for parser.match(BANG_EQUAL, EQUAL_EQUAL) {
		op := parser.prev()
		right, err := parser.comparison()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (Expr, error) {
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}
	for parser.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		op := parser.prev()
		right, err := parser.term()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for parser.match(MINUS, PLUS) {
		op := parser.prev()
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for parser.match(SLASH, STAR) {
		op := parser.prev()
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// unary --> ( "!" | "-" | "+" | "/" | "*" ) unary
//         | call ;
//
// '+', '/' and '*' are accepted here even though the language has no such
// unary operators, so we can produce a better error message.
func (parser *Parser) unary() (Expr, error) {
	if parser.match(BANG, MINUS, PLUS, SLASH, STAR) {
		op := parser.prev()
		switch expr, err := parser.unary(); op.Typ {
		case PLUS, SLASH, STAR:
			err = newSyntaxError(op,
				fmt.Sprintf("Unary '%s' expressions are not supported.", op.Lexeme))
			fallthrough
		case BANG, MINUS:
			if err != nil {
				return nil, err
			}
			return NewUnaryExpr(op, expr), nil
		}
	}
	return parser.call()
}

// call --> primary ( "(" args? ")" )* ;
func (parser *Parser) call() (Expr, error) {
	expr, err := parser.primary()
	if err != nil {
		return nil, err
	}
	for parser.match(LEFT_PAREN) {
		expr, err = parser.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (parser *Parser) finishCall(callee Expr) (Expr, error) {
	args := make([]Expr, 0)
	if !parser.check(RIGHT_PAREN) {
		for {
			arg, err := parser.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	paren, err := parser.consume(RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return NewCallExpr(callee, paren, args), nil
}

// primary --> NUMBER | STRING | IDENT
//           | "true" | "false" | "nil"
//           | "(" expression ")"
//           | block | ifExpr | whileExpr | forExpr | funExpr ;
func (parser *Parser) primary() (Expr, error) {
	switch {
	case parser.match(FALSE):
		return NewLiteralExpr(false, parser.prev()), nil
	case parser.match(TRUE):
		return NewLiteralExpr(true, parser.prev()), nil
	case parser.match(NIL):
		return NewLiteralExpr(nil, parser.prev()), nil
	case parser.match(NUMBER, STRING):
		return NewLiteralExpr(parser.prev().Literal, parser.prev()), nil
	case parser.match(IDENTIFIER):
		return NewVariableExpr(parser.prev()), nil
	case parser.match(LEFT_PAREN):
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return NewGroupingExpr(expr), nil
	case parser.match(LEFT_BRACE):
		return parser.block()
	case parser.match(IF):
		return parser.ifExpr()
	case parser.match(WHILE):
		return parser.whileExpr()
	case parser.match(FOR):
		return parser.forExpr()
	case parser.match(FUN):
		return parser.finishFunction(parser.prev())
	}
	return nil, newSyntaxError(parser.peek(), "Expect expression.")
}

// block --> "{" declaration* "}" ;
func (parser *Parser) block() (Expr, error) {
	brace := parser.prev()
	stmts := make([]Stmt, 0)
	for !parser.check(RIGHT_BRACE) && !parser.isEOF() {
		if parser.match(SEMICOLON, COMMA) {
			continue
		}
		stmt, err := parser.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return NewBlockExpr(brace, stmts), nil
}

// ifExpr --> "if" "(" expression ")" statement ( "else" statement )? ;
func (parser *Parser) ifExpr() (Expr, error) {
	keyword := parser.prev()
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := parser.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if parser.match(ELSE) {
		elseBranch, err = parser.statement()
		if err != nil {
			return nil, err
		}
	}
	return NewConditionalExpr(keyword, cond, thenBranch, elseBranch), nil
}

// whileExpr --> "while" "(" expression ")" statement ;
func (parser *Parser) whileExpr() (Expr, error) {
	keyword := parser.prev()
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after while condition."); err != nil {
		return nil, err
	}
	body, err := parser.statement()
	if err != nil {
		return nil, err
	}
	return NewWhileExpr(keyword, cond, body, nil), nil
}

// forExpr --> "for" "(" ( letDecl | exprStmt | ";" ) expression? ";" expression? ")" statement ;
//
// A for-loop desugars into a block holding the initializer's scope and a
// while form that runs the increment after every iteration.
func (parser *Parser) forExpr() (Expr, error) {
	keyword := parser.prev()
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var init Stmt
	if !parser.match(SEMICOLON) {
		var err error
		init, err = parser.statement()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(SEMICOLON, "Expect ';' after loop initializer."); err != nil {
			return nil, err
		}
	}

	var cond Expr
	if !parser.check(SEMICOLON) {
		var err error
		cond, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr Expr
	if !parser.check(RIGHT_PAREN) {
		var err error
		incr, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := parser.statement()
	if err != nil {
		return nil, err
	}

	if cond == nil {
		cond = NewLiteralExpr(true, keyword)
	}
	loop := NewWhileExpr(keyword, cond, body, incr)
	stmts := make([]Stmt, 0, 2)
	if init != nil {
		stmts = append(stmts, init)
	}
	stmts = append(stmts, NewExprStmt(loop))
	return NewBlockExpr(keyword, stmts), nil
}

// finishFunction parses the parameter list and body of a function literal,
// with the 'fun' keyword already consumed.
func (parser *Parser) finishFunction(keyword *Token) (Expr, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'fun'."); err != nil {
		return nil, err
	}
	params := make([]*Token, 0)
	if !parser.check(RIGHT_PAREN) {
		for {
			param, err := parser.consume(IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			if param.Lexeme == "_" {
				return nil, newSyntaxError(param,
					"'_' is maintained by the interpreter and can't be declared.")
			}
			params = append(params, param)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := parser.consume(LEFT_BRACE, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	body, err := parser.block()
	if err != nil {
		return nil, err
	}
	return NewFunctionExpr(keyword, params, body.(*BlockExpr)), nil
}

// compoundOp maps a compound assignment operator to the binary operator it
// desugars into, keeping the original source span.
func compoundOp(op *Token) *Token {
	var typ TokenType
	switch op.Typ {
	case PLUS_EQUAL:
		typ = PLUS
	case MINUS_EQUAL:
		typ = MINUS
	case STAR_EQUAL:
		typ = STAR
	case SLASH_EQUAL:
		typ = SLASH
	default:
		panic("Unreachable")
	}
	return NewToken(typ, typ.String(), nil, op.Line, op.Col, op.EndCol)
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) (*Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, newSyntaxError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) checkNext(tt TokenType) bool {
	if parser.isEOF() || parser.current+1 >= len(parser.tokens) {
		return false
	}
	return parser.tokens[parser.current+1].Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

// sync discards tokens until a safe restart boundary, so parsing can resume
// and report further independent errors.
func (parser *Parser) sync() {
	parser.advance()
	for !parser.isEOF() {
		switch parser.prev().Typ {
		case SEMICOLON, COMMA, RIGHT_BRACE:
			return
		}
		switch parser.peek().Typ {
		case FUN, LET, VAR, FOR, IF, WHILE, PRINT, RETURN, BREAK, CONTINUE:
			return
		}
		parser.advance()
	}
}
