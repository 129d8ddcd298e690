/*
Package elox implements a tree-walking interpreter for an expression-oriented
dialect of Lox: every construct, including blocks, conditionals, and loops,
is an expression that yields a value.

Grammar

	program    --> decl* EOF ;
	decl       --> stmt sep? ;
	stmt       --> letDecl
	             | funDecl
	             | printStmt
	             | returnStmt
	             | "break"
	             | "continue"
	             | expr ;
	letDecl    --> ( "let" | "var" ) IDENT ( "=" expr )? ;
	funDecl    --> "fun" IDENT "(" params? ")" block ;
	params     --> IDENT ( "," IDENT )* ;
	printStmt  --> "print" expr ;
	returnStmt --> "return" expr? ;
	sep        --> ";" | "," ;
	expr       --> assign ;
	assign     --> IDENT ( "=" | "+=" | "-=" | "*=" | "/=" ) assign
	             | ternary ;
	ternary    --> coalesce ( "?" expr ":" ternary )? ;
	coalesce   --> or ( "??" or )* ;
	or         --> and ( "or" and )* ;
	and        --> equality ( "and" equality )* ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" | "+" | "/" | "*" ) unary
	             | call ;
	call       --> primary ( "(" args? ")" )* ;
	args       --> expr ( "," expr )* ;
	primary    --> NUMBER | STRING | IDENT
	             | "true" | "false" | "nil"
	             | "(" expr ")"
	             | block | ifExpr | whileExpr | forExpr | funExpr ;
	block      --> "{" decl* "}" ;
	ifExpr     --> "if" "(" expr ")" stmt ( "else" stmt )? ;
	whileExpr  --> "while" "(" expr ")" stmt ;
	forExpr    --> "for" "(" ( letDecl | expr )? ";" expr? ";" expr? ")" stmt ;
	funExpr    --> "fun" "(" params? ")" block ;

The "unary" rule has some matches for error generation:
  - Unary '+' expressions are not supported.
  - Unary '/' expressions are not supported.
  - Unary '*' expressions are not supported.

A trailing expression in a block or the program needs no separator; its
value becomes the block's or program's value. The ternary, null-coalescing,
and for-loop forms desugar at parse time into if-expressions and while
forms. A "fun" followed by an identifier is a declaration, 'let name = fun'.
*/
package elox
