package elox

import "fmt"

// Token groups the characters of a single lexeme with the information that
// was obtained during the scanning phase. Columns are 1-based; EndCol points
// one past the last character so that EndCol-Col is the span width.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Col     int
	EndCol  int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}, line, col, endCol int) *Token {
	return &Token{typ, lexeme, literal, line, col, endCol}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ.String(), t.Lexeme, t.Literal)
}

// KeywordTokens maps reserved words to their token types. Both "let" and
// "var" declare variables; they are kept as separate token types so error
// messages can echo the keyword that was written.
var KeywordTokens = map[string]TokenType{
	"and":      AND,
	"break":    BREAK,
	"continue": CONTINUE,
	"else":     ELSE,
	"false":    FALSE,
	"fun":      FUN,
	"for":      FOR,
	"if":       IF,
	"let":      LET,
	"nil":      NIL,
	"or":       OR,
	"print":    PRINT,
	"return":   RETURN,
	"true":     TRUE,
	"var":      VAR,
	"while":    WHILE,
}

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	COLON
	SEMICOLON
	QUESTION

	// One or two character tokens
	MINUS
	MINUS_EQUAL
	PLUS
	PLUS_EQUAL
	SLASH
	SLASH_EQUAL
	STAR
	STAR_EQUAL
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL
	QUESTION_QUESTION

	// Literals
	IDENTIFIER
	STRING
	NUMBER

	// Keywords
	AND
	BREAK
	CONTINUE
	ELSE
	FALSE
	FUN
	FOR
	IF
	LET
	NIL
	OR
	PRINT
	RETURN
	TRUE
	VAR
	WHILE

	EOF
)

// TokenType tags a token with the syntactic class it belongs to.
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case LEFT_BRACE:
		return "{"
	case RIGHT_BRACE:
		return "}"
	case COMMA:
		return ","
	case COLON:
		return ":"
	case SEMICOLON:
		return ";"
	case QUESTION:
		return "?"
	case MINUS:
		return "-"
	case MINUS_EQUAL:
		return "-="
	case PLUS:
		return "+"
	case PLUS_EQUAL:
		return "+="
	case SLASH:
		return "/"
	case SLASH_EQUAL:
		return "/="
	case STAR:
		return "*"
	case STAR_EQUAL:
		return "*="
	case BANG:
		return "!"
	case BANG_EQUAL:
		return "!="
	case EQUAL:
		return "="
	case EQUAL_EQUAL:
		return "=="
	case GREATER:
		return ">"
	case GREATER_EQUAL:
		return ">="
	case LESS:
		return "<"
	case LESS_EQUAL:
		return "<="
	case QUESTION_QUESTION:
		return "??"
	case IDENTIFIER:
		return "IDENTIFIER"
	case STRING:
		return "STRING"
	case NUMBER:
		return "NUMBER"
	case AND:
		return "AND"
	case BREAK:
		return "BREAK"
	case CONTINUE:
		return "CONTINUE"
	case ELSE:
		return "ELSE"
	case FALSE:
		return "FALSE"
	case FUN:
		return "FUN"
	case FOR:
		return "FOR"
	case IF:
		return "IF"
	case LET:
		return "LET"
	case NIL:
		return "NIL"
	case OR:
		return "OR"
	case PRINT:
		return "PRINT"
	case RETURN:
		return "RETURN"
	case TRUE:
		return "TRUE"
	case VAR:
		return "VAR"
	case WHILE:
		return "WHILE"
	case EOF:
		return "EOF"
	}
	return ""
}
