package elox

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Scanner reads the input source and collects all the tokens that can be
// found. A malformed lexeme is reported and scanning continues at the next
// plausible lexeme boundary, so a single run surfaces every lexical error.
type Scanner struct {
	line      int
	col       int
	start     int
	startLine int
	startCol  int
	current   int
	source    []rune
	tokens    []*Token
	reporter  Reporter
}

// NewScanner creates a new token scanner over the given source.
func NewScanner(source []rune, reporter Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.col = 1
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collects all the tokens that were found.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		scanner.startLine = scanner.line
		scanner.startCol = scanner.col
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t', '\n':
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN, nil)
		case ')':
			scanner.addToken(RIGHT_PAREN, nil)
		case '{':
			scanner.addToken(LEFT_BRACE, nil)
		case '}':
			scanner.addToken(RIGHT_BRACE, nil)
		case ',':
			scanner.addToken(COMMA, nil)
		case ':':
			scanner.addToken(COLON, nil)
		case ';':
			scanner.addToken(SEMICOLON, nil)
		// Single or double character tokens
		case '?':
			if scanner.match('?') {
				scanner.addToken(QUESTION_QUESTION, nil)
			} else {
				scanner.addToken(QUESTION, nil)
			}
		case '-':
			if scanner.match('=') {
				scanner.addToken(MINUS_EQUAL, nil)
			} else {
				scanner.addToken(MINUS, nil)
			}
		case '+':
			if scanner.match('=') {
				scanner.addToken(PLUS_EQUAL, nil)
			} else {
				scanner.addToken(PLUS, nil)
			}
		case '*':
			if scanner.match('=') {
				scanner.addToken(STAR_EQUAL, nil)
			} else {
				scanner.addToken(STAR, nil)
			}
		case '!':
			if scanner.match('=') {
				scanner.addToken(BANG_EQUAL, nil)
			} else {
				scanner.addToken(BANG, nil)
			}
		case '=':
			if scanner.match('=') {
				scanner.addToken(EQUAL_EQUAL, nil)
			} else {
				scanner.addToken(EQUAL, nil)
			}
		case '<':
			if scanner.match('=') {
				scanner.addToken(LESS_EQUAL, nil)
			} else {
				scanner.addToken(LESS, nil)
			}
		case '>':
			if scanner.match('=') {
				scanner.addToken(GREATER_EQUAL, nil)
			} else {
				scanner.addToken(GREATER, nil)
			}
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// consume the comment, but keep the \n at the end of line so
				// line counting can work correctly
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else if scanner.match('*') {
				scanner.scanBlockComment()
			} else if scanner.match('=') {
				scanner.addToken(SLASH_EQUAL, nil)
			} else {
				scanner.addToken(SLASH, nil)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if unicode.IsDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.report("Unexpected character.")
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", nil, scanner.line, scanner.col, scanner.col),
	)
	return scanner.tokens
}

// scanString decodes the escape sequences \n \r \t \" \\ in place. An
// unknown escape or an unterminated string is reported and scanning resumes
// after the string's closing quote (or at end of source).
func (scanner *Scanner) scanString() {
	var literal strings.Builder
	valid := true
	for scanner.peek() != '"' && scanner.hasNext() {
		r := scanner.advance()
		if r != '\\' {
			literal.WriteRune(r)
			continue
		}
		if !scanner.hasNext() {
			break
		}
		switch esc := scanner.advance(); esc {
		case 'n':
			literal.WriteRune('\n')
		case 'r':
			literal.WriteRune('\r')
		case 't':
			literal.WriteRune('\t')
		case '"':
			literal.WriteRune('"')
		case '\\':
			literal.WriteRune('\\')
		default:
			scanner.report(fmt.Sprintf("Unknown escape sequence '\\%c'.", esc))
			valid = false
		}
	}

	if !scanner.hasNext() {
		scanner.report("Unterminated string.")
		return
	}
	// consume '"'
	scanner.advance()
	if valid {
		scanner.addToken(STRING, literal.String())
	}
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for unicode.IsDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && unicode.IsDigit(scanner.peekNext()) {
		scanner.advance()
		// go through continuous digits
		for unicode.IsDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	// NOTE: we're ignoring the error, since we have already verified that the
	// lexeme contains a valid 64-bit floating point.
	literal, _ := strconv.ParseFloat(lexeme, 64)
	scanner.addToken(NUMBER, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		switch tokenType {
		case TRUE:
			scanner.addToken(tokenType, true)
		case FALSE:
			scanner.addToken(tokenType, false)
		default:
			scanner.addToken(tokenType, nil)
		}
	} else {
		scanner.addToken(IDENTIFIER, nil)
	}
}

// scanBlockComment consumes a block comment, tracking the nesting depth so
// block comments can contain block comments.
func (scanner *Scanner) scanBlockComment() {
	depth := 1
	for depth > 0 {
		if !scanner.hasNext() {
			scanner.report("Unterminated block comment.")
			return
		}
		if scanner.peek() == '/' && scanner.peekNext() == '*' {
			depth++
			scanner.advance()
			scanner.advance()
		} else if scanner.peek() == '*' && scanner.peekNext() == '/' {
			depth--
			scanner.advance()
			scanner.advance()
		} else {
			scanner.advance()
		}
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type carrying the given literal
func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	endCol := scanner.startCol + (scanner.current - scanner.start)
	tok := NewToken(typ, lexeme, literal, scanner.startLine, scanner.startCol, endCol)
	scanner.tokens = append(scanner.tokens, tok)
}

func (scanner *Scanner) report(message string) {
	endCol := scanner.startCol + (scanner.current - scanner.start)
	scanner.reporter.Report(
		newLexError(scanner.startLine, scanner.startCol, endCol, message),
	)
}

// hasNext returns true if the scanner has not read past the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	if r == '\n' {
		scanner.line++
		scanner.col = 1
	} else {
		scanner.col++
	}
	return r
}

// match checks if the rune at the current position is equal to the given
// rune, and consumes it when they are equal.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.advance()
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
