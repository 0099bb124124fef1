package pattern

import (
	"unicode"
	"unicode/utf8"
)

// lexer tokenizes pattern source text. Pattern source is a single
// expression, so newlines are plain whitespace here.
type lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *lexer) nextToken() Token {
	l.skipWhitespace()

	var tok Token
	switch l.ch {
	case '(':
		tok = l.newToken(LPAREN, "(")
	case ')':
		tok = l.newToken(RPAREN, ")")
	case ',':
		tok = l.newToken(COMMA, ",")
	case '.':
		if l.peekChar() == '.' {
			line, col := l.line, l.column
			l.readChar()
			tok = Token{Type: DOTDOT, Literal: "..", Line: line, Column: col}
		} else {
			tok = l.newToken(ILLEGAL, string(l.ch))
		}
	case '"':
		line, col := l.line, l.column
		lit, ok := l.readString()
		if !ok {
			return Token{Type: ILLEGAL, Literal: lit, Line: line, Column: col}
		}
		return Token{Type: STRING, Literal: lit, Line: line, Column: col}
	case '-':
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}
		tok = l.newToken(ILLEGAL, string(l.ch))
	case 0:
		tok = Token{Type: EOF, Literal: "", Line: l.line, Column: l.column}
	default:
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = l.newToken(ILLEGAL, string(l.ch))
	}
	l.readChar()
	return tok
}

func (l *lexer) newToken(t TokenType, lit string) Token {
	return Token{Type: t, Literal: lit, Line: l.line, Column: l.column}
}

func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *lexer) readIdentifier() Token {
	line, col := l.line, l.column
	start := l.position
	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lit := l.input[start:l.position]
	return Token{Type: lookupIdent(lit), Literal: lit, Line: line, Column: col}
}

func (l *lexer) readNumber() Token {
	line, col := l.line, l.column
	start := l.position
	if l.ch == '-' {
		l.readChar()
	}
	typ := INT
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		typ = FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return Token{Type: typ, Literal: l.input[start:l.position], Line: line, Column: col}
}

// readString consumes a double-quoted string with backslash escapes for
// quote, backslash, n and t. Returns ok=false on an unterminated string.
func (l *lexer) readString() (string, bool) {
	var out []rune
	for {
		l.readChar()
		switch l.ch {
		case '"':
			l.readChar()
			return string(out), true
		case 0:
			return string(out), false
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			case 0:
				return string(out), false
			default:
				out = append(out, l.ch)
			}
		default:
			out = append(out, l.ch)
		}
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
