package pattern

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	FLOAT  TokenType = "FLOAT"
	STRING TokenType = "STRING"
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"

	UNDERSCORE TokenType = "_"
	OTHERWISE  TokenType = "OTHERWISE"
	DOTDOT     TokenType = ".."

	LPAREN TokenType = "("
	RPAREN TokenType = ")"
	COMMA  TokenType = ","
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"otherwise": OTHERWISE,
	"true":      TRUE,
	"false":     FALSE,
	"_":         UNDERSCORE,
}

func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
