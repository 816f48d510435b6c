package parser

// TokenType identifies the kind of a lexed token.
type TokenType int

const (
	TokenLParen TokenType = iota
	TokenRParen
	TokenSymbol
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenSymbol:
		return "symbol"
	case TokenEOF:
		return "end of input"
	default:
		return "?"
	}
}

// Token is one lexical unit of the surface syntax together with its
// source position (1-based line and column).
type Token struct {
	Type   TokenType
	Value  string
	Line   int
	Column int
}

// Lexer scans the s-expression surface syntax into tokens.
type Lexer struct {
	input    string
	position int
	line     int
	column   int
	tokens   []Token
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the token list,
// terminated by a TokenEOF. Comments run from ';' to end of line.
func (l *Lexer) Tokenize() []Token {
	for l.position < len(l.input) {
		switch c := l.input[l.position]; {
		case c == '(':
			l.addToken(TokenLParen, "(")
			l.advance()

		case c == ')':
			l.addToken(TokenRParen, ")")
			l.advance()

		case c == ';':
			for l.position < len(l.input) && l.input[l.position] != '\n' {
				l.advance()
			}

		case isWhitespace(c):
			l.advance()

		default:
			l.lexSymbol()
		}
	}

	l.addToken(TokenEOF, "")
	return l.tokens
}

// lexSymbol scans a run of non-delimiter characters as one symbol.
func (l *Lexer) lexSymbol() {
	start := l.position
	line, col := l.line, l.column
	for l.position < len(l.input) && isSymbolChar(l.input[l.position]) {
		l.advance()
	}
	l.tokens = append(l.tokens, Token{
		Type:   TokenSymbol,
		Value:  l.input[start:l.position],
		Line:   line,
		Column: col,
	})
}

func (l *Lexer) addToken(t TokenType, value string) {
	l.tokens = append(l.tokens, Token{Type: t, Value: value, Line: l.line, Column: l.column})
}

func (l *Lexer) advance() {
	if l.input[l.position] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.position++
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isSymbolChar accepts every byte that is not a delimiter, so UTF-8
// sequences stay intact inside symbols and the main loop always makes
// progress on the default arm.
func isSymbolChar(c byte) bool {
	return c != '(' && c != ')' && c != ';' && !isWhitespace(c)
}
