package contracts

import "math"

type TokenKind uint8

const (
	TokenNumber TokenKind = iota + 1
	TokenCellReference
	TokenOperator
	TokenLeftParen
	TokenRightParen
)

const (
	OperatorAdd      = "+"
	OperatorSubtract = "-"
	OperatorMultiply = "*"
	OperatorDivide   = "/"
)

// Token is one atomic unit of a formula. Text holds the label of a cell reference,
// the symbol of an operator or the parenthesis itself.
type Token struct {
	Kind   TokenKind
	Number float64
	Text   string
}

// Formula is an ordered token sequence produced by a tokenizer
type Formula []Token

type FormulaTokenizer interface {
	Tokenize(text string) (Formula, error)
}

func NumberToken(value float64) Token {
	return Token{Kind: TokenNumber, Number: value}
}

func CellReferenceToken(label string) Token {
	return Token{Kind: TokenCellReference, Text: label}
}

func OperatorToken(symbol string) Token {
	return Token{Kind: TokenOperator, Text: symbol}
}

func LeftParenToken() Token {
	return Token{Kind: TokenLeftParen, Text: "("}
}

func RightParenToken() Token {
	return Token{Kind: TokenRightParen, Text: ")"}
}

func IsSupportedOperator(symbol string) bool {
	switch symbol {
	case OperatorAdd, OperatorSubtract, OperatorMultiply, OperatorDivide:
		return true
	}
	return false
}

func (t Token) IsOperator() bool {
	return t.Kind == TokenOperator && IsSupportedOperator(t.Text)
}

// ParseNumber is total: only number tokens holding a real value parse
func (t Token) ParseNumber() (float64, bool) {
	if t.Kind != TokenNumber || math.IsNaN(t.Number) {
		return 0, false
	}
	return t.Number, true
}

// Float returns the numeric value of the token or NaN
func (t Token) Float() float64 {
	if value, ok := t.ParseNumber(); ok {
		return value
	}
	return math.NaN()
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return formatNumber(t.Number)
	}
	return t.Text
}
