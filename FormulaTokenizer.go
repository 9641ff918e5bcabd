package main

import (
	"fmt"
	"formulaSheet/contracts"
	"github.com/antonmedv/expr/file"
	"github.com/antonmedv/expr/parser/lexer"
	"strconv"
	"strings"
)

const FormulaPrefix = "="

// FormulaSyntaxError carries the classification the cell shows when its text cannot be tokenized
type FormulaSyntaxError struct {
	Kind  contracts.ErrorKind
	Token string
	cause error
}

func (e *FormulaSyntaxError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", contracts.FormulaSyntaxError, e.cause)
	}
	return fmt.Sprintf("%s: unexpected `%s`", contracts.FormulaSyntaxError, e.Token)
}

func (e *FormulaSyntaxError) Unwrap() error {
	return contracts.FormulaSyntaxError
}

type FormulaTokenizer struct {
	canonicalizer contracts.Canonicalizer
}

func NewFormulaTokenizer(canonicalizer contracts.Canonicalizer) *FormulaTokenizer {
	return &FormulaTokenizer{canonicalizer: canonicalizer}
}

func (t *FormulaTokenizer) Tokenize(text string) (contracts.Formula, error) {
	text = strings.TrimPrefix(strings.TrimSpace(text), FormulaPrefix)
	formula := make(contracts.Formula, 0)
	if strings.TrimSpace(text) == "" {
		return formula, nil
	}

	lexed, err := lexer.Lex(file.NewSource(text))
	if err != nil {
		return nil, &FormulaSyntaxError{Kind: contracts.ErrorInvalidFormula, cause: err}
	}

	for _, lexedToken := range lexed {
		switch lexedToken.Kind {
		case lexer.EOF:
			return formula, nil

		case lexer.Number:
			value, parseErr := strconv.ParseFloat(lexedToken.Value, 64)
			if parseErr != nil {
				return nil, &FormulaSyntaxError{Kind: contracts.ErrorInvalidNumber, Token: lexedToken.Value}
			}
			formula = append(formula, contracts.NumberToken(value))

		case lexer.Identifier:
			formula = append(formula, contracts.CellReferenceToken(t.canonicalizer.Canonicalize(lexedToken.Value)))

		case lexer.Operator:
			if !contracts.IsSupportedOperator(lexedToken.Value) {
				return nil, &FormulaSyntaxError{Kind: contracts.ErrorInvalidOperator, Token: lexedToken.Value}
			}
			formula = append(formula, contracts.OperatorToken(lexedToken.Value))

		case lexer.Bracket:
			switch lexedToken.Value {
			case "(":
				formula = append(formula, contracts.LeftParenToken())
			case ")":
				formula = append(formula, contracts.RightParenToken())
			default:
				return nil, &FormulaSyntaxError{Kind: contracts.ErrorInvalidFormula, Token: lexedToken.Value}
			}

		default:
			return nil, &FormulaSyntaxError{Kind: contracts.ErrorInvalidFormula, Token: lexedToken.Value}
		}
	}

	return formula, nil
}

// ReferencedCells lists the distinct cell labels of the formula in order of appearance
func ReferencedCells(formula contracts.Formula) []string {
	labels := make([]string, 0)
	seen := map[string]bool{}

	for _, token := range formula {
		if token.Kind == contracts.TokenCellReference && !seen[token.Text] {
			seen[token.Text] = true
			labels = append(labels, token.Text)
		}
	}

	return labels
}
