package main

import (
	"formulaSheet/contracts"
	"formulaSheet/mocks"
	"github.com/stretchr/testify/assert"
	"math"
	"strconv"
	"testing"
)

func TestFormulaEvaluator_Evaluate(t *testing.T) {
	t.Run("single_number", func(t *testing.T) {
		for _, value := range []string{"0", "7", "-3.5", "1e3"} {
			evaluator := NewFormulaEvaluator(nil)
			outcome := evaluator.Evaluate(_formula(value))

			expected, _ := strconv.ParseFloat(value, 64)
			assert.Equal(t, expected, outcome.Result, value)
			assert.Equal(t, contracts.ErrorNone, outcome.Error, value)
			assert.Equal(t, "", evaluator.Error())
		}
	})

	t.Run("empty", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(contracts.Formula{})

		assert.Equal(t, contracts.ErrorEmpty, outcome.Error)
		assert.Equal(t, "#EMPTY!", outcome.ErrorText())
		assert.Equal(t, float64(0), outcome.Result)
	})

	t.Run("empty_parentheses", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("(", ")"))

		assert.Equal(t, contracts.ErrorMissingParentheses, outcome.Error)
		assert.Equal(t, float64(0), outcome.Result)
	})

	t.Run("precedence", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("2", "+", "3", "*", "4"))

		assert.Equal(t, float64(14), outcome.Result)
		assert.Equal(t, contracts.ErrorNone, outcome.Error)
	})

	t.Run("left_associative", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("10", "-", "4", "-", "3"))
		assert.Equal(t, float64(3), outcome.Result)

		outcome = NewFormulaEvaluator(nil).Evaluate(_formula("64", "/", "4", "/", "2"))
		assert.Equal(t, float64(8), outcome.Result)
	})

	t.Run("parentheses", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("(", "2", "+", "3", ")", "*", "4"))

		assert.Equal(t, float64(20), outcome.Result)
		assert.Equal(t, contracts.ErrorNone, outcome.Error)

		outcome = NewFormulaEvaluator(nil).Evaluate(_formula("2", "*", "(", "(", "1", "+", "2", ")", "*", "(", "3", "-", "1", ")", ")"))
		assert.Equal(t, float64(12), outcome.Result)
		assert.Equal(t, contracts.ErrorNone, outcome.Error)
	})

	t.Run("trailing_division_by_zero", func(t *testing.T) {
		resolver := mocks.NewCellResolver(t)

		outcome := NewFormulaEvaluator(resolver).Evaluate(_formula("5", "+", "A1", "/", "0"))

		assert.Equal(t, contracts.ErrorDivideByZero, outcome.Error)
		assert.Equal(t, "#DIV/0!", outcome.ErrorText())
		assert.True(t, math.IsInf(outcome.Result, 1))
		resolver.AssertNotCalled(t, "GetCellSnapshot", "A1")
	})

	t.Run("division_by_zero_inside_expression", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("1", "/", "0", "+", "5"))

		assert.Equal(t, contracts.ErrorDivideByZero, outcome.Error)
		assert.True(t, math.IsInf(outcome.Result, 1))
	})

	t.Run("division_by_zero_inside_parentheses", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("2", "*", "(", "1", "/", "0", ")"))

		assert.Equal(t, contracts.ErrorDivideByZero, outcome.Error)
		assert.True(t, math.IsInf(outcome.Result, 1))
	})

	t.Run("dangling_operator_is_sticky", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("1", "+", "2", "+"))

		assert.Equal(t, float64(3), outcome.Result)
		assert.Equal(t, contracts.ErrorInvalidFormula, outcome.Error)
	})

	t.Run("dangling_operator_short_formula", func(t *testing.T) {
		// three tokens are not truncated, the operator has no right operand
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("1", "2", "+"))

		assert.Equal(t, contracts.ErrorNone, outcome.Error)
		assert.Equal(t, float64(3), outcome.Result)

		outcome = NewFormulaEvaluator(nil).Evaluate(_formula("1", "+"))
		assert.Equal(t, contracts.ErrorInvalidOperator, outcome.Error)
		assert.Equal(t, float64(1), outcome.Result)
	})

	t.Run("double_trailing_operator_is_kept", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("1", "+", "2", "*", "-"))

		assert.Equal(t, contracts.ErrorInvalidOperator, outcome.Error)
		assert.Equal(t, float64(1), outcome.Result)
	})

	t.Run("no_numbers", func(t *testing.T) {
		resolver := mocks.NewCellResolver(t)

		outcome := NewFormulaEvaluator(resolver).Evaluate(_formula("A1"))
		assert.Equal(t, contracts.ErrorInvalidFormula, outcome.Error)
		assert.Equal(t, float64(0), outcome.Result)

		outcome = NewFormulaEvaluator(resolver).Evaluate(_formula("(", "+", ")"))
		assert.Equal(t, contracts.ErrorInvalidFormula, outcome.Error)

		resolver.AssertNotCalled(t, "GetCellSnapshot", "A1")
	})

	t.Run("missing_closing_parenthesis", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("(", "1", "+", "2"))

		assert.Equal(t, contracts.ErrorInvalidOperator, outcome.Error)
		assert.True(t, math.IsNaN(outcome.Result))
	})

	t.Run("unknown_token", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(contracts.Formula{
			contracts.NumberToken(1),
			contracts.OperatorToken("%"),
			contracts.NumberToken(2),
		})

		assert.Equal(t, contracts.ErrorInvalidFormula, outcome.Error)
		assert.Equal(t, float64(0), outcome.Result)

		outcome = NewFormulaEvaluator(nil).Evaluate(contracts.Formula{contracts.NumberToken(1), {}})
		assert.Equal(t, contracts.ErrorInvalidFormula, outcome.Error)
	})

	t.Run("nan_number_token", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(contracts.Formula{
			contracts.NumberToken(1),
			contracts.OperatorToken("+"),
			contracts.NumberToken(math.NaN()),
		})

		assert.Equal(t, contracts.ErrorInvalidFormula, outcome.Error)
	})

	t.Run("cell_references", func(t *testing.T) {
		resolver := mocks.NewCellResolver(t)
		resolver.On("GetCellSnapshot", "A1").Return(contracts.CellSnapshot{Value: 4}).Once()
		resolver.On("GetCellSnapshot", "B2").Return(contracts.CellSnapshot{Value: 0.5}).Once()

		outcome := NewFormulaEvaluator(resolver).Evaluate(_formula("A1", "*", "B2", "+", "1"))

		assert.Equal(t, contracts.ErrorNone, outcome.Error)
		assert.Equal(t, float64(3), outcome.Result)
	})

	t.Run("empty_cell_reference", func(t *testing.T) {
		resolver := mocks.NewCellResolver(t)
		resolver.On("GetCellSnapshot", "A1").Return(contracts.CellSnapshot{FormulaIsEmpty: true, Error: contracts.ErrorEmpty})

		outcome := NewFormulaEvaluator(resolver).Evaluate(_formula("A1", "+", "1"))

		assert.Equal(t, contracts.ErrorInvalidCell, outcome.Error)
		assert.Equal(t, "#REF!", outcome.ErrorText())
		assert.Equal(t, float64(0), outcome.Result)
	})

	t.Run("upstream_error", func(t *testing.T) {
		resolver := mocks.NewCellResolver(t)
		resolver.On("GetCellSnapshot", "A1").Return(contracts.CellSnapshot{Error: contracts.ErrorDivideByZero, Value: math.Inf(1)})

		outcome := NewFormulaEvaluator(resolver).Evaluate(_formula("1", "+", "A1", "+", "B1"))

		assert.Equal(t, contracts.ErrorDivideByZero, outcome.Error)
		assert.Equal(t, float64(0), outcome.Result)
		resolver.AssertNotCalled(t, "GetCellSnapshot", "B1")
	})

	t.Run("without_resolver", func(t *testing.T) {
		outcome := NewFormulaEvaluator(nil).Evaluate(_formula("A1", "+", "1"))

		assert.Equal(t, contracts.ErrorInvalidCell, outcome.Error)
	})

	t.Run("does_not_modify_formula", func(t *testing.T) {
		formula := _formula("1", "+", "2", "+")
		NewFormulaEvaluator(nil).Evaluate(formula)

		assert.Equal(t, _formula("1", "+", "2", "+"), formula)
	})

	t.Run("idempotent", func(t *testing.T) {
		resolver := mocks.NewCellResolver(t)
		resolver.On("GetCellSnapshot", "C3").Return(contracts.CellSnapshot{Value: 2})

		evaluator := NewFormulaEvaluator(resolver)
		formula := _formula("C3", "*", "(", "1", "+", "2", ")", "-")

		first := evaluator.Evaluate(formula)
		second := evaluator.Evaluate(formula)

		assert.Equal(t, first, second)
		assert.Equal(t, float64(6), second.Result)
		assert.Equal(t, contracts.ErrorInvalidFormula, second.Error)
	})

	t.Run("outcome_is_reset", func(t *testing.T) {
		evaluator := NewFormulaEvaluator(nil)

		evaluator.Evaluate(_formula("1", "/", "0"))
		assert.Equal(t, "#DIV/0!", evaluator.Error())
		assert.True(t, math.IsInf(evaluator.Result(), 1))

		evaluator.Evaluate(_formula("6", "/", "3"))
		assert.Equal(t, "", evaluator.Error())
		assert.Equal(t, float64(2), evaluator.Result())
		assert.Equal(t, contracts.EvaluationOutcome{Result: 2}, evaluator.Outcome())
	})
}

func TestPrecedence(t *testing.T) {
	assert.Equal(t, 1, precedence(contracts.OperatorToken("+")))
	assert.Equal(t, 1, precedence(contracts.OperatorToken("-")))
	assert.Equal(t, 2, precedence(contracts.OperatorToken("*")))
	assert.Equal(t, 2, precedence(contracts.OperatorToken("/")))
	assert.Equal(t, 0, precedence(contracts.OperatorToken("^")))
	assert.Equal(t, 0, precedence(contracts.LeftParenToken()))
}

// _formula builds tokens the way a tokenizer would: numbers, the four operators,
// parentheses and everything else as cell references
func _formula(parts ...string) contracts.Formula {
	formula := make(contracts.Formula, 0, len(parts))
	for _, part := range parts {
		if value, err := strconv.ParseFloat(part, 64); err == nil {
			formula = append(formula, contracts.NumberToken(value))
			continue
		}

		switch {
		case part == "(":
			formula = append(formula, contracts.LeftParenToken())
		case part == ")":
			formula = append(formula, contracts.RightParenToken())
		case contracts.IsSupportedOperator(part):
			formula = append(formula, contracts.OperatorToken(part))
		default:
			formula = append(formula, contracts.CellReferenceToken(part))
		}
	}
	return formula
}
