package main

import (
	"formulaSheet/contracts"
	"math"
)

// FormulaEvaluator runs the two-stack precedence evaluation of a tokenized formula.
// It remembers the outcome of the last Evaluate call only; an instance must not be
// shared between goroutines.
type FormulaEvaluator struct {
	resolver contracts.CellResolver
	outcome  contracts.EvaluationOutcome
}

type formulaEvaluation struct {
	resolver  contracts.CellResolver
	values    []float64
	operators []contracts.Token
	outcome   contracts.EvaluationOutcome
}

func NewFormulaEvaluator(resolver contracts.CellResolver) *FormulaEvaluator {
	return &FormulaEvaluator{resolver: resolver}
}

func (e *FormulaEvaluator) Evaluate(formula contracts.Formula) contracts.EvaluationOutcome {
	evaluation := &formulaEvaluation{
		resolver:  e.resolver,
		values:    make([]float64, 0, len(formula)),
		operators: make([]contracts.Token, 0, len(formula)),
	}
	evaluation.run(formula)

	e.outcome = evaluation.outcome
	return e.outcome
}

func (e *FormulaEvaluator) Outcome() contracts.EvaluationOutcome {
	return e.outcome
}

func (e *FormulaEvaluator) Result() float64 {
	return e.outcome.Result
}

func (e *FormulaEvaluator) Error() string {
	return e.outcome.ErrorText()
}

// run keeps the pre-pass checks in a fixed order: when several are true at once the
// first one decides the error.
func (ev *formulaEvaluation) run(original contracts.Formula) {
	formula := original
	length := len(formula)

	// dangling trailing operator: evaluate without it, but remember the formula was broken
	if length > 3 && formula[length-1].IsOperator() && !formula[length-2].IsOperator() {
		formula = formula[:length-1]
		ev.outcome.Error = contracts.ErrorInvalidFormula
	}

	if len(formula) == 2 && formula[0].Kind == contracts.TokenLeftParen && formula[1].Kind == contracts.TokenRightParen {
		ev.outcome = contracts.EvaluationOutcome{Result: 0, Error: contracts.ErrorMissingParentheses}
		return
	}

	if endsWithDivisionByZero(original) {
		ev.outcome = contracts.EvaluationOutcome{Result: math.Inf(1), Error: contracts.ErrorDivideByZero}
		return
	}

	if len(original) == 0 {
		ev.outcome.Error = contracts.ErrorEmpty
		return
	}

	if countNonNumeric(formula) == len(formula) {
		ev.outcome = contracts.EvaluationOutcome{Result: 0, Error: contracts.ErrorInvalidFormula}
		return
	}

	for _, token := range formula {
		if value, ok := token.ParseNumber(); ok {
			ev.values = append(ev.values, value)
			continue
		}

		switch {
		case token.Kind == contracts.TokenCellReference:
			value, errorKind := ResolveCell(ev.resolver, token.Text)
			if errorKind != contracts.ErrorNone {
				ev.outcome.Error = errorKind
				return
			}
			ev.values = append(ev.values, value)

		case token.Kind == contracts.TokenLeftParen:
			ev.operators = append(ev.operators, token)

		case token.Kind == contracts.TokenRightParen:
			for len(ev.operators) > 0 && ev.topOperator().Kind != contracts.TokenLeftParen {
				ev.applyOperator()
			}
			ev.popOperator()

		case token.IsOperator():
			for len(ev.operators) > 0 && precedence(ev.topOperator()) >= precedence(token) {
				ev.applyOperator()
			}
			ev.operators = append(ev.operators, token)

		default:
			ev.outcome.Error = contracts.ErrorInvalidFormula
			return
		}
	}

	for len(ev.operators) > 0 {
		ev.applyOperator()
	}

	if len(ev.values) != 1 || math.IsNaN(ev.values[0]) {
		ev.setErrorIfUnset(contracts.ErrorInvalidFormula)
		// a division by zero already produced the value to show
		if ev.outcome.Error != contracts.ErrorDivideByZero {
			ev.outcome.Result = formula[0].Float()
		}
		return
	}

	ev.outcome.Result = ev.values[0]
}

// applyOperator pops one operator and two operands. Division by zero consumes the
// operands without pushing a replacement.
func (ev *formulaEvaluation) applyOperator() {
	operator, hasOperator := ev.popOperator()
	operand2, hasOperand2 := ev.popValue()
	operand1, hasOperand1 := ev.popValue()

	if !hasOperator || !hasOperand1 || !hasOperand2 || !operator.IsOperator() {
		ev.setErrorIfUnset(contracts.ErrorInvalidOperator)
		return
	}

	switch operator.Text {
	case contracts.OperatorAdd:
		ev.values = append(ev.values, operand1+operand2)
	case contracts.OperatorSubtract:
		ev.values = append(ev.values, operand1-operand2)
	case contracts.OperatorMultiply:
		ev.values = append(ev.values, operand1*operand2)
	case contracts.OperatorDivide:
		if operand2 == 0 {
			ev.outcome = contracts.EvaluationOutcome{Result: math.Inf(1), Error: contracts.ErrorDivideByZero}
			return
		}
		ev.values = append(ev.values, operand1/operand2)
	}
}

func (ev *formulaEvaluation) setErrorIfUnset(errorKind contracts.ErrorKind) {
	if ev.outcome.Error == contracts.ErrorNone {
		ev.outcome.Error = errorKind
	}
}

func (ev *formulaEvaluation) topOperator() contracts.Token {
	return ev.operators[len(ev.operators)-1]
}

func (ev *formulaEvaluation) popOperator() (token contracts.Token, ok bool) {
	if len(ev.operators) == 0 {
		return
	}
	token = ev.operators[len(ev.operators)-1]
	ev.operators = ev.operators[:len(ev.operators)-1]
	return token, true
}

func (ev *formulaEvaluation) popValue() (value float64, ok bool) {
	if len(ev.values) == 0 {
		return
	}
	value = ev.values[len(ev.values)-1]
	ev.values = ev.values[:len(ev.values)-1]
	return value, true
}

func precedence(token contracts.Token) int {
	if !token.IsOperator() {
		return 0
	}

	switch token.Text {
	case contracts.OperatorAdd, contracts.OperatorSubtract:
		return 1
	case contracts.OperatorMultiply, contracts.OperatorDivide:
		return 2
	}
	return 0
}

func endsWithDivisionByZero(formula contracts.Formula) bool {
	length := len(formula)
	if length < 2 {
		return false
	}

	value, ok := formula[length-1].ParseNumber()
	return ok && value == 0 && formula[length-2].IsOperator() && formula[length-2].Text == contracts.OperatorDivide
}

func countNonNumeric(formula contracts.Formula) (counter int) {
	for _, token := range formula {
		if _, ok := token.ParseNumber(); !ok {
			counter++
		}
	}
	return
}
