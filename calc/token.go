package calc

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

// negate marks the unary minus operator internally; it never appears in
// input text.
const negate = '~'

type token struct {
	kind  tokenKind
	value float64 // tokenNumber only
	op    byte    // tokenOperator only
	pos   int     // byte offset in the source expression
}

func (t token) String() string {
	switch t.kind {
	case tokenNumber:
		return strconv.FormatFloat(t.value, 'g', -1, 64)
	case tokenLeftParen:
		return "("
	case tokenRightParen:
		return ")"
	default:
		if t.op == negate {
			return "-"
		}
		return string(t.op)
	}
}

// precedence returns the binding strength of an operator. Unary minus binds
// tightest and is right-associative; everything else is left-associative.
func precedence(op byte) int {
	switch op {
	case negate:
		return 3
	case '*', '/':
		return 2
	default: // '+', '-'
		return 1
	}
}

func rightAssociative(op byte) bool { return op == negate }

// tokenize splits expr into tokens, classifying '-' as unary when it starts
// the expression or follows an operator or an opening parenthesis.
func tokenize(expr string, emit func(token) error) error {
	prevAllowsUnary := true

	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++

		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				j++
			}
			v, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return &ErrUnexpectedToken{Pos: i, Token: expr[i:j]}
			}
			if err := emit(token{kind: tokenNumber, value: v, pos: i}); err != nil {
				return err
			}
			prevAllowsUnary = false
			i = j

		case c == '(':
			if err := emit(token{kind: tokenLeftParen, pos: i}); err != nil {
				return err
			}
			prevAllowsUnary = true
			i++

		case c == ')':
			if err := emit(token{kind: tokenRightParen, pos: i}); err != nil {
				return err
			}
			prevAllowsUnary = false
			i++

		case c == '+' || c == '-' || c == '*' || c == '/':
			op := c
			if c == '-' && prevAllowsUnary {
				op = negate
			}
			if err := emit(token{kind: tokenOperator, op: op, pos: i}); err != nil {
				return err
			}
			prevAllowsUnary = true
			i++

		default:
			r, _ := utf8.DecodeRuneInString(expr[i:])
			return &ErrUnexpectedToken{Pos: i, Token: string(r)}
		}
	}

	return nil
}

// ErrUnexpectedToken reports input the tokenizer or evaluator could not make
// sense of, with its byte position in the expression.
type ErrUnexpectedToken struct {
	Pos   int
	Token string
}

func (e *ErrUnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token %q at position %d", e.Token, e.Pos)
}
