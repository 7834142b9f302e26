// Package calc implements an infix expression calculator on top of the
// fixed-capacity stack and queue containers.
//
// Evaluation is the classic two-stage pipeline: the shunting-yard algorithm
// converts the infix token stream to reverse Polish notation (operator stack
// plus output queue), then the RPN form is folded with an operand stack.
// Every intermediate structure is bounded by the calculator's capacity, so an
// oversized expression fails with *fixedcol.ErrCapacityExceeded instead of
// growing.
//
// Supported syntax: decimal literals, the binary operators + - * /, unary
// minus, and parentheses.
package calc

import (
	"errors"

	"github.com/nilheap/fixedcol"
	"github.com/nilheap/fixedcol/queue"
	"github.com/nilheap/fixedcol/stack"
)

var (
	// ErrEmptyExpression is returned when the expression holds no tokens.
	ErrEmptyExpression = errors.New("calc: empty expression")
	// ErrMismatchedParens is returned for unbalanced parentheses.
	ErrMismatchedParens = errors.New("calc: mismatched parentheses")
	// ErrDivideByZero is returned when a division's right operand is zero.
	ErrDivideByZero = errors.New("calc: division by zero")
	// ErrMalformedExpression is returned when operators and operands don't
	// line up (for example "1 +" or "2 3").
	ErrMalformedExpression = errors.New("calc: malformed expression")
)

// Calculator evaluates infix arithmetic expressions of up to a fixed number
// of tokens. The token bound is set at construction and all working storage
// is pre-allocated.
type Calculator struct {
	capacity int
	logger   *fixedcol.Logger

	operators *stack.Stack[token]
	output    *queue.Queue[token]
	operands  *stack.Stack[float64]
}

type options struct {
	logger *fixedcol.Logger
}

// Option configures a Calculator at construction.
type Option func(*options)

// WithLogger enables debug tracing of tokenization and evaluation steps.
func WithLogger(logger *fixedcol.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates a Calculator able to process expressions of up to capacity
// tokens.
func New(capacity int, optFns ...Option) *Calculator {
	if capacity < 0 {
		capacity = 0
	}

	o := options{logger: fixedcol.NoopLogger()}
	for _, fn := range optFns {
		fn(&o)
	}

	return &Calculator{
		capacity:  capacity,
		logger:    o.logger,
		operators: stack.New[token](capacity),
		output:    queue.New[token](capacity),
		operands:  stack.New[float64](capacity),
	}
}

// Capacity returns the token bound declared at construction.
func (c *Calculator) Capacity() int { return c.capacity }

// Evaluate computes the value of the given infix expression.
func (c *Calculator) Evaluate(expr string) (float64, error) {
	c.operators.Reset()
	c.output.Reset()
	c.operands.Reset()

	if err := c.toRPN(expr); err != nil {
		return 0, err
	}
	if c.output.Len() == 0 {
		return 0, ErrEmptyExpression
	}

	result, err := c.evalRPN()
	if err != nil {
		return 0, err
	}

	c.logger.Debug("expression evaluated", "expr", expr, "result", result)
	return result, nil
}

// toRPN runs the shunting-yard conversion, filling the output queue.
func (c *Calculator) toRPN(expr string) error {
	err := tokenize(expr, func(t token) error {
		c.logger.Debug("token", "kind", t.String(), "pos", t.pos)

		switch t.kind {
		case tokenNumber:
			return c.output.Enqueue(t)

		case tokenOperator:
			for {
				top, ok := c.operators.Peek()
				if !ok || top.kind != tokenOperator {
					break
				}
				if precedence(top.op) < precedence(t.op) ||
					(precedence(top.op) == precedence(t.op) && rightAssociative(t.op)) {
					break
				}
				c.operators.Pop()
				if err := c.output.Enqueue(top); err != nil {
					return err
				}
			}
			return c.operators.Push(t)

		case tokenLeftParen:
			return c.operators.Push(t)

		default: // tokenRightParen
			for {
				top, ok := c.operators.Pop()
				if !ok {
					return ErrMismatchedParens
				}
				if top.kind == tokenLeftParen {
					return nil
				}
				if err := c.output.Enqueue(top); err != nil {
					return err
				}
			}
		}
	})
	if err != nil {
		return err
	}

	for {
		top, ok := c.operators.Pop()
		if !ok {
			return nil
		}
		if top.kind == tokenLeftParen {
			return ErrMismatchedParens
		}
		if err := c.output.Enqueue(top); err != nil {
			return err
		}
	}
}

// evalRPN folds the RPN queue with the operand stack.
func (c *Calculator) evalRPN() (float64, error) {
	for {
		t, ok := c.output.Dequeue()
		if !ok {
			break
		}

		if t.kind == tokenNumber {
			if err := c.operands.Push(t.value); err != nil {
				return 0, err
			}
			continue
		}

		if t.op == negate {
			v, ok := c.operands.Pop()
			if !ok {
				return 0, ErrMalformedExpression
			}
			// capacity unchanged: we just popped one
			_ = c.operands.Push(-v)
			continue
		}

		b, ok := c.operands.Pop()
		if !ok {
			return 0, ErrMalformedExpression
		}
		a, ok := c.operands.Pop()
		if !ok {
			return 0, ErrMalformedExpression
		}

		var v float64
		switch t.op {
		case '+':
			v = a + b
		case '-':
			v = a - b
		case '*':
			v = a * b
		case '/':
			if b == 0 {
				return 0, ErrDivideByZero
			}
			v = a / b
		}
		_ = c.operands.Push(v)
	}

	result, ok := c.operands.Pop()
	if !ok {
		return 0, ErrMalformedExpression
	}
	if c.operands.Len() != 0 {
		return 0, ErrMalformedExpression
	}
	return result, nil
}
