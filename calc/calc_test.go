package calc

import (
	"testing"

	"github.com/nilheap/fixedcol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Evaluate(t *testing.T) {
	c := New(64)

	tests := []struct {
		expr string
		want float64
	}{
		{"1 + 2", 3},
		{"2 * 3 + 4", 10},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 4 - 3", 3}, // left associative
		{"20 / 4 / 5", 1},
		{"1.5 * 2", 3},
		{"-5 + 3", -2},
		{"-(2 + 3)", -5},
		{"2 * -3", -6},
		{"--4", 4},
		{"((1))", 1},
		{"3", 3},
		{"  1+\t2 ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := c.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_Errors(t *testing.T) {
	c := New(64)

	t.Run("empty", func(t *testing.T) {
		_, err := c.Evaluate("")
		assert.ErrorIs(t, err, ErrEmptyExpression)
		_, err = c.Evaluate("   ")
		assert.ErrorIs(t, err, ErrEmptyExpression)
	})

	t.Run("divide by zero", func(t *testing.T) {
		_, err := c.Evaluate("1 / 0")
		assert.ErrorIs(t, err, ErrDivideByZero)
		_, err = c.Evaluate("1 / (2 - 2)")
		assert.ErrorIs(t, err, ErrDivideByZero)
	})

	t.Run("mismatched parens", func(t *testing.T) {
		_, err := c.Evaluate("(1 + 2")
		assert.ErrorIs(t, err, ErrMismatchedParens)
		_, err = c.Evaluate("1 + 2)")
		assert.ErrorIs(t, err, ErrMismatchedParens)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := c.Evaluate("1 +")
		assert.ErrorIs(t, err, ErrMalformedExpression)
		_, err = c.Evaluate("2 3")
		assert.ErrorIs(t, err, ErrMalformedExpression)
		_, err = c.Evaluate("* 2")
		assert.ErrorIs(t, err, ErrMalformedExpression)
	})

	t.Run("unexpected character", func(t *testing.T) {
		_, err := c.Evaluate("1 + x")
		var eut *ErrUnexpectedToken
		require.ErrorAs(t, err, &eut)
		assert.Equal(t, 4, eut.Pos)
		assert.Equal(t, "x", eut.Token)
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := c.Evaluate("1..2 + 3")
		var eut *ErrUnexpectedToken
		assert.ErrorAs(t, err, &eut)
	})
}

func TestCalculator_CapacityExceeded(t *testing.T) {
	// Four tokens of working storage; "1+2+3" needs five in the output queue.
	c := New(4)
	assert.Equal(t, 4, c.Capacity())

	_, err := c.Evaluate("1 + 2")
	require.NoError(t, err)

	_, err = c.Evaluate("1 + 2 + 3")
	var ece *fixedcol.ErrCapacityExceeded
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, 4, ece.Capacity)

	// The calculator resets its scratch and stays usable after an overflow.
	got, err := c.Evaluate("2 * 2")
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
}

func TestCalculator_ReuseAcrossExpressions(t *testing.T) {
	c := New(32)

	for i := 0; i < 10; i++ {
		got, err := c.Evaluate("(1 + 2) * 3")
		require.NoError(t, err)
		require.Equal(t, 9.0, got)
	}
}

func TestTokenize_UnaryMinusClassification(t *testing.T) {
	collect := func(expr string) []token {
		var out []token
		err := tokenize(expr, func(tok token) error {
			out = append(out, tok)
			return nil
		})
		require.NoError(t, err)
		return out
	}

	t.Run("leading minus is unary", func(t *testing.T) {
		toks := collect("-1")
		require.Len(t, toks, 2)
		assert.Equal(t, byte(negate), toks[0].op)
	})

	t.Run("minus after operator is unary", func(t *testing.T) {
		toks := collect("2*-1")
		require.Len(t, toks, 4)
		assert.Equal(t, byte(negate), toks[2].op)
	})

	t.Run("minus after paren is unary", func(t *testing.T) {
		toks := collect("(-1)")
		require.Len(t, toks, 4)
		assert.Equal(t, byte(negate), toks[1].op)
	})

	t.Run("minus after number is binary", func(t *testing.T) {
		toks := collect("2-1")
		require.Len(t, toks, 3)
		assert.Equal(t, byte('-'), toks[1].op)
	})

	t.Run("minus after closing paren is binary", func(t *testing.T) {
		toks := collect("(2)-1")
		require.Len(t, toks, 5)
		assert.Equal(t, byte('-'), toks[3].op)
	})
}
