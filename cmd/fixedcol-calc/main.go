// Command fixedcol-calc evaluates infix arithmetic expressions using the
// fixed-capacity calculator.
//
// A single expression can be passed via -expr; otherwise expressions are read
// line by line from stdin.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/fulldump/goconfig"

	"github.com/nilheap/fixedcol"
	"github.com/nilheap/fixedcol/calc"
)

type config struct {
	Expr     string `usage:"expression to evaluate (default: read lines from stdin)"`
	Capacity int    `usage:"maximum number of tokens per expression"`
	Verbose  bool   `usage:"enable debug logging"`
	JSONLog  bool   `usage:"emit debug logs as JSON instead of text"`
}

func main() {
	c := config{
		Capacity: 256,
	}
	goconfig.Read(&c)

	logger := fixedcol.NoopLogger()
	if c.Verbose {
		if c.JSONLog {
			logger = fixedcol.NewJSONLogger(slog.LevelDebug)
		} else {
			logger = fixedcol.NewTextLogger(slog.LevelDebug)
		}
	}

	calculator := calc.New(c.Capacity, calc.WithLogger(logger))

	if c.Expr != "" {
		os.Exit(evaluate(calculator, c.Expr))
	}

	code := 0
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if evaluate(calculator, line) != 0 {
			code = 1
		}
	}
	os.Exit(code)
}

func evaluate(calculator *calc.Calculator, expr string) int {
	result, err := calculator.Evaluate(expr)
	if err != nil {
		color.Red("%s: %v", expr, err)
		return 1
	}
	fmt.Printf("%s = %s\n", expr, color.GreenString("%g", result))
	return 0
}
