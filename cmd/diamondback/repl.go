package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/diamondback-lang/diamondback/internal/ast"
	"github.com/diamondback-lang/diamondback/internal/diag"
	"github.com/diamondback-lang/diamondback/internal/parser"
)

const (
	historyFile = ".diamondback_history"
	prompt      = "dbk> "
	replName    = "<repl>"
)

// runRepl reads expressions line by line, parses each one, and prints the
// canonical form or the diagnostic. Ctrl+C cancels input, Ctrl+D exits.
func runRepl() error {
	fmt.Println("Diamondback expression REPL. Ctrl+D or :quit exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			// liner.ErrPromptAborted on Ctrl+C, io.EOF on Ctrl+D.
			if err == liner.ErrPromptAborted {
				continue
			}
			fmt.Println()
			return nil
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if code == ":quit" {
			return nil
		}

		expr, err := parser.ParseExpression(code, parser.WithFilename(replName))
		if err != nil {
			formatter := diag.NewFormatter(os.Stderr)
			formatter.AddSource(replName, code)
			if perr, ok := err.(parser.ParseError); ok {
				formatter.Format(perr.ToDiagnostic())
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}

		fmt.Println(ast.Print(expr))
		ln.AppendHistory(code)
	}
}
