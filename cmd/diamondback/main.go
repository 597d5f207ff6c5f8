// Command diamondback is the frontend driver: it checks, formats, and dumps
// Diamondback source files and provides an interactive expression REPL.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/diamondback-lang/diamondback/internal/ast"
	"github.com/diamondback-lang/diamondback/internal/diag"
	"github.com/diamondback-lang/diamondback/internal/parser"
)

// flag names
const (
	verboseFlagName = "verbose"
)

var verboseFlag = &cli.BoolFlag{
	Name:    verboseFlagName,
	Aliases: []string{"v"},
	Usage:   "enable debug logging",
}

var log zerolog.Logger

func main() {
	app := &cli.App{
		Name:  "diamondback",
		Usage: "Diamondback language frontend",
		Flags: []cli.Flag{
			verboseFlag,
		},
		Before: func(ctx *cli.Context) error {
			level := zerolog.WarnLevel
			if ctx.Bool(verboseFlagName) {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "parse a source file and report syntax errors",
				ArgsUsage: "<file>",
				Action: func(ctx *cli.Context) error {
					prog, err := parseFile(ctx)
					if err != nil {
						return err
					}
					log.Debug().Int("nodes", ast.CountNodes(prog)).Msg("program is well-formed")
					return nil
				},
			},
			{
				Name:      "fmt",
				Usage:     "parse a source file and print its canonical form",
				ArgsUsage: "<file>",
				Action: func(ctx *cli.Context) error {
					prog, err := parseFile(ctx)
					if err != nil {
						return err
					}
					fmt.Println(ast.Print(prog))
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "parse a source file and dump its syntax tree",
				ArgsUsage: "<file>",
				Action: func(ctx *cli.Context) error {
					prog, err := parseFile(ctx)
					if err != nil {
						return err
					}
					fmt.Print(ast.Dump(prog))
					return nil
				},
			},
			{
				Name:  "repl",
				Usage: "parse expressions interactively",
				Action: func(ctx *cli.Context) error {
					return runRepl()
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// parseFile reads and parses the file named by the first argument, rendering
// any diagnostic to stderr before returning the error.
func parseFile(ctx *cli.Context) (*ast.Program, error) {
	if ctx.NArg() < 1 {
		return nil, cli.Exit("missing input file", 1)
	}
	filename := ctx.Args().First()

	data, err := os.ReadFile(filename)
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("cannot read input")
		return nil, err
	}

	start := time.Now()
	prog, err := parser.Parse(string(data), parser.WithFilename(filename))
	if err != nil {
		formatter := diag.NewFormatter(os.Stderr)
		formatter.AddSource(filename, string(data))
		if perr, ok := err.(parser.ParseError); ok {
			formatter.Format(perr.ToDiagnostic())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return nil, err
	}
	log.Debug().Str("file", filename).Dur("elapsed", time.Since(start)).Msg("parsed")

	return prog, nil
}
