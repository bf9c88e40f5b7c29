// Command sjp scans and parses a simplified JSON input, printing either the
// parsed value or the raw token stream.
//
// Input comes from a file (-i), piped standard input, or interactive mode
// (-I), which reads standard input line by line and parses each line
// independently with a fresh scanner and parser.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	sjp "github.com/theojl6/simple-json-parser"
	"github.com/theojl6/simple-json-parser/ast"
)

// CLI defines the command-line interface.
var CLI struct {
	Input       string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Tokens      bool   `help:"Print the token stream instead of the parsed value." short:"t"`
	Interactive bool   `help:"Read lines from stdin and parse each one independently." short:"I"`
	Version     bool   `help:"Show version information." short:"v"`
}

const version = "0.1.0"

func main() {
	parser := kong.Must(&CLI,
		kong.Name("sjp"),
		kong.Description("Scan and parse a simplified JSON grammar"),
		kong.UsageOnError(),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("sjp version %s\n", version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sjp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if CLI.Interactive {
		return runPrompt()
	}

	text, err := readInput()
	if err != nil {
		return err
	}
	return process(text)
}

// readInput loads the full input buffer from the file named by -i, or from
// standard input.
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// runPrompt reads lines from standard input and processes each one with
// fresh scanner and parser state.  A document split across multiple lines
// is not recognized; each line is an independent input unit.
func runPrompt() error {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}
		if err := process(in.Text()); err != nil {
			fmt.Fprintf(os.Stderr, "sjp: %v\n", err)
		}
	}
}

// process scans (and unless -t is set, parses) one input unit and prints
// the result. Diagnostics go to stderr; the returned error is non-nil when
// any diagnostic was reported.
func process(text string) error {
	if CLI.Tokens {
		toks, diags := sjp.Scan(text)
		for _, tok := range toks {
			fmt.Printf("%-12s %s\n", tok.Kind, tok.Lexeme)
		}
		printDiags(diags)
		return diagErr(diags)
	}

	root, diags := ast.ParseString(text)
	fmt.Println(root.JSON())
	printDiags(diags)
	return diagErr(diags)
}

func printDiags(diags sjp.Diagnostics) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%v\n", d)
	}
}

func diagErr(diags sjp.Diagnostics) error {
	if diags.OK() {
		return nil
	}
	return fmt.Errorf("input had %d problem(s)", len(diags))
}
