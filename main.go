package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/mcncl/jsonsift/internal/config"
	"github.com/mcncl/jsonsift/internal/errors"
	"github.com/mcncl/jsonsift/internal/models"
	"github.com/mcncl/jsonsift/internal/parser"
	"github.com/mcncl/jsonsift/internal/session"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string   `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string   `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Keep        []string `help:"Keep only these paths (plus ancestors and, for containers, their subtrees). Repeatable." short:"k"`
	Drop        []string `help:"Drop these paths and their subtrees from an all-selected document. Repeatable." short:"x"`
	Tree        bool     `help:"Print the key-path index as a tree with selection markers instead of filtered JSON." short:"t"`
	List        bool     `help:"Print the key-path index as flat lines instead of filtered JSON." short:"l"`
	Search      string   `help:"Only show index entries containing this substring (affects --tree and --list)." short:"s"`
	Indent      int      `help:"Indent width for the filtered JSON output." default:"0"`
	Config      string   `help:"Path to a jsonsift config file. Discovered automatically when omitted." short:"c" type:"path"`
	Debug       bool     `help:"Enable debug logging." short:"d"`
	Version     bool     `help:"Show version information." short:"v"`
	Interactive bool     `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonsift"),
		kong.Description("A tool to filter JSON documents down to a selected set of key paths"),
		kong.UsageOnError(),
	)

	// With no arguments and a terminal on stdin, default to interactive mode
	if len(os.Args) == 1 && term.IsTerminal(int(os.Stdin.Fd())) {
		CLI.Interactive = true
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonsift version %s\n", Version)
		return
	}

	cfg, err := config.LoadConfigWithCLI(CLI.Config, CLI.Indent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(&Context{Debug: CLI.Debug, Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonsift --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Parse JSON input
	doc, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 2. Build the key-path index; everything starts selected
	sess := session.New(ctx.Config)
	if err := sess.Load(doc); err != nil {
		return err
	}

	// 3. Apply selection flags
	if err := applySelection(sess); err != nil {
		return err
	}

	// 4. Index views short-circuit the filtering output
	sess.SetSearch(CLI.Search)
	if CLI.Tree {
		return writeOutput(sess.RenderTree())
	}
	if CLI.List {
		return writeOutput(sess.RenderList())
	}

	// 5. Project and serialize
	out, err := sess.Export()
	if err != nil {
		return err
	}
	return writeOutput(out)
}

// applySelection drives the session selection from --keep/--drop. Keeps
// start from an empty selection; drops start from everything selected.
func applySelection(sess *session.Session) error {
	if len(CLI.Keep) > 0 {
		sess.DeselectAll()
		for _, path := range CLI.Keep {
			if err := sess.Toggle(path); err != nil {
				return err
			}
		}
	}
	for _, path := range CLI.Drop {
		if !sess.Selection().Has(path) {
			// Already deselected, toggling would re-select the path
			continue
		}
		if err := sess.Toggle(path); err != nil {
			return err
		}
	}
	return nil
}

// parseInput reads JSON from file or stdin
func parseInput() (models.Document, error) {
	if CLI.Input != "" {
		return parser.ParseFile(CLI.Input)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return models.Document{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.Document{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return models.Document{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes text to file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(text), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Print(text)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (models.Document, error) {
	fmt.Fprintln(os.Stderr, "jsonsift Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return models.Document{}, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return models.Document{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
