// goxui renders page descriptions through the layout components.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/germtb/goxui/html"
	"github.com/germtb/goxui/internal/page"
	"github.com/germtb/goxui/layout"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	cmd := args[0]
	args = args[1:]

	var err error
	switch cmd {
	case "render":
		err = runRender(args, stdout, stderr)
	case "css":
		_, err = io.WriteString(stdout, layout.Stylesheet())
	case "version":
		_, err = fmt.Fprintf(stdout, "goxui version %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "goxui: unknown command %q\n", cmd)
		printUsage(stderr)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "goxui: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `goxui - layout components for goxui trees

Usage:
  goxui <command> [arguments]

Commands:
  render [-o file] [-v] <page.yaml>  Render a page description to HTML
  css                                Print the fallback layout stylesheet
  version                            Print version information
  help                               Show this help message

Examples:
  goxui render page.yaml > page.html
  goxui render -o page.html -v page.yaml
  goxui css > layout.css`)
}

func runRender(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "", "Write HTML to this file instead of stdout")
	verbose := fs.Bool("v", false, "Enable verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("render: expected one page file, got %d", fs.NArg())
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	path := fs.Arg(0)
	doc, err := page.ParseFile(path)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	logger.Debug("page parsed", "path", path, "title", doc.Title, "children", len(doc.Children))

	// Render fully before touching the destination so a failed render
	// leaves no partial output.
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>")
	if err := html.NewRenderer(&buf).Render(doc.VNode()); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	if *output == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("page rendered", "path", path, "output", *output)
	return nil
}
