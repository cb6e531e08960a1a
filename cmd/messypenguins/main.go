package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"

	"github.com/dshills/messypenguins/internal/audit"
	"github.com/dshills/messypenguins/internal/catalogue"
	"github.com/dshills/messypenguins/internal/corrupt"
	"github.com/dshills/messypenguins/internal/diffout"
	"github.com/dshills/messypenguins/internal/penguins"
	"github.com/dshills/messypenguins/internal/render"
	"github.com/dshills/messypenguins/internal/report"
	"github.com/dshills/messypenguins/internal/table"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// defaultSeed keeps any future randomized rule kinds reproducible.
const defaultSeed = 42

// Output file names, matching the tutorial's prose.
const (
	cleanFileName = "penguins_clean.csv"
	messyFileName = "penguins_messy.csv"
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// generateFlags holds the parsed flags for the generate command.
type generateFlags struct {
	reference string
	outDir    string
	seed      int64
	format    string
	out       string
	verbose   bool
}

// catalogueFlags holds the parsed flags for the catalogue command.
type catalogueFlags struct {
	format string
	out    string
}

func main() {
	root := &cobra.Command{
		Use:   "messypenguins",
		Short: "Generate the messy teaching fixture for the data-validation tutorial",
		Long: "messypenguins writes a clean copy of the penguin reference dataset, injects a\n" +
			"fixed catalogue of data-quality defects to produce a messy companion fixture,\n" +
			"and reports every defect category and count.",
	}

	var genFlags generateFlags
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the clean and messy fixtures and print the issue report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(genFlags)
		},
	}
	f := generateCmd.Flags()
	f.StringVar(&genFlags.reference, "reference", "", "Reference CSV path (default: embedded dataset)")
	f.StringVar(&genFlags.outDir, "outdir", ".", "Directory for the generated fixtures")
	f.Int64Var(&genFlags.seed, "seed", defaultSeed, "Random seed (reserved for randomized defect kinds)")
	f.StringVar(&genFlags.format, "format", "text", "Report format: text, json, or md")
	f.StringVar(&genFlags.out, "out", "", "Write the report to a file instead of stdout")
	f.BoolVar(&genFlags.verbose, "verbose", false, "Print processing steps to stderr")

	var catFlags catalogueFlags
	catalogueCmd := &cobra.Command{
		Use:   "catalogue",
		Short: "Print the built-in defect catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogue(catFlags)
		},
	}
	f = catalogueCmd.Flags()
	f.StringVar(&catFlags.format, "format", "yaml", "Output format: yaml or json")
	f.StringVar(&catFlags.out, "out", "", "Write output to a file instead of stdout")

	var diffOut string
	diffCmd := &cobra.Command{
		Use:   "diff <clean-csv> <messy-csv>",
		Short: "Show the clean-to-messy change set as patch text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], diffOut)
		},
	}
	diffCmd.Flags().StringVar(&diffOut, "out", "", "Write patch text to a file instead of stdout")

	auditCmd := &cobra.Command{
		Use:   "audit <csv>",
		Short: "Scan a penguins-shaped CSV for injected defect classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(args[0])
		},
	}

	root.AddCommand(generateCmd, catalogueCmd, diffCmd, auditCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

// runGenerate is the whole pipeline: load reference, write the clean
// copy, corrupt, write the messy copy, render the report. Any failure is
// fatal; there is no partial-success mode.
func runGenerate(flags generateFlags) error {
	logVerbose(flags.verbose, "Loading reference table")
	ref, err := loadReference(flags.reference)
	if err != nil {
		return codeError(3, "loading reference: %s", err)
	}

	rules := catalogue.Default()
	logVerbose(flags.verbose, "Applying %d defect rules (%d edits)", len(rules), catalogue.CountEdits(rules))
	messy, err := corrupt.Apply(ref, rules, flags.seed)
	if err != nil {
		return codeError(3, "corrupting table: %s", err)
	}

	if err := os.MkdirAll(flags.outDir, 0o755); err != nil {
		return codeError(4, "creating output directory: %s", err)
	}
	cleanPath := filepath.Join(flags.outDir, cleanFileName)
	logVerbose(flags.verbose, "Writing %s", cleanPath)
	if err := ref.Write(cleanPath); err != nil {
		return codeError(4, "writing clean fixture: %s", err)
	}
	messyPath := filepath.Join(flags.outDir, messyFileName)
	logVerbose(flags.verbose, "Writing %s", messyPath)
	if err := messy.Write(messyPath); err != nil {
		return codeError(4, "writing messy fixture: %s", err)
	}

	rep := report.Summarize(rules, ref.Header, ref.RowCount())
	rep.Tool = "messypenguins"
	rep.Version = version
	rep.Source = ref.Source
	rep.SourceHash = ref.Hash

	renderer, err := render.NewRenderer(flags.format)
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	out, err := renderer.Render(rep)
	if err != nil {
		return codeError(3, "rendering report: %s", err)
	}
	return emit(out, flags.out)
}

// loadReference returns the embedded dataset, or an external table when
// a path was given.
func loadReference(path string) (*table.Table, error) {
	if path == "" {
		return penguins.Reference()
	}
	return table.Load(path)
}

func runCatalogue(flags catalogueFlags) error {
	rules := catalogue.Default()
	ref, err := penguins.Reference()
	if err != nil {
		return codeError(3, "loading reference: %s", err)
	}
	if err := catalogue.Validate(rules, ref.Header, ref.RowCount()); err != nil {
		return codeError(3, "invalid catalogue: %s", err)
	}

	var out []byte
	switch flags.format {
	case "yaml", "":
		out, err = yaml.Marshal(rules)
	case "json":
		out, err = json.MarshalIndent(rules, "", "  ")
	default:
		return codeError(3, "--format must be yaml or json, got %q", flags.format)
	}
	if err != nil {
		return codeError(3, "encoding catalogue: %s", err)
	}
	return emit(out, flags.out)
}

func runDiff(cleanPath, messyPath, outPath string) error {
	clean, err := os.ReadFile(cleanPath)
	if err != nil {
		return codeError(3, "reading clean fixture: %s", err)
	}
	messy, err := os.ReadFile(messyPath)
	if err != nil {
		return codeError(3, "reading messy fixture: %s", err)
	}
	return emit([]byte(diffout.Unified(clean, messy)), outPath)
}

func runAudit(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return codeError(3, "opening %s: %s", path, err)
	}
	defer f.Close()

	df, err := audit.Load(f)
	if err != nil {
		return codeError(3, "auditing %s: %s", path, err)
	}
	findings, err := audit.Scan(df)
	if err != nil {
		return codeError(3, "auditing %s: %s", path, err)
	}

	for _, fd := range findings {
		fmt.Printf("row %-4d %-18s %-20s %q\n", fd.Row, fd.Column, fd.Category, fd.Value)
	}
	if len(findings) > 0 {
		fmt.Println()
	}
	for _, c := range audit.Summarize(findings) {
		fmt.Printf("%-20s %d\n", c.Category, c.Count)
	}
	fmt.Printf("total                %d\n", len(findings))
	return nil
}

// emit writes output to a file when path is set, otherwise to stdout.
func emit(out []byte, path string) error {
	if path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return codeError(4, "writing output file: %s", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return codeError(4, "writing output: %s", err)
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Println()
	}
	return nil
}

// logVerbose writes a progress message to stderr when verbose mode is enabled.
func logVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
	}
}
