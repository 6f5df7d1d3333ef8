// Command tabler reads rows of whitespace-separated or YAML-structured data
// and prints them as a styled text table.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabler"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	style  string
	output string
	header bool
	yamlIn bool
	color  string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "tabler [file]",
		Short: "Tabulate with style",
		Long: `Tabler renders rows of data as an aligned text table.

Input is read from the given file, or stdin when no file is present. Each
line is one row of whitespace-separated values; values that parse as numbers
are aligned on their decimal point. With --yaml the input is instead a YAML
document with optional "headers" and "rows" keys.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.style, "style", "s", "simple",
		fmt.Sprintf("table style, one of: %s", styleNames()))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the table to a file instead of stdout")
	cmd.Flags().BoolVarP(&opts.header, "header", "1", false, "use the first row of data as the table header")
	cmd.Flags().BoolVar(&opts.yamlIn, "yaml", false, "read input as a YAML document")
	cmd.Flags().StringVar(&opts.color, "color", "", "ANSI color for the borders (black, red, green, yellow, blue, magenta, cyan, white)")
	return cmd
}

func styleNames() string {
	names := make([]string, 0, len(tabler.Styles()))
	for _, s := range tabler.Styles() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

func run(cmd *cobra.Command, args []string, opts options) error {
	style, err := tabler.ParseStyle(opts.style)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var rows [][]tabler.Cell
	var headers []string
	if opts.yamlIn {
		rows, headers, err = parseYAML(in)
	} else {
		rows, headers, err = parseRows(in, opts.header)
	}
	if err != nil {
		return err
	}

	table := tabler.New(style, rows, headers)
	fn, err := borderPainter(opts.color)
	if err != nil {
		return err
	}
	if fn != nil {
		table.SetBorderStyle(fn)
	}
	rendered, err := table.Tabulate()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, rendered)
	return w.Flush()
}

// parseRows reads whitespace-separated rows, typing each token: integers
// become Int cells, other numbers Float cells, everything else Text. When
// header is set the first row becomes the table headers.
func parseRows(r io.Reader, header bool) ([][]tabler.Cell, []string, error) {
	var rows [][]tabler.Cell
	var headers []string
	first := true
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if header && first {
			first = false
			headers = fields
			continue
		}
		row := make([]tabler.Cell, len(fields))
		for i, field := range fields {
			row[i] = parseCell(field)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	return rows, headers, nil
}

func parseCell(s string) tabler.Cell {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return tabler.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return tabler.Float(f)
	}
	return tabler.Text(s)
}

// yamlDocument is the --yaml input shape. Row values keep their YAML scalar
// types, so integers and floats stay numeric.
type yamlDocument struct {
	Headers []string `yaml:"headers"`
	Rows    [][]any  `yaml:"rows"`
}

func parseYAML(r io.Reader) ([][]tabler.Cell, []string, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode yaml: %w", err)
	}
	rows := make([][]tabler.Cell, len(doc.Rows))
	for i, row := range doc.Rows {
		cells := make([]tabler.Cell, len(row))
		for j, v := range row {
			cells[j] = yamlCell(v)
		}
		rows[i] = cells
	}
	return rows, doc.Headers, nil
}

func yamlCell(v any) tabler.Cell {
	switch val := v.(type) {
	case int:
		return tabler.Int(int64(val))
	case int64:
		return tabler.Int(val)
	case uint64:
		return tabler.Int(int64(val))
	case float64:
		return tabler.Float(val)
	case string:
		return tabler.Text(val)
	default:
		return tabler.Text(fmt.Sprint(v))
	}
}

// ansiColors maps flag names to the basic ANSI palette.
var ansiColors = map[string]termenv.Color{
	"black":   termenv.ANSIBlack,
	"red":     termenv.ANSIRed,
	"green":   termenv.ANSIGreen,
	"yellow":  termenv.ANSIYellow,
	"blue":    termenv.ANSIBlue,
	"magenta": termenv.ANSIMagenta,
	"cyan":    termenv.ANSICyan,
	"white":   termenv.ANSIWhite,
}

// borderPainter returns a border styling function for the named color, or
// nil when no coloring applies. It respects the NO_COLOR convention and
// falls back to plain output on terminals without color support.
func borderPainter(name string) (func(string) string, error) {
	if name == "" {
		return nil, nil
	}
	color, ok := ansiColors[name]
	if !ok {
		return nil, fmt.Errorf("unsupported color %q", name)
	}
	if os.Getenv("NO_COLOR") != "" || termenv.ColorProfile() == termenv.Ascii {
		return nil, nil
	}
	return func(s string) string {
		return termenv.String(s).Foreground(color).String()
	}, nil
}
