package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kode4food/tabula"
	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

type app struct {
	tbl        table.Indexed[string]
	file       string
	header     bool
	contains   bool
	ignoreCase bool
	verbose    bool
}

// NewRootCommand builds the tabula command tree. Every subcommand loads the
// file named by --file into an Indexed Table before it runs
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "tabula",
		Short:         "Query rows of a YAML or CSV file through an inverted index",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.file, "file", "f", "", "YAML or CSV file to load")
	flags.BoolVar(&a.header, "header", false, "treat the first CSV record as column names")
	flags.BoolVarP(&a.contains, "contains", "c", false, "match keywords as substrings")
	flags.BoolVarP(&a.ignoreCase, "ignore-case", "i", false, "match keywords case-insensitively")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		a.searchCommand(),
		a.columnCommand(),
		a.correlateCommand(),
		a.fuzzyCommand(),
		a.valuesCommand(),
	)
	return root
}

func (a *app) open(stderr io.Writer) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	src, err := Load(a.file, a.header)
	if err != nil {
		return err
	}
	a.tbl, err = tabula.NewIndexedTable(src.Rows,
		config.WithColumns(src.Columns),
		config.WithLogger(logger),
		config.Explicit(!a.contains),
		config.IgnoreCase(a.ignoreCase),
		config.Convert(false),
	)
	return err
}

func printRows(w io.Writer, res table.Result[string]) error {
	for _, r := range res.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(r, " ")); err != nil {
			return err
		}
	}
	return nil
}
