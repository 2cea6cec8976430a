package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kode4food/tabula/table"
	"github.com/kode4food/tabula/table/config"
)

// ErrBadPredicate is returned when a correlate argument isn't column=keyword
var ErrBadPredicate = errors.New("predicate must be column=keyword")

func (a *app) searchCommand() *cobra.Command {
	var and bool
	cmd := &cobra.Command{
		Use:   "search <keyword>...",
		Short: "Print rows containing any of the keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.tbl.Search(args, config.And(and))
			return printRows(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&and, "and", false, "require every keyword")
	return cmd
}

func (a *app) columnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "column <column> <keyword>...",
		Short: "Print rows whose column holds any of the keywords",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.tbl.SearchByColumn(table.ColumnName(args[0]), args[1:])
			return printRows(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) correlateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "correlate <column=keyword>...",
		Short: "Print rows satisfying every column=keyword predicate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preds, err := parsePredicates(args)
			if err != nil {
				return err
			}
			return printRows(cmd.OutOrStdout(), a.tbl.Correlation(preds...))
		},
	}
}

func (a *app) fuzzyCommand() *cobra.Command {
	var (
		and        bool
		similarity float64
	)
	cmd := &cobra.Command{
		Use:   "fuzzy <keyword>...",
		Short: "Print rows holding values similar to any of the keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := config.Similarity(similarity)
			if _, err := config.New(sim); err != nil {
				return err
			}
			res := a.tbl.FuzzySearch(args, sim, config.And(and))
			return printRows(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&and, "and", false, "require every keyword")
	cmd.Flags().Float64Var(&similarity, "similarity",
		config.DefaultSimilarity, "minimum similarity score, from 0 to 1",
	)
	return cmd
}

func (a *app) valuesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "values <keyword>",
		Short: "Print the rows of every indexed value matching the keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.tbl.ValueByKeyword(args[0])
			return printRows(cmd.OutOrStdout(), res)
		},
	}
}

func parsePredicates(args []string) ([]table.Predicate[string], error) {
	res := make([]table.Predicate[string], 0, len(args))
	for _, arg := range args {
		col, kw, ok := strings.Cut(arg, "=")
		if !ok || col == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadPredicate, arg)
		}
		res = append(res, table.Pair(table.ColumnName(col), kw))
	}
	return res, nil
}
