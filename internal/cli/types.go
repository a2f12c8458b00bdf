package cli

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type typeSummary struct {
	Name string   `json:"name" yaml:"name"`
	IsA  []string `json:"is_a" yaml:"is_a"`
}

func newTypesCommand(s *session) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List declared representation type relations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			relations := s.app.TypeRelations()
			summaries := make([]typeSummary, 0, len(relations))
			for t, parents := range relations {
				sum := typeSummary{Name: string(t), IsA: make([]string, len(parents))}
				for i, p := range parents {
					sum.IsA[i] = string(p)
				}
				summaries = append(summaries, sum)
			}
			slices.SortFunc(summaries, func(a, b typeSummary) int { return strings.Compare(a.Name, b.Name) })

			out := cmd.OutOrStdout()
			if format != FormatText {
				return writeValue(out, format, summaries)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tIS A")
			for _, sum := range summaries {
				fmt.Fprintf(tw, "%s\t%s\n", sum.Name, strings.Join(sum.IsA, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", FormatText, "output format: 'text', 'json' or 'yaml'")
	return cmd
}
