package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

type packageSummary struct {
	Name     string   `json:"name" yaml:"name"`
	Version  string   `json:"version" yaml:"version"`
	Provides []string `json:"provides" yaml:"provides"`
}

func newListCommand(s *session) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered data packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries := make([]packageSummary, 0)
			for _, pkg := range s.app.Packages() {
				types, err := s.app.Provides(pkg.Name(), datapkg.Any)
				if err != nil {
					return err
				}
				names := make([]string, len(types))
				for i, t := range types {
					names[i] = string(t)
				}
				summaries = append(summaries, packageSummary{Name: pkg.Name(), Version: pkg.Version(), Provides: names})
			}

			out := cmd.OutOrStdout()
			if format != FormatText {
				return writeValue(out, format, summaries)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tVERSION\tPROVIDES")
			for _, sum := range summaries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", sum.Name, sum.Version, strings.Join(sum.Provides, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", FormatText, "output format: 'text', 'json' or 'yaml'")
	return cmd
}
