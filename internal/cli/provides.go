package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

func newProvidesCommand(s *session) *cobra.Command {
	var (
		filter string
		count  bool
	)
	cmd := &cobra.Command{
		Use:   "provides <package>",
		Short: "List the representation types a package provides",
		Long: `List the representation types a package provides, in preference order.

With --type, only types equal to or declared as a kind of the given type are
listed. With --count, only their number is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if count {
				n, err := s.app.Count(args[0], datapkg.Type(filter))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, n)
				return err
			}
			types, err := s.app.Provides(args[0], datapkg.Type(filter))
			if err != nil {
				return err
			}
			for _, t := range types {
				if _, err := fmt.Fprintln(out, t); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "type", "t", "", "only list types that are a kind of this type")
	cmd.Flags().BoolVarP(&count, "count", "c", false, "print the number of matching types")
	return cmd
}
