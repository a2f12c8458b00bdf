package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

func newGetCommand(s *session) *cobra.Command {
	var (
		want   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "get <package>",
		Short: "Produce an instance of a package",
		Long: `Produce an instance of a package and print it.

Without --type the package's preferred representation is produced. When the
package cannot provide the requested type, nothing is printed to stdout and
the command exits with status 3.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			v, ok, err := s.app.Get(cmd.Context(), name, datapkg.Type(want))
			if err != nil {
				return err
			}
			if !ok {
				return &ExitError{
					Code:    ExitAbsent,
					Message: fmt.Sprintf("package %q cannot provide %s", name, datapkg.Type(want)),
				}
			}
			return writeValue(cmd.OutOrStdout(), format, v)
		},
	}
	cmd.Flags().StringVarP(&want, "type", "t", "", "representation type to produce")
	cmd.Flags().StringVarP(&format, "format", "o", FormatJSON, "output format: 'json', 'yaml', 'dump' or 'raw'")
	return cmd
}
