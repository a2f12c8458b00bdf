package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/specialistvlad/datapkg/internal/app"
	"github.com/specialistvlad/datapkg/internal/registry"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
	// ExitAbsent means the package exists but cannot provide the requested
	// representation.
	ExitAbsent = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envPrefix is the prefix of environment variables that configure the CLI.
const envPrefix = "DATAPKG"

// session carries the state shared by the commands of one invocation.
type session struct {
	v       *viper.Viper
	modules []registry.Module
	app     *app.App
}

// Execute parses args, runs the selected command and writes its output to
// outW and diagnostics, including logs, to errW. Compiled-in modules are
// used unless modules are given.
func Execute(ctx context.Context, args []string, outW, errW io.Writer, modules ...registry.Module) error {
	s := &session{v: viper.New(), modules: modules}
	defer s.close()

	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetOut(outW)
	root.SetErr(errW)
	return root.ExecuteContext(ctx)
}

func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "datapkg",
		Short: "Inspect and resolve data packages",
		Long: `datapkg lists data packages, reports the representation types they
provide, and produces instances of them.

Packages come from compiled-in modules and from HCL manifests found under
--manifests. Every flag can also be set through a DATAPKG_* environment
variable (for example DATAPKG_LOG_LEVEL) or a config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.start(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.StringSliceP("manifests", "m", nil, "manifest files or directories (repeatable)")
	flags.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.String("log-file", "", "write logs to this file, rotated by size")
	flags.Int("log-max-size", 10, "maximum size in megabytes of the log file before rotation")
	flags.Int("log-max-backups", 3, "number of rotated log files to keep")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	})

	root.AddCommand(newListCommand(s))
	root.AddCommand(newProvidesCommand(s))
	root.AddCommand(newGetCommand(s))
	root.AddCommand(newTypesCommand(s))
	return root
}

// start reads the configuration and builds the app.
func (s *session) start(cmd *cobra.Command) error {
	cfg, err := s.loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := app.NewApp(cmd.ErrOrStderr(), cfg, s.modules...)
	if err != nil {
		return err
	}
	s.app = a
	return nil
}

func (s *session) loadConfig(cmd *cobra.Command) (*app.Config, error) {
	v := s.v
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("failed to read config file: %v", err)}
		}
	}

	cfg, err := app.NewConfig(app.Config{
		ManifestPaths: v.GetStringSlice("manifests"),
		LogFormat:     v.GetString("log-format"),
		LogLevel:      v.GetString("log-level"),
		LogFile:       v.GetString("log-file"),
		LogMaxSizeMB:  v.GetInt("log-max-size"),
		LogMaxBackups: v.GetInt("log-max-backups"),
	})
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return cfg, nil
}

func (s *session) close() {
	if s.app != nil {
		_ = s.app.Close()
	}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
