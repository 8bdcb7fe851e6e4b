package stampname

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/stampname/internal/version"
	"github.com/arthur-debert/stampname/pkg/args"
	"github.com/arthur-debert/stampname/pkg/config"
	"github.com/arthur-debert/stampname/pkg/errors"
	"github.com/arthur-debert/stampname/pkg/filesystem"
	"github.com/arthur-debert/stampname/pkg/logging"
	"github.com/arthur-debert/stampname/pkg/rename"
	"github.com/arthur-debert/stampname/pkg/report"
	"github.com/arthur-debert/stampname/pkg/style"
	"github.com/arthur-debert/stampname/pkg/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Options configures the root command.
type Options struct {
	Settings *config.Settings
	// FS defaults to the host filesystem.
	FS afero.Fs
	// Args are the raw command-line tokens. Nil leaves cobra's own
	// argument handling in place, which is what doc generators want.
	Args []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd(opts Options) *cobra.Command {
	initTemplateFormatting()

	settings := opts.Settings
	if settings == nil {
		settings = defaultSettings()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	var (
		verbosity int
		flags     args.Flags
	)

	rootCmd := &cobra.Command{
		Use:     "stampname",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(logging.Options{Verbosity: verbosity, LogFile: settings.Logging.File})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, positional []string) error {
			if len(positional) > 0 {
				logger := logging.GetLogger("cmd")
				logger.Warn().Strs("ignored", positional).Msg(MsgIgnoredTokens)
			}

			tokens := cmd.Flags().NFlag() + len(positional)
			if opts.Args != nil {
				tokens = len(opts.Args)
			}
			cfg, err := flags.Resolve(cmd.Flags(), tokens)
			if err != nil {
				return err
			}

			reporter := report.New(outputFormat(settings, cmd.OutOrStdout()), cmd.OutOrStdout(), cmd.ErrOrStderr())
			engine := rename.New(fsys, reporter, settings.Rename.Delay)
			_, err = engine.Run(cmd.Context(), cfg)
			return err
		},
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableAutoGenTag:  true,
	}

	flags.Register(rootCmd.Flags())
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(settings))
	rootCmd.AddCommand(newTopicsCmd(settings))
	rootCmd.AddCommand(newCompletionCmd())

	if opts.Args != nil {
		rootCmd.SetArgs(args.Normalize(opts.Args, settings.Flags.Delimiter))
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newConfigCmd(settings *config.Settings) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if defaults {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigContent())
				return nil
			}
			out, err := settings.TOML()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newTopicsCmd(settings *config.Settings) *cobra.Command {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if outputFormat(settings, os.Stdout) == style.FormatTerminal {
		renderer = topics.NewGlamourRenderer()
	}

	tm, err := topics.Default(topics.Options{Renderer: renderer})
	if err != nil {
		return &cobra.Command{
			Use:  "topics",
			Args: cobra.ArbitraryArgs,
			RunE: func(*cobra.Command, []string) error {
				return errors.Wrap(err, errors.ErrInternal, "help topics unavailable")
			},
		}
	}
	return tm.Command()
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// outputFormat resolves output.format for w. Writers that are not files
// never get terminal styling.
func outputFormat(settings *config.Settings, w io.Writer) style.Format {
	format, err := style.ParseFormat(settings.Output.Format)
	if err != nil {
		return style.FormatText
	}
	if format != style.FormatAuto {
		return format
	}
	if f, ok := w.(*os.File); ok {
		return style.DetectFormat(f)
	}
	return style.FormatText
}

func defaultSettings() *config.Settings {
	s, err := config.Load(config.Options{SkipUserConfig: true})
	if err != nil {
		return &config.Settings{
			Flags:  config.FlagSettings{Delimiter: "-"},
			Rename: config.RenameSettings{Delay: config.MinDelay},
			Output: config.OutputSettings{Format: config.FormatAuto},
		}
	}
	return s
}

// Execute runs stampname with argv and returns the process exit code.
// Fatal errors are printed to stderr, followed by the usage help for
// parameter and source errors.
func Execute(ctx context.Context, argv []string, stdout, stderr io.Writer, cfgOpts config.Options) int {
	logging.Setup(logging.Options{})

	settings, err := config.Load(cfgOpts)
	if err != nil {
		printError(stderr, err)
		return errors.ExitCode(err)
	}

	if argv == nil {
		argv = []string{}
	}
	rootCmd := NewRootCmd(Options{Settings: settings, Args: argv})
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		if showsUsage(err) {
			_, _ = fmt.Fprintln(stderr)
			_, _ = fmt.Fprintln(stderr, MsgUsageHelp)
		}
		return errors.ExitCode(err)
	}
	return errors.ExitSuccess
}

func printError(w io.Writer, err error) {
	errorStyle := style.GetStyle("Error")
	_, _ = fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(MsgErrorFormat, err)))
}

func showsUsage(err error) bool {
	switch errors.GetErrorCode(err) {
	case errors.ErrTooFewParameters, errors.ErrMissingParameter,
		errors.ErrInvalidParameter, errors.ErrSourceFileNotFound:
		return true
	}
	return false
}
