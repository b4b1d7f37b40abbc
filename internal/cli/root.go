// Package cli implements the randquote command line.
package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jsamuelsen/randquote/internal/adapters/console"
	"github.com/jsamuelsen/randquote/internal/domain"
	"github.com/jsamuelsen/randquote/internal/platform/config"
)

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// spinnerDelay is the frame interval of the fetch spinner.
const spinnerDelay = 100 * time.Millisecond

// rootFlags are the quote flags of the root command.
type rootFlags struct {
	configFile     string
	logLevel       string
	language       string
	provider       string
	asciiQuotation bool
	noColors       bool
	json           bool
	wrapWidth      int
}

// flagKeys maps flag names to config keys. Only flags the user set are
// applied, so env and file values survive otherwise.
var flagKeys = map[string]string{
	"log-level":       "log.level",
	"language":        "quote.language",
	"provider":        "quote.provider",
	"ascii-quotation": "quote.ascii_quotation",
	"no-colors":       "quote.no_colors",
	"json":            "quote.json",
	"wrap-width":      "quote.wrap_width",
}

// NewRootCommand builds the command tree.
func NewRootCommand(build BuildInfo) *cobra.Command {
	return newRootCommand(build, &rootFlags{})
}

func newRootCommand(build BuildInfo, flags *rootFlags) *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Print a random quote",
		Long: `randquote fetches a random quote from a remote provider and prints it
with language-appropriate quotation marks.

Providers:
  forismatic  api.forismatic.com (default)
  hapesire    Hapesire quote API`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd, flags, build)
		},
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")

	f := root.Flags()
	f.StringVarP(&flags.language, "language", "l", config.DefaultLanguage, "quote language, must be one of: en[glish], ru[ssian]")
	f.StringVarP(&flags.provider, "provider", "p", config.DefaultProvider, "quote provider: forismatic, hapesire")
	f.BoolVarP(&flags.asciiQuotation, "ascii-quotation", "a", false, "force ASCII quotation marks")
	f.BoolVarP(&flags.noColors, "no-colors", "n", false, "disable colors")
	f.BoolVarP(&flags.json, "json", "j", false, "print the quote as JSON")
	f.IntVarP(&flags.wrapWidth, "wrap-width", "w", 0, "wrap width in columns, default is terminal width")

	root.AddCommand(
		newProvidersCmd(flags, build),
		newDoctorCmd(flags, build),
		newVersionCmd(build),
	)

	return root
}

// Execute runs the command tree with the given arguments and streams.
func Execute(ctx context.Context, build BuildInfo, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(build)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

// loadOptions collects the config sources from flags. Flags local to a
// subcommand are skipped even when they share a name with a root flag.
func (f *rootFlags) loadOptions(cmd *cobra.Command) config.LoadOptions {
	values := map[string]any{
		"log-level":       f.logLevel,
		"language":        f.language,
		"provider":        f.provider,
		"ascii-quotation": f.asciiQuotation,
		"no-colors":       f.noColors,
		"json":            f.json,
		"wrap-width":      f.wrapWidth,
	}

	overrides := map[string]any{}

	root := cmd.Root()

	cmd.Flags().Visit(func(fl *pflag.Flag) {
		if fl != root.Flags().Lookup(fl.Name) && fl != root.PersistentFlags().Lookup(fl.Name) {
			return
		}

		if key, ok := flagKeys[fl.Name]; ok {
			overrides[key] = values[fl.Name]
		}
	})

	return config.LoadOptions{
		File:      f.configFile,
		Overrides: overrides,
	}
}

func runQuote(cmd *cobra.Command, flags *rootFlags, build BuildInfo) error {
	ctx := cmd.Context()
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	rt, err := newRuntime(ctx, flags.loadOptions(cmd), build, stderr)
	if err != nil {
		return err
	}
	defer rt.close(context.WithoutCancel(ctx))

	q := rt.cfg.Quote
	opts := console.Options{
		Language:       domain.ParseLanguage(q.Language),
		ASCIIQuotation: q.ASCIIQuotation,
		NoColors:       q.NoColors || !colorsAllowed(stdout),
		JSON:           q.JSON,
		WrapWidth:      q.WrapWidth,
	}

	if opts.WrapWidth == 0 {
		opts.WrapWidth = max(terminalWidth(stdout), console.MinWrapWidth)
	}

	ctx = rt.withRequest(ctx)

	stop := startSpinner(stderr, !opts.JSON)
	quote, err := rt.dispatcher.Dispatch(ctx, q.Provider, opts.Language)
	stop()

	if err != nil {
		return err
	}

	presenter := console.NewPresenter()

	rendered, err := presenter.Render(quote, opts)
	if err != nil {
		return err
	}

	rt.logger.DebugContext(ctx, "rendering quote",
		slog.Bool("json", opts.JSON),
		slog.Int("wrap_width", opts.WrapWidth),
	)

	return presenter.Write(stdout, rendered)
}

// startSpinner draws a spinner on stderr while a fetch is running.
// It is a no-op unless stderr is a terminal.
func startSpinner(stderr io.Writer, enabled bool) func() {
	f, ok := terminalFile(stderr)
	if !enabled || !ok {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], spinnerDelay, spinner.WithWriterFile(f))
	s.Suffix = " fetching quote..."
	s.Start()

	return s.Stop
}
