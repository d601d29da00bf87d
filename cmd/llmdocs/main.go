package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/llmdocs/internal/app"
	"github.com/quantmind-br/llmdocs/internal/config"
	"github.com/quantmind-br/llmdocs/internal/domain"
	"github.com/quantmind-br/llmdocs/internal/tui"
	"github.com/quantmind-br/llmdocs/internal/utils"
	"github.com/quantmind-br/llmdocs/pkg/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// flags holds the values of the command line flags
type flags struct {
	cfgFile string
	dir     string
	only    []string
	yes     bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "llmdocs",
		Short: "Copy LLM-ready documentation for your project's dependencies",
		Long: `llmdocs reads package.json, shows which dependencies have bundled
LLM documentation, lets you pick packages and a full or tiny variant for
each, and copies the chosen files into .llm-docs/.`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, f)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&f.cfgFile, "config", "", "config file (default is ./.llmdocs/config.yaml or ~/.llmdocs/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&f.dir, "dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().String("manifest", "", "Manifest file (default package.json)")
	rootCmd.PersistentFlags().String("catalog", "", "External catalog file (default: bundled catalog)")
	rootCmd.PersistentFlags().String("docs", "", "Documentation directory of an external catalog (default: catalog directory)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output directory (default .llm-docs)")
	rootCmd.PersistentFlags().StringArrayVar(&f.only, "only", nil, "Only consider packages matching this glob (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")

	// Selection flags
	rootCmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "Select every available package without prompting")
	rootCmd.Flags().String("variant", "", "Variant used with --yes: full or tiny (default full)")
	rootCmd.Flags().Bool("accessible", false, "Use accessible prompts")

	// Bind flags to viper
	_ = v.BindPFlag("manifest", rootCmd.PersistentFlags().Lookup("manifest"))
	_ = v.BindPFlag("catalog.path", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = v.BindPFlag("catalog.docs_dir", rootCmd.PersistentFlags().Lookup("docs"))
	_ = v.BindPFlag("output.directory", rootCmd.PersistentFlags().Lookup("output"))
	_ = v.BindPFlag("prompt.default_variant", rootCmd.Flags().Lookup("variant"))
	_ = v.BindPFlag("prompt.accessible", rootCmd.Flags().Lookup("accessible"))

	rootCmd.AddCommand(newListCmd(v, f))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newListCmd(v *viper.Viper, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show which dependencies have documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			orchestrator, err := newOrchestrator(cmd, v, f, tui.NewAutoPrompter(domain.VariantFull))
			if err != nil {
				return err
			}
			return orchestrator.List(ctx)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

func run(cmd *cobra.Command, v *viper.Viper, f *flags) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	orchestrator, err := newOrchestrator(cmd, v, f, nil)
	if err != nil {
		return err
	}
	return orchestrator.Run(ctx)
}

// newOrchestrator loads configuration and wires the orchestrator. A nil
// prompter selects one from the --yes flag and the terminal state.
func newOrchestrator(cmd *cobra.Command, v *viper.Viper, f *flags, prompter domain.Prompter) (*app.Orchestrator, error) {
	workDir, err := filepath.Abs(utils.ExpandPath(f.dir))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	cfg, err := config.Load(v, config.LoadOptions{ConfigFile: f.cfgFile, WorkDir: workDir})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: f.verbose,
		NoColor: !isTerminal(cmd.ErrOrStderr()),
	})
	log.Debug().Str("dir", workDir).Str("manifest", cfg.Manifest).Msg("Configuration loaded")

	if prompter == nil {
		prompter = newPrompter(cmd, cfg, f.yes)
	}

	progress := io.Discard
	if isTerminal(cmd.ErrOrStderr()) {
		progress = cmd.ErrOrStderr()
	}

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:   cfg,
		WorkDir:  workDir,
		Prompter: prompter,
		Only:     f.only,
		Output:   cmd.OutOrStdout(),
		Progress: progress,
		Logger:   log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}
	return orchestrator, nil
}

func newPrompter(cmd *cobra.Command, cfg *config.Config, yes bool) domain.Prompter {
	if yes {
		return tui.NewAutoPrompter(cfg.Variant())
	}
	if !isTerminal(cmd.InOrStdin()) {
		return noTerminal{}
	}
	return tui.NewPrompter(tui.PrompterOptions{
		Theme:      cfg.Prompt.Theme,
		Accessible: cfg.Prompt.Accessible,
		Input:      cmd.InOrStdin(),
		Output:     cmd.OutOrStdout(),
	})
}

// noTerminal fails the first prompt. Runs that never reach a prompt still succeed.
type noTerminal struct{}

func (noTerminal) ChooseMany(context.Context, []string) ([]string, error) {
	return nil, fmt.Errorf("%w: pass --yes to select without prompting", domain.ErrNotInteractive)
}

func (noTerminal) ChooseOne(context.Context, string, []domain.Variant) (domain.Variant, error) {
	return "", fmt.Errorf("%w: pass --yes to select without prompting", domain.ErrNotInteractive)
}

// signalContext cancels the returned context on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
