package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/quantmind-br/llmdocs/internal/assets"
	"github.com/quantmind-br/llmdocs/internal/catalog"
	"github.com/quantmind-br/llmdocs/internal/config"
	"github.com/quantmind-br/llmdocs/internal/copier"
	"github.com/quantmind-br/llmdocs/internal/domain"
	"github.com/quantmind-br/llmdocs/internal/manifest"
	"github.com/quantmind-br/llmdocs/internal/resolver"
	"github.com/quantmind-br/llmdocs/internal/tui"
	"github.com/quantmind-br/llmdocs/internal/utils"
)

// Orchestrator sequences manifest loading, resolution, selection and copying
type Orchestrator struct {
	config       *config.Config
	manifestPath string
	catalogFS    afero.Fs
	catalogPath  string
	only         []string
	prompter     domain.Prompter
	copier       *copier.Copier
	reporter     *tui.Reporter
	progress     io.Writer
	logger       *utils.Logger
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config *config.Config
	// WorkDir is the project directory; relative config paths resolve against it
	WorkDir  string
	Prompter domain.Prompter
	// Only restricts the run to packages matching these glob patterns
	Only []string
	// Output receives the status lines (default io.Discard)
	Output io.Writer
	// Progress receives the copy progress bar (default io.Discard)
	Progress io.Writer
	Logger   *utils.Logger
	// Dest is the filesystem the output directory is created on (default: OS)
	Dest afero.Fs
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if opts.Prompter == nil {
		return nil, fmt.Errorf("prompter is required")
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	if opts.Progress == nil {
		opts.Progress = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	o := &Orchestrator{
		config:       cfg,
		manifestPath: utils.ResolvePath(opts.WorkDir, cfg.Manifest),
		only:         opts.Only,
		prompter:     opts.Prompter,
		reporter:     tui.NewReporter(opts.Output),
		progress:     opts.Progress,
		logger:       logger.WithComponent("orchestrator"),
	}

	var docs afero.Fs
	if cfg.UsesBundledCatalog() {
		o.catalogFS = afero.FromIOFS{FS: assets.FS()}
		o.catalogPath = assets.CatalogFile
		docs = afero.FromIOFS{FS: assets.Docs()}
	} else {
		o.catalogFS = afero.NewOsFs()
		o.catalogPath = utils.ResolvePath(opts.WorkDir, cfg.Catalog.Path)
		docsDir := filepath.Dir(o.catalogPath)
		if cfg.Catalog.DocsDir != "" {
			docsDir = utils.ResolvePath(opts.WorkDir, cfg.Catalog.DocsDir)
		}
		docs = afero.NewBasePathFs(afero.NewOsFs(), docsDir)
	}

	o.copier = copier.New(copier.Options{
		Source:    docs,
		Dest:      opts.Dest,
		OutputDir: utils.ResolvePath(opts.WorkDir, cfg.Output.Directory),
		Logger:    logger,
	})

	return o, nil
}

// Run executes the interactive selection and copies the chosen documentation.
// It returns nil for every completed run, including an empty selection and
// per-package copy failures.
func (o *Orchestrator) Run(ctx context.Context) error {
	res, err := o.resolve()
	if err != nil {
		return err
	}
	names, resolvable, cat := res.names, res.resolvable, res.catalog

	if len(names) == 0 {
		o.reportNoNames(res.declared)
		o.reporter.Info("Nothing selected.")
		return nil
	}

	o.reporter.Title("Dependencies")
	for _, s := range res.statuses {
		o.reporter.Status(s)
	}
	fmt.Fprintln(o.reporter.Writer())

	if len(resolvable) == 0 {
		o.reporter.Info("None of the %d dependencies has documentation. Nothing selected.", len(names))
		return nil
	}

	chosen, err := o.prompter.ChooseMany(ctx, resolvable)
	if err != nil {
		return err
	}
	chosen = unique(chosen)
	if len(chosen) == 0 {
		o.reporter.Info("Nothing selected.")
		return nil
	}

	selections := make([]domain.Selection, 0, len(chosen))
	for _, name := range chosen {
		variant, err := o.prompter.ChooseOne(ctx, name, domain.Variants)
		if err != nil {
			return err
		}
		selections = append(selections, domain.Selection{Name: name, Variant: variant})
	}

	o.logger.Info().Int("packages", len(selections)).Str("output", o.copier.OutputDir()).Msg("Copying documentation")

	o.reporter.Title("Copying documentation")
	bar := utils.NewProgressBar(len(selections), utils.DescCopying, o.progress)
	results := o.copier.CopyAll(ctx, selections, cat, func(r domain.CopyResult) {
		_ = bar.Add(1)
		o.reporter.Result(r)
		if !r.OK() {
			o.logger.WithPackage(r.Name).Warn().Str("outcome", r.Outcome.String()).Err(r.Err).Msg("Copy failed")
		}
	})
	_ = bar.Finish()

	if ctx.Err() != nil {
		return domain.ErrAborted
	}

	o.reporter.Summary(domain.Summarize(results, o.copier.OutputDir()))
	return nil
}

// List prints the availability of every declared dependency without
// prompting or copying.
func (o *Orchestrator) List(ctx context.Context) error {
	res, err := o.resolve()
	if err != nil {
		return err
	}

	if len(res.names) == 0 {
		o.reportNoNames(res.declared)
		return nil
	}

	o.reporter.Title("Dependencies")
	for _, s := range res.statuses {
		o.reporter.Status(s)
	}
	fmt.Fprintln(o.reporter.Writer())
	o.reporter.Info("%d of %d dependencies have documentation.", len(res.resolvable), len(res.names))
	return ctx.Err()
}

// reportNoNames explains an empty dependency list. declared is the count
// before --only filtering.
func (o *Orchestrator) reportNoNames(declared int) {
	if declared > 0 && len(o.only) > 0 {
		o.reporter.Info("None of the %d dependencies in %s match %s.", declared, o.manifestPath, strings.Join(o.only, ", "))
		return
	}
	o.reporter.Info("No dependencies found in %s.", o.manifestPath)
}

// resolution is the outcome of joining the manifest with the catalog
type resolution struct {
	declared   int
	names      []string
	resolvable []string
	statuses   []domain.DependencyStatus
	catalog    *catalog.Catalog
}

// resolve loads the manifest (fatal on failure) and the catalog (empty on
// failure), applies the package filters and computes the resolvable set.
func (o *Orchestrator) resolve() (*resolution, error) {
	m, err := manifest.Load(o.manifestPath)
	if err != nil {
		return nil, err
	}

	cat := o.loadCatalog()

	all := m.AllNames()
	names, err := resolver.Filter(all, o.only)
	if err != nil {
		return nil, err
	}

	resolvable := resolver.Resolvable(names, cat)
	statuses := resolver.Statuses(names, resolvable)
	for i := range statuses {
		if class, ok := m.ClassOf(statuses[i].Name); ok {
			statuses[i].Source = string(class)
		}
	}

	o.logger.Debug().
		Int("declared", len(all)).
		Int("filtered", len(names)).
		Int("resolvable", len(resolvable)).
		Int("catalog", cat.Len()).
		Msg("Resolved dependencies")

	return &resolution{
		declared:   len(all),
		names:      names,
		resolvable: resolvable,
		statuses:   statuses,
		catalog:    cat,
	}, nil
}

func (o *Orchestrator) loadCatalog() *catalog.Catalog {
	cat, err := catalog.NewLoader(o.logger).LoadFS(o.catalogFS, o.catalogPath)
	if err != nil {
		o.logger.Warn().Err(err).Str("catalog", o.catalogPath).Msg("Using empty catalog")
		o.reporter.Warn("Documentation catalog could not be read: %v", err)
		return catalog.Empty()
	}
	return cat
}

// unique drops repeated names, keeping the first occurrence
func unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
