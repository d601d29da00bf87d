// Package copier copies documentation files from the corpus into the
// output directory, one independent attempt per selection.
package copier

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/quantmind-br/llmdocs/internal/domain"
	"github.com/quantmind-br/llmdocs/internal/utils"
)

// DefaultOutputDir is the directory documentation is copied into
const DefaultOutputDir = ".llm-docs"

// Copier handles copying documentation files to the filesystem
type Copier struct {
	source    afero.Fs
	dest      afero.Fs
	outputDir string
	logger    *utils.Logger
}

// Options contains options for the copier
type Options struct {
	// Source holds the documentation files, addressed by catalog filename
	Source afero.Fs
	// Dest is the filesystem OutputDir lives on (default: the OS filesystem)
	Dest      afero.Fs
	OutputDir string
	Logger    *utils.Logger
}

// New creates a new copier
func New(opts Options) *Copier {
	if opts.Dest == nil {
		opts.Dest = afero.NewOsFs()
	}
	if opts.Source == nil {
		opts.Source = afero.NewMemMapFs()
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Copier{
		source:    opts.Source,
		dest:      opts.Dest,
		outputDir: opts.OutputDir,
		logger:    opts.Logger.WithComponent("copier"),
	}
}

// OutputDir returns the directory files are copied into
func (c *Copier) OutputDir() string {
	return c.outputDir
}

// Copy copies the documentation for one selection. Failures are reported in
// the result, never returned.
func (c *Copier) Copy(sel domain.Selection, catalog domain.Catalog) domain.CopyResult {
	result := domain.CopyResult{Selection: sel}
	log := c.logger.WithPackage(sel.Name)

	entry, ok := catalog.Lookup(sel.Name)
	if !ok {
		result.Outcome = domain.CopyCatalogMiss
		result.Err = fmt.Errorf("%w: %s", domain.ErrCatalogMiss, sel.Name)
		return result
	}

	filename, err := entry.File(sel.Variant)
	if err != nil {
		result.Outcome = domain.CopyCatalogMiss
		result.Err = fmt.Errorf("%w: %s: %w", domain.ErrCatalogMiss, sel.Name, err)
		return result
	}
	result.Filename = filename
	result.Destination = filepath.Join(c.outputDir, filename)

	if err := c.copyFile(filename, result.Destination); err != nil {
		result.Outcome = domain.CopyFileSystemError
		result.Err = domain.NewCopyError(sel.Name, result.Destination, err)
		log.Debug().Err(err).Msg("Copy failed")
		return result
	}

	result.Outcome = domain.CopySuccess
	log.Debug().Str("file", result.Destination).Msg("Copied")
	return result
}

// CopyAll copies every selection in order. onResult, if set, is called after
// each item. A cancelled context stops the loop before the next item; files
// already copied are left in place.
func (c *Copier) CopyAll(ctx context.Context, selections []domain.Selection, catalog domain.Catalog, onResult func(domain.CopyResult)) []domain.CopyResult {
	results := make([]domain.CopyResult, 0, len(selections))
	for _, sel := range selections {
		if ctx.Err() != nil {
			break
		}
		r := c.Copy(sel, catalog)
		results = append(results, r)
		if onResult != nil {
			onResult(r)
		}
	}
	return results
}

// copyFile overwrites dst with the bytes of the corpus file name
func (c *Copier) copyFile(name, dst string) (err error) {
	if err := c.dest.MkdirAll(c.outputDir, 0755); err != nil {
		return err
	}

	in, err := c.source.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	if info, statErr := in.Stat(); statErr == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory", name)
	}

	out, err := c.dest.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
