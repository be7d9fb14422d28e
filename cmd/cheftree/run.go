// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/chef-tree/chef-tree/internal/config"
	"github.com/chef-tree/chef-tree/internal/dag"
	"github.com/chef-tree/chef-tree/internal/issue"
	"github.com/chef-tree/chef-tree/internal/locator"
	"github.com/chef-tree/chef-tree/internal/tree"
	"github.com/chef-tree/chef-tree/pkg/cookbook"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// ErrNotADirectory is returned when --path does not name a directory.
var ErrNotADirectory = errors.New("not a directory")

// runOptions holds the parsed command line.
type runOptions struct {
	startPath   string
	recipe      string
	logLevel    string
	logLevelSet bool
	configFile  string
	noColor     bool
	order       bool
	runList     []string
	// fs defaults to the OS filesystem.
	fs afero.Fs
}

// run prints the tree for opts. Fatal conditions are logged, rendered with
// their issue guidance and returned as *ExitError.
func run(ctx context.Context, opts runOptions, stdout, stderr io.Writer) error {
	fsys := opts.fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	level := config.DefaultConfig().LogLevel
	if opts.logLevelSet {
		level = config.ParseLogLevel(opts.logLevel)
	}

	loaded, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: opts.configFile})
	if err != nil {
		return fatal(newLogger(stderr, level), stderr, err, issue.ConfigLoadFailedId)
	}
	cfg := loaded.Config
	if !opts.logLevelSet {
		level = config.ParseLogLevel(string(cfg.LogLevel))
	}
	logger := newLogger(stderr, level)
	if !loaded.Found {
		logger.Warn("Config file not found, using defaults", "path", loaded.Path)
	}

	startDir, err := filepath.Abs(opts.startPath)
	if err != nil {
		return fatal(logger, stderr, fmt.Errorf("resolve starting path: %w", err), issue.StartingPathInvalidId)
	}
	if ok, _ := afero.IsDir(fsys, startDir); !ok {
		return fatal(logger, stderr, fmt.Errorf("%s: %w", startDir, ErrNotADirectory), issue.StartingPathInvalidId)
	}

	loc := locator.New(cfg.SearchPaths(startDir), locator.WithLogger(logger), locator.WithFs(fsys))
	logger.Debug("Search path", "cookbook_paths", loc.Paths())

	noColor := opts.noColor || cfg.NoColor
	printer := tree.NewPrinter(stdout, noColor)
	walker := tree.New(
		loc,
		printer,
		tree.WithLogger(logger),
		tree.WithFs(fsys),
	)

	roots, err := resolveRoots(fsys, startDir, opts)
	if err != nil {
		return fatal(logger, stderr, err, issueFor(err))
	}

	for _, root := range roots {
		if err := walker.Walk(ctx, root); err != nil {
			return fatal(logger, stderr, err, issueFor(err))
		}
	}

	s := walker.Summary()
	logger.Info("Walk finished",
		"lines", s.Nodes, "cookbooks", s.Cookbooks, "located", s.Located,
		"unresolved", s.Unresolved, "undeclared", s.Undeclared,
		"unsatisfied", s.Unsatisfied, "cycles", s.Cycles)

	if opts.order {
		return printOrder(walker, printer, headingStyle(stdout, noColor), stderr, logger)
	}
	return nil
}

// resolveRoots returns the walk roots: the run-list entries when given,
// otherwise the starting directory's cookbook and recipe.
func resolveRoots(fsys afero.Fs, startDir string, opts runOptions) ([]tree.Root, error) {
	if len(opts.runList) > 0 {
		roots := make([]tree.Root, 0, len(opts.runList))
		for _, entry := range opts.runList {
			ref, err := cookbook.ParseRunListEntry(entry)
			if err != nil {
				return nil, err
			}
			roots = append(roots, tree.Root{Cookbook: ref.Cookbook, Recipe: ref.Recipe})
		}
		return roots, nil
	}

	md, err := cookbook.ReadMetadata(fsys, startDir)
	if err != nil {
		return nil, err
	}
	name := md.Name
	if name == "" {
		name = filepath.Base(startDir)
	}
	return []tree.Root{{Dir: startDir, Cookbook: name, Recipe: opts.recipe}}, nil
}

// printOrder prints the located cookbooks with dependencies first. A cycle
// in the observed graph is reported on stderr and is not fatal.
func printOrder(walker *tree.Walker, printer *tree.Printer, heading lipgloss.Style, stderr io.Writer, logger *log.Logger) error {
	order, err := walker.Order()
	var cycleErr *dag.CycleError
	if errors.As(err, &cycleErr) {
		logger.Warn("Cannot order cookbooks", "cycle", cycleErr.Cycle)
		if renderErr := renderServiceError(stderr, newServiceError(err, issue.DependencyCycleId, "")); renderErr != nil {
			logger.Debug("Failed to render issue catalog entry", "error", renderErr)
		}
		return nil
	}
	if err != nil {
		return err
	}

	if err := printer.Println("\n" + heading.Render("Cookbook order:")); err != nil {
		return err
	}
	for i, name := range order {
		if err := printer.Println(fmt.Sprintf("%4d. %s", i+1, name)); err != nil {
			return err
		}
	}
	return nil
}

// issueFor maps a fatal error to its catalog entry, 0 when there is none.
func issueFor(err error) issue.Id {
	switch {
	case errors.Is(err, cookbook.ErrMetadataNotFound):
		return issue.MetadataNotFoundId
	default:
		return 0
	}
}

// fatal logs err at fatal level, renders its suggestions and issue guidance
// and returns the error that makes the command exit with status 1.
func fatal(logger *log.Logger, stderr io.Writer, err error, id issue.Id) error {
	logger.Log(log.FatalLevel, err.Error())

	var styled string
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.HasSuggestions() {
		styled = errorStyle(stderr).Render("Error: ") + ae.Format(logger.GetLevel() == log.DebugLevel) + "\n"
	}

	svcErr := newServiceError(err, id, styled)
	if renderErr := renderServiceError(stderr, svcErr); renderErr != nil {
		logger.Debug("Failed to render issue catalog entry", "error", renderErr)
	}
	return &ExitError{Code: 1, Err: svcErr}
}
