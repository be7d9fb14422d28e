// SPDX-License-Identifier: MPL-2.0

package tree

import (
	"context"
	"errors"
	"io"

	"github.com/chef-tree/chef-tree/internal/dag"
	"github.com/chef-tree/chef-tree/internal/locator"
	"github.com/chef-tree/chef-tree/pkg/cookbook"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// Locator resolves a cookbook name to its directory.
	Locator interface {
		Locate(name string) (locator.Result, bool)
	}

	// Root is the starting point of a walk. When Dir is empty the cookbook is
	// looked up through the Locator like any other include.
	Root struct {
		Dir      string
		Cookbook string
		Recipe   string
	}

	// Summary counts what a walk ran into.
	Summary struct {
		// Nodes is the number of printed lines.
		Nodes int
		// Cookbooks is the number of distinct cookbook names seen, located or not.
		Cookbooks int
		// Located is the number of cookbooks found on disk.
		Located int
		// Unresolved counts includes of cookbooks that could not be located.
		Unresolved int
		// Undeclared counts includes of cookbooks missing from the includer's depends.
		Undeclared int
		// Unsatisfied counts located cookbooks whose version fails the declared constraint.
		Unsatisfied int
		// Cycles counts includes that re-entered a recipe on the current path.
		Cycles int
	}

	// Walker prints the include tree of one or more roots. Colors and the
	// cookbook graph are shared by every Walk call on the same Walker.
	Walker struct {
		fs      afero.Fs
		locator Locator
		printer *Printer
		colors  *Colors
		graph   *dag.Graph
		logger  *log.Logger
		summary Summary
	}

	// Option configures a Walker.
	Option func(*Walker)

	// node is one recursion step.
	node struct {
		depth    int
		cookbook string
		recipe   string
		label    VersionLabel
		// dir is known for the root and same-cookbook includes.
		dir string
		// parent is the including cookbook, empty for the root.
		parent string
		// constraint is checked against the located cookbook's version when set.
		constraint cookbook.Constraint
	}
)

// WithLogger sets the logger for walk diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithFs sets the filesystem cookbook files are read from (default: the OS filesystem).
func WithFs(fsys afero.Fs) Option {
	return func(w *Walker) {
		if fsys != nil {
			w.fs = fsys
		}
	}
}

// New creates a Walker.
func New(loc Locator, printer *Printer, opts ...Option) *Walker {
	w := &Walker{
		fs:      afero.NewOsFs(),
		locator: loc,
		printer: printer,
		colors:  NewColors(),
		graph:   dag.New(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Summary returns the counters accumulated so far.
func (w *Walker) Summary() Summary {
	s := w.summary
	s.Cookbooks = w.colors.Len()
	s.Located = w.graph.Len()
	return s
}

// Order returns the located cookbooks with dependencies before dependents.
func (w *Walker) Order() ([]string, error) {
	return w.graph.TopologicalSort()
}

// Walk prints the tree below root. It returns an error when metadata of a
// located cookbook cannot be read, when output fails, or when ctx is done.
// Lines printed before the error stay printed.
func (w *Walker) Walk(ctx context.Context, root Root) error {
	recipe := root.Recipe
	if recipe == "" {
		recipe = cookbook.DefaultRecipe
	}

	return w.visit(ctx, node{
		cookbook: root.Cookbook,
		recipe:   recipe,
		label:    LabelStart,
		dir:      root.Dir,
	}, make(map[string]bool))
}

// visit prints n and recurses into its includes. ancestors holds the
// cookbook::recipe keys on the current path.
func (w *Walker) visit(ctx context.Context, n node, ancestors map[string]bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.logger.Info("Processing cookbook", "cookbook", n.cookbook, "recipe", n.recipe, "label", n.label, "depth", n.depth)
	color := w.colors.For(n.cookbook)
	w.summary.Nodes++

	dir := n.dir
	if dir == "" {
		res, ok := w.locator.Locate(n.cookbook)
		if !ok {
			w.logger.Debug("Nowhere to go", "cookbook", n.cookbook)
			w.summary.Unresolved++
			return w.printer.Print(Line{
				Depth:   n.depth,
				Display: n.cookbook + "::" + n.recipe,
				Label:   n.label,
			}, color)
		}
		w.logger.Debug("Located cookbook", "cookbook", n.cookbook, "dir", res.Dir, "strategy", res.Strategy)
		dir = res.Dir
	}

	md, err := cookbook.ReadMetadata(w.fs, dir)
	if err != nil {
		return err
	}
	w.recordEdge(n)
	w.checkConstraint(n, md)

	name := md.Name
	if name == "" {
		name = n.cookbook
	}

	key := n.cookbook + "::" + n.recipe
	cycle := ancestors[key]
	if err := w.printer.Print(Line{
		Depth:   n.depth,
		Display: name + "::" + n.recipe,
		Version: md.Version,
		Label:   n.label,
		Cycle:   cycle,
	}, color); err != nil {
		return err
	}
	if cycle {
		w.logger.Warn("Recipe includes itself through its own includes, not descending", "recipe", key)
		w.summary.Cycles++
		return nil
	}

	ancestors[key] = true
	defer delete(ancestors, key)

	includes, err := cookbook.ReadRecipe(w.fs, dir, n.recipe)
	if err != nil {
		if errors.Is(err, cookbook.ErrRecipeNotFound) {
			w.logger.Warn("Could not read recipe, might be a variable", "recipe", key)
		} else {
			w.logger.Warn("Could not read recipe", "recipe", key, "error", err)
		}
		return nil
	}
	w.logger.Debug("Found included recipes", "recipe", key, "includes", includes)

	for _, included := range includes {
		child := w.child(n, md, dir, cookbook.ParseRecipeRef(included))
		if err := w.visit(ctx, child, ancestors); err != nil {
			return err
		}
	}

	return nil
}

// child builds the recursion step for one include of parent.
func (w *Walker) child(parent node, md *cookbook.Metadata, dir string, ref cookbook.RecipeRef) node {
	n := node{
		depth:    parent.depth + 1,
		cookbook: ref.Cookbook,
		recipe:   ref.Recipe,
		parent:   parent.cookbook,
	}

	if ref.Cookbook == "" || ref.Cookbook == parent.cookbook {
		n.cookbook = parent.cookbook
		n.label = LabelSameCookbook
		n.dir = dir
		return n
	}

	c, ok := md.Dependency(ref.Cookbook)
	switch {
	case !ok:
		w.logger.Warn("Dependency not found in metadata.rb", "dependency", ref.Cookbook, "cookbook", parent.cookbook)
		w.summary.Undeclared++
		n.label = LabelNotFound
	case c.Set:
		n.label = VersionLabel(c.Value)
		n.constraint = c
	default:
		n.label = LabelAny
	}
	return n
}

func (w *Walker) recordEdge(n node) {
	if n.parent == "" {
		w.graph.AddNode(n.cookbook)
		return
	}
	w.graph.AddEdge(n.cookbook, n.parent)
}

func (w *Walker) checkConstraint(n node, md *cookbook.Metadata) {
	if !n.constraint.Set || md.Version == "" {
		return
	}
	ok, err := n.constraint.Satisfies(md.Version)
	if err != nil {
		w.logger.Debug("Cannot check version constraint", "cookbook", n.cookbook, "error", err)
		return
	}
	if !ok {
		w.logger.Warn("Version does not satisfy constraint",
			"cookbook", n.cookbook, "version", md.Version, "constraint", n.constraint.Value, "required_by", n.parent)
		w.summary.Unsatisfied++
	}
}
