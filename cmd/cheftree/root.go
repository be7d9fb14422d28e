// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/chef-tree/chef-tree/internal/config"
	"github.com/chef-tree/chef-tree/pkg/cookbook"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the chef-tree command. Each call returns a fresh
// command with its own flag state.
func newRootCommand() *cobra.Command {
	opts := runOptions{}

	rootCmd := &cobra.Command{
		Use:   "chef-tree [flags] [cookbook[::recipe]...]",
		Short: "Print the include_recipe tree of a Chef cookbook",
		Long: TitleStyle.Render("chef-tree") + SubtitleStyle.Render(" - Print the include_recipe tree of a Chef cookbook") + `

chef-tree starts at a cookbook recipe, follows every include_recipe line,
finds the included cookbooks on the configured search path and prints
which version constraint each dependency was declared with.

` + SubtitleStyle.Render("Configuration:") + `
  The search path is read from ` + config.DefaultConfigFile + `:
    {"cookbook_paths": ["~/chef-repo/cookbooks"]}

` + SubtitleStyle.Render("Examples:") + `
  chef-tree                       Tree of the current cookbook's default recipe
  chef-tree -r server             Start from recipes/server.rb
  chef-tree -p cookbooks/web      Start from another cookbook directory
  chef-tree apache2 mysql::server Walk run-list entries in order
  chef-tree --order               Also print the cookbook order`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.logLevelSet = cmd.Flags().Changed("log")
			opts.runList = args
			err := run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				cmd.SilenceUsage = true
			}
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.startPath, "path", "p", ".", "starting cookbook directory")
	flags.StringVarP(&opts.recipe, "recipe", "r", cookbook.DefaultRecipe, "starting recipe")
	flags.StringVarP(&opts.logLevel, "log", "l", string(config.LogLevelWarn), "log level (debug, info, warn, error, fatal)")
	flags.StringVarP(&opts.configFile, "config", "c", config.DefaultConfigFile, "config file")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.order, "order", false, "print the cookbook order after the tree")

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command through fang and exits with the command's
// exit code. It is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
