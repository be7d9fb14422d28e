// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	// MetadataNotFoundId is raised when a cookbook directory has no metadata.rb.
	MetadataNotFoundId Id = iota + 1
	// ConfigLoadFailedId is raised when the config file cannot be parsed.
	ConfigLoadFailedId
	// StartingPathInvalidId is raised when --path does not point to a directory.
	StartingPathInvalidId
	// DependencyCycleId is raised when the cookbook order cannot be computed.
	DependencyCycleId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is Markdown text rendered for the user.
	MarkdownMsg string

	// HttpLink is a documentation or reference URL.
	HttpLink string

	// Issue is a catalog entry with remediation guidance.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

// Id returns the catalog ID.
func (i *Issue) Id() Id {
	return i.id
}

// Render renders the guidance with the given glamour style ("dark", "light", "notty").
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		var sb strings.Builder
		sb.WriteString(md)
		sb.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			sb.WriteString("- <" + string(link) + ">\n")
		}
		md = sb.String()
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	metadataNotFoundIssue = &Issue{
		id: MetadataNotFoundId,
		mdMsg: `
# No metadata.rb found!

Every cookbook chef-tree inspects must declare itself in a metadata.rb file.

## Things you can try:
- Run chef-tree from a cookbook directory, or point at one:
~~~
$ chef-tree --path ~/chef-repo/cookbooks/webapp
~~~

- Check that the cookbook declares at least its name:
~~~ruby
name "webapp"
version "1.0.0"
depends "apache2", "~> 5.0"
~~~`,
		docLinks: []HttpLink{"https://docs.chef.io/config_rb_metadata/"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration!

chef-tree reads its search path from a JSON file (~/.chef-tree.json by default).

## Things you can try:
- Validate the JSON syntax of the file
- Make sure cookbook_paths is a list of directories:
~~~json
{
  "cookbook_paths": ["~/chef-repo/cookbooks", "~/chef-repo/site-cookbooks"]
}
~~~

- Point at another file with --config`,
	}

	startingPathInvalidIssue = &Issue{
		id: StartingPathInvalidId,
		mdMsg: `
# Starting path is not a directory!

The --path flag must name an existing cookbook directory.

## Things you can try:
- Check for typos in the path
- Omit --path to start from the current directory`,
	}

	dependencyCycleIssue = &Issue{
		id: DependencyCycleId,
		mdMsg: `
# Cookbook dependency cycle!

Some cookbooks include recipes from each other, so no converge order exists.
The tree above marks the include that closes the loop with (cycle).

## Things you can try:
- Move the shared resources into a separate cookbook both can depend on
- Remove the include_recipe that points back up the tree`,
	}

	issues = map[Id]*Issue{
		metadataNotFoundIssue.Id():    metadataNotFoundIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		startingPathInvalidIssue.Id(): startingPathInvalidIssue,
		dependencyCycleIssue.Id():     dependencyCycleIssue,
	}
)

// values returns every catalog entry ordered by Id.
func values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, iss := range issues {
		values = append(values, iss)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return values
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
