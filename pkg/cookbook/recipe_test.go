// SPDX-License-Identifier: MPL-2.0

package cookbook

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestParseRecipeRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  string
		want RecipeRef
	}{
		{ref: "a::b", want: RecipeRef{Cookbook: "a", Recipe: "b"}},
		{ref: "b", want: RecipeRef{Recipe: "b"}},
		{ref: "apache2::mod_ssl", want: RecipeRef{Cookbook: "apache2", Recipe: "mod_ssl"}},
		{ref: "a::", want: RecipeRef{Cookbook: "a", Recipe: ""}},
		{ref: "a::b::c", want: RecipeRef{Cookbook: "a", Recipe: "b"}},
		{ref: "::b", want: RecipeRef{Cookbook: "", Recipe: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			if got := ParseRecipeRef(tt.ref); got != tt.want {
				t.Errorf("ParseRecipeRef(%q) = %+v, want %+v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestParseRunListEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entry string
		want  RecipeRef
	}{
		{entry: "apache2", want: RecipeRef{Cookbook: "apache2", Recipe: DefaultRecipe}},
		{entry: "apache2::mod_ssl", want: RecipeRef{Cookbook: "apache2", Recipe: "mod_ssl"}},
		{entry: "apache2::", want: RecipeRef{Cookbook: "apache2", Recipe: DefaultRecipe}},
		{entry: "apache2::mod_ssl::extra", want: RecipeRef{Cookbook: "apache2", Recipe: "mod_ssl"}},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRunListEntry(tt.entry)
			if err != nil {
				t.Fatalf("ParseRunListEntry(%q) returned error: %v", tt.entry, err)
			}
			if got != tt.want {
				t.Errorf("ParseRunListEntry(%q) = %+v, want %+v", tt.entry, got, tt.want)
			}
		})
	}
}

func TestParseRunListEntry_MissingCookbook(t *testing.T) {
	t.Parallel()

	for _, entry := range []string{"", "::", "::mod_ssl"} {
		got, err := ParseRunListEntry(entry)
		if !errors.Is(err, ErrInvalidRunListEntry) {
			t.Errorf("ParseRunListEntry(%q) error = %v, want ErrInvalidRunListEntry", entry, err)
		}
		if got != (RecipeRef{}) {
			t.Errorf("ParseRunListEntry(%q) = %+v, want zero value", entry, got)
		}
	}
}

func TestRecipeRefString(t *testing.T) {
	t.Parallel()

	if got := (RecipeRef{Cookbook: "a", Recipe: "b"}).String(); got != "a::b" {
		t.Errorf("String() = %q, want a::b", got)
	}
	if got := (RecipeRef{Recipe: "b"}).String(); got != "b" {
		t.Errorf("String() = %q, want b", got)
	}
}

func TestParseRecipe(t *testing.T) {
	t.Parallel()

	content := `package "httpd"

include_recipe "apache2::mod_ssl"
include_recipe 'service'
include_recipe("logrotate")
  include_recipe ( "apache2::mod_ssl" )
include_recipe "#{cookbook_name}::#{node['flavor']}" if node['flavor']
# include_recipe "commented"
include_recipe node['dynamic']
`

	got, err := ParseRecipe(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseRecipe() returned error: %v", err)
	}

	want := []string{"apache2::mod_ssl", "service", "logrotate", "apache2::mod_ssl"}
	if !slices.Equal(got, want) {
		t.Errorf("ParseRecipe() = %v, want %v", got, want)
	}
}

func TestParseRecipe_LongLine(t *testing.T) {
	t.Parallel()

	content := "include_recipe \"apache2\"\n" +
		"template_body = \"" + strings.Repeat("x", 70000) + "\"\n" +
		"include_recipe \"logrotate::default\"\n"

	got, err := ParseRecipe(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseRecipe() returned error: %v", err)
	}
	want := []string{"apache2", "logrotate::default"}
	if !slices.Equal(got, want) {
		t.Errorf("ParseRecipe() = %v, want %v", got, want)
	}
}

func TestReadRecipe(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/cb/recipes/default.rb", []byte("include_recipe \"other\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadRecipe(fsys, "/cb", "default")
	if err != nil {
		t.Fatalf("ReadRecipe() returned error: %v", err)
	}
	if !slices.Equal(got, []string{"other"}) {
		t.Errorf("ReadRecipe() = %v, want [other]", got)
	}

	_, err = ReadRecipe(fsys, "/cb", "missing")
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("ReadRecipe(missing) error = %v, want ErrRecipeNotFound", err)
	}
}
