// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "read cookbook metadata"},
			want: "failed to read cookbook metadata",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "/home/chef/.chef-tree.json"},
			want: "failed to load configuration: /home/chef/.chef-tree.json",
		},
		{
			name: "operation resource and cause",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "cfg.json",
				Cause:     errors.New("unexpected end of JSON input"),
			},
			want: "failed to load configuration: cfg.json: unexpected end of JSON input",
		},
		{
			name: "operation and cause",
			err:  &ActionableError{Operation: "scan cookbooks", Cause: fs.ErrPermission},
			want: "failed to scan cookbooks: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("open cfg.json: %w", fs.ErrNotExist)
	err := NewErrorContext().
		WithOperation("load configuration").
		Wrap(wrapped).
		BuildError()

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should find fs.ErrNotExist through the chain")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find *ActionableError")
	}
	if ae.Unwrap() != wrapped {
		t.Error("Unwrap() should return the cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := &ActionableError{
		Operation:   "load configuration",
		Resource:    "cfg.json",
		Suggestions: []string{"Check the JSON syntax", "Pass another file with --config"},
		Cause:       fmt.Errorf("decode: %w", errors.New("bad token")),
	}

	plain := err.Format(false)
	if !strings.HasPrefix(plain, err.Error()) {
		t.Errorf("Format(false) should start with Error(), got %q", plain)
	}
	for _, sug := range err.Suggestions {
		if !strings.Contains(plain, "• "+sug) {
			t.Errorf("Format(false) missing suggestion %q", sug)
		}
	}
	if strings.Contains(plain, "Error chain:") {
		t.Error("Format(false) should not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Error("Format(true) should include the error chain")
	}
	if !strings.Contains(verbose, "1. decode: bad token") || !strings.Contains(verbose, "2. bad token") {
		t.Errorf("Format(true) should number each chain entry, got %q", verbose)
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	t.Parallel()

	if (&ActionableError{Operation: "x"}).HasSuggestions() {
		t.Error("HasSuggestions() = true without suggestions")
	}
	if !(&ActionableError{Operation: "x", Suggestions: []string{"y"}}).HasSuggestions() {
		t.Error("HasSuggestions() = false with a suggestion")
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("read cookbook metadata").
		WithResource("cookbooks/web").
		WithSuggestion("first").
		WithSuggestion("second").
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "read cookbook metadata" || ae.Resource != "cookbooks/web" {
		t.Errorf("unexpected fields: %+v", ae)
	}
	if len(ae.Suggestions) != 2 || ae.Suggestions[0] != "first" || ae.Suggestions[1] != "second" {
		t.Errorf("Suggestions = %v", ae.Suggestions)
	}
	if ae.Cause != cause {
		t.Errorf("Cause = %v, want %v", ae.Cause, cause)
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if ae := NewErrorContext().WithResource("x").Build(); ae != nil {
		t.Errorf("Build() = %v, want nil", ae)
	}
	if err := NewErrorContext().Wrap(errors.New("x")).BuildError(); err != nil {
		t.Errorf("BuildError() = %v, want nil", err)
	}
}
