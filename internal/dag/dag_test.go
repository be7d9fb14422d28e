// SPDX-License-Identifier: MPL-2.0

package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestTopologicalSort_EmptyGraph(t *testing.T) {
	t.Parallel()
	g := New()
	order, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order != nil {
		t.Errorf("expected nil, got %v", order)
	}
}

func TestTopologicalSort_DependenciesFirst(t *testing.T) {
	t.Parallel()
	g := New()
	// webapp includes apache2, apache2 includes iptables.
	g.AddEdge("apache2", "webapp")
	g.AddEdge("iptables", "apache2")

	order, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"iptables", "apache2", "webapp"}
	if !slices.Equal(order, want) {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestTopologicalSort_Diamond(t *testing.T) {
	t.Parallel()
	g := New()
	g.AddEdge("build-essential", "mysql")
	g.AddEdge("build-essential", "nginx")
	g.AddEdge("mysql", "app")
	g.AddEdge("nginx", "app")

	order, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"build-essential", "mysql", "nginx", "app"}
	if !slices.Equal(order, want) {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	t.Parallel()
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")
	g.AddNode("standalone")

	_, err := g.TopologicalSort()
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected *CycleError, got %T: %v", err, err)
	}
	if !slices.Equal(cycleErr.Cycle, []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c] in cycle, got %v", cycleErr.Cycle)
	}
}

func TestAddEdge_SelfEdgeIgnored(t *testing.T) {
	t.Parallel()
	g := New()
	g.AddEdge("apache2", "apache2")

	order, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(order, []string{"apache2"}) {
		t.Errorf("expected [apache2], got %v", order)
	}
}

func TestAddEdge_Duplicates(t *testing.T) {
	t.Parallel()
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")
	g.AddNode("a")

	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
	if !slices.Equal(g.nodes, []string{"a", "b"}) {
		t.Errorf("nodes = %v, want [a b]", g.nodes)
	}
	order, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(order, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", order)
	}
}

func TestCycleError_Message(t *testing.T) {
	t.Parallel()
	err := &CycleError{Cycle: []string{"a", "b", "c"}}
	expected := "dependency cycle detected: a -> b -> c"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}
