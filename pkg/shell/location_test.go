package shell_test

import (
	"testing"

	"github.com/ddbb-bakery/pos/pkg/shell"
)

func TestLocationNavigate(t *testing.T) {
	loc := shell.NewLocation("/")

	var changes [][2]string
	loc.Subscribe(func(from, to string) {
		changes = append(changes, [2]string{from, to})
	})

	loc.Navigate("/guide")
	loc.Navigate("/guide")
	loc.Navigate("/payment")

	if loc.Path() != "/payment" {
		t.Errorf("Path() = %q, want /payment", loc.Path())
	}

	want := [][2]string{{"/", "/guide"}, {"/guide", "/payment"}}
	if len(changes) != len(want) {
		t.Fatalf("got %d changes, want %d", len(changes), len(want))
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, changes[i], want[i])
		}
	}
}

func TestLocationNestedNavigateIsQueued(t *testing.T) {
	loc := shell.NewLocation("/")

	var order []string
	loc.Subscribe(func(from, to string) {
		order = append(order, "start "+to)
		if to == "/a" {
			loc.Navigate("/b")
		}
		order = append(order, "end "+to)
	})

	loc.Navigate("/a")

	want := []string{"start /a", "end /a", "start /b", "end /b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestLocationClose(t *testing.T) {
	loc := shell.NewLocation("/")
	called := false
	loc.Subscribe(func(from, to string) { called = true })

	loc.Close()
	loc.Navigate("/guide")

	if !loc.Closed() {
		t.Error("Closed() = false after Close")
	}
	if called {
		t.Error("listener called after Close")
	}
	if loc.Path() != "/" {
		t.Errorf("Path() = %q, want /", loc.Path())
	}
}
