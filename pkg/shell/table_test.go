package shell_test

import (
	"errors"
	"testing"

	"github.com/ddbb-bakery/pos/pkg/shell"
)

type named string

func (n named) Name() string { return string(n) }

func view(name string) shell.Factory {
	return func() shell.View { return named(name) }
}

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		routes  []shell.Route
		wantErr error
	}{
		{
			name:   "empty table",
			routes: nil,
		},
		{
			name: "unique patterns",
			routes: []shell.Route{
				{Pattern: "/", View: view("main")},
				{Pattern: "/guide", View: view("guide")},
			},
		},
		{
			name: "duplicate pattern",
			routes: []shell.Route{
				{Pattern: "/guide", View: view("a")},
				{Pattern: "/guide", View: view("b")},
			},
			wantErr: shell.ErrDuplicatePattern,
		},
		{
			name:    "empty pattern",
			routes:  []shell.Route{{Pattern: "", View: view("a")}},
			wantErr: shell.ErrEmptyPattern,
		},
		{
			name:    "nil view",
			routes:  []shell.Route{{Pattern: "/"}},
			wantErr: shell.ErrNilView,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := shell.NewTable(tt.routes...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewTable() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTable() error = %v", err)
			}
			if table.Len() != len(tt.routes) {
				t.Errorf("Len() = %d, want %d", table.Len(), len(tt.routes))
			}
		})
	}
}

func TestMustTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustTable() should panic on duplicate patterns")
		}
	}()
	shell.MustTable(
		shell.Route{Pattern: "/", View: view("a")},
		shell.Route{Pattern: "/", View: view("b")},
	)
}

func TestTableMatchIsExact(t *testing.T) {
	table := shell.MustTable(
		shell.Route{Pattern: "/", View: view("main")},
		shell.Route{Pattern: "/guide", View: view("guide")},
	)

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/", "/", true},
		{"/guide", "/guide", true},
		{"/guide/", "", false},
		{"/guide/step", "", false},
		{"/Guide", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, ok := table.Match(tt.path)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if r.Pattern != tt.want {
				t.Errorf("Match(%q) pattern = %q, want %q", tt.path, r.Pattern, tt.want)
			}
		})
	}
}

func TestTableResolveBuildsFreshViews(t *testing.T) {
	builds := 0
	table := shell.MustTable(shell.Route{
		Pattern: "/",
		View: func() shell.View {
			builds++
			return named("main")
		},
	})

	table.Resolve("/")
	table.Resolve("/")
	if builds != 2 {
		t.Errorf("factory called %d times, want 2", builds)
	}

	if v := table.Resolve("/nope"); v != nil {
		t.Errorf("Resolve(/nope) = %v, want nil", v)
	}
}

func TestTableRoutesIsCopy(t *testing.T) {
	table := shell.MustTable(
		shell.Route{Pattern: "/", View: view("main")},
		shell.Route{Pattern: "/guide", View: view("guide")},
	)

	routes := table.Routes()
	routes[0].Pattern = "/mutated"

	if _, ok := table.Match("/"); !ok {
		t.Error("mutating Routes() result changed the table")
	}
	want := []string{"/", "/guide"}
	for i, p := range table.Patterns() {
		if p != want[i] {
			t.Errorf("Patterns()[%d] = %q, want %q", i, p, want[i])
		}
	}
}
