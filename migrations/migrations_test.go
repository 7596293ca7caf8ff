package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/ddbb-bakery/pos/migrations"
)

func TestMigrationsPaired(t *testing.T) {
	entries, err := fs.ReadDir(migrations.FS, migrations.Dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	if len(ups) == 0 {
		t.Fatal("no migrations embedded")
	}
	for v := range ups {
		if !downs[v] {
			t.Errorf("migration %s has no down file", v)
		}
	}
	for v := range downs {
		if !ups[v] {
			t.Errorf("migration %s has no up file", v)
		}
	}
}

func TestSalesMigrationCreatesTable(t *testing.T) {
	data, err := fs.ReadFile(migrations.FS, "000001_create_sales.up.sql")
	if err != nil {
		t.Fatal(err)
	}
	for _, col := range []string{"session_id", "lines", "item_count", "total", "created_at"} {
		if !strings.Contains(string(data), col) {
			t.Errorf("sales migration missing column %s", col)
		}
	}
}
