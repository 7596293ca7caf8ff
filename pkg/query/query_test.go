package query_test

import (
	"testing"
	"time"

	"github.com/ddbb-bakery/pos/pkg/query"
)

func projection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "sales", "s").
		Project("id", "ID").
		Project("total", "Total").
		Project("created_at", "CreatedAt")
}

func TestProjectionMap(t *testing.T) {
	p := projection()

	if got := p.Table(); got != "public.sales s" {
		t.Errorf("Table() = %q", got)
	}
	if got := p.Columns(); got != "s.id, s.total, s.created_at" {
		t.Errorf("Columns() = %q", got)
	}
	if got := p.Column("Total"); got != "s.total" {
		t.Errorf("Column(Total) = %q", got)
	}
}

func TestProjectionMapUnknownFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Column() with unknown field should panic")
		}
	}()
	projection().Column("Missing")
}

func TestBuildPage(t *testing.T) {
	sql, args := query.NewBuilder(projection(), "CreatedAt").
		OrderBy("", true).
		BuildPage(3, 20)

	want := "SELECT s.id, s.total, s.created_at FROM public.sales s ORDER BY s.created_at DESC LIMIT 20 OFFSET 40"
	if sql != want {
		t.Errorf("sql = %q\nwant  %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestConditionsNumberParameters(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	before := since.AddDate(0, 1, 0)

	qb := query.NewBuilder(projection(), "CreatedAt").
		WhereEquals("ID", "abc").
		WhereSince("CreatedAt", &since).
		WhereBefore("CreatedAt", &before)

	count, countArgs := qb.BuildCount()
	want := "SELECT COUNT(*) FROM public.sales s WHERE s.id = $1 AND s.created_at >= $2 AND s.created_at < $3"
	if count != want {
		t.Errorf("count = %q\nwant    %q", count, want)
	}
	if len(countArgs) != 3 || countArgs[0] != "abc" {
		t.Errorf("args = %v", countArgs)
	}
}

func TestNilAndZeroConditionsIgnored(t *testing.T) {
	var zero time.Time
	sql, args := query.NewBuilder(projection(), "CreatedAt").
		WhereEquals("ID", nil).
		WhereSince("CreatedAt", nil).
		WhereBefore("CreatedAt", &zero).
		BuildCount()

	if sql != "SELECT COUNT(*) FROM public.sales s" {
		t.Errorf("sql = %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v", args)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(projection(), "CreatedAt").BuildSingle("ID", 7)

	if sql != "SELECT s.id, s.total, s.created_at FROM public.sales s WHERE s.id = $1" {
		t.Errorf("sql = %q", sql)
	}
	if len(args) != 1 || args[0] != 7 {
		t.Errorf("args = %v", args)
	}
}
