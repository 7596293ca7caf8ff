package pagination_test

import (
	"net/url"
	"testing"

	"github.com/ddbb-bakery/pos/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		query      string
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"", 1, 20, 0},
		{"page=3&page_size=10", 3, 10, 20},
		{"page=-1&page_size=500", 1, 100, 0},
		{"page=abc", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.PageRequestFromQuery(values, cfg)

			if req.Page != tt.wantPage || req.PageSize != tt.wantSize {
				t.Errorf("req = %+v, want page %d size %d", req, tt.wantPage, tt.wantSize)
			}
			if req.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", req.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		size      int
		wantPages int
	}{
		{"empty", 0, 20, 1},
		{"exact", 40, 20, 2},
		{"remainder", 41, 20, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := pagination.NewPageResult[int](nil, tt.total, 1, tt.size)
			if res.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", res.TotalPages, tt.wantPages)
			}
			if res.Data == nil {
				t.Error("Data should be an empty slice, not nil")
			}
		})
	}
}

func TestConfigFinalize(t *testing.T) {
	t.Setenv("TEST_PAGE_DEFAULT", "50")

	c := pagination.Config{}
	if err := c.Finalize(&pagination.Env{DefaultPageSize: "TEST_PAGE_DEFAULT", MaxPageSize: "TEST_PAGE_MAX"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if c.DefaultPageSize != 50 || c.MaxPageSize != 100 {
		t.Errorf("cfg = %+v, want default 50 max 100", c)
	}

	bad := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
	if err := bad.Finalize(nil); err == nil {
		t.Error("Finalize() should reject default above max")
	}
}
