package sales

import (
	"encoding/json"
	"fmt"

	"github.com/ddbb-bakery/pos/pkg/query"
	"github.com/ddbb-bakery/pos/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "sales", "s").
	Project("id", "ID").
	Project("session_id", "SessionID").
	Project("lines", "Lines").
	Project("item_count", "Count").
	Project("total", "Total").
	Project("created_at", "CreatedAt")

const defaultSort = "CreatedAt"

func scanSale(s repository.Scanner) (Sale, error) {
	var (
		sale  Sale
		lines []byte
	)
	if err := s.Scan(&sale.ID, &sale.SessionID, &lines, &sale.Count, &sale.Total, &sale.CreatedAt); err != nil {
		return sale, err
	}
	if err := json.Unmarshal(lines, &sale.Lines); err != nil {
		return sale, fmt.Errorf("decode lines: %w", err)
	}
	return sale, nil
}
