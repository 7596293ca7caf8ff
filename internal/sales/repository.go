package sales

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ddbb-bakery/pos/internal/cart"
	"github.com/ddbb-bakery/pos/pkg/pagination"
	"github.com/ddbb-bakery/pos/pkg/query"
	"github.com/ddbb-bakery/pos/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "sales"),
		pagination: pagination,
	}
}

func (r *repo) Checkout(ctx context.Context, sessionID uuid.UUID, lines []cart.Line) (*Sale, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var (
		count int
		total int64
	)
	for _, l := range lines {
		count += l.Quantity
		total += l.Subtotal
	}

	encoded, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("encode lines: %w", err)
	}

	q := `
		INSERT INTO sales(id, session_id, lines, item_count, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, session_id, lines, item_count, total, created_at`

	args := []any{uuid.New(), sessionID, encoded, count, total}
	sale, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Sale, error) {
		return repository.QueryOne(ctx, tx, q, args, scanSale)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("sale recorded", "id", sale.ID, "session", sessionID, "items", sale.Count, "total", sale.Total)
	return &sale, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Sale], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort).OrderBy("", true)
	filters.Apply(qb)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count sales: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	sales, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSale)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}

	result := pagination.NewPageResult(sales, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Sale, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	sale, err := repository.QueryOne(ctx, r.db, q, args, scanSale)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &sale, nil
}
