package sales

import (
	"net/url"
	"time"

	"github.com/ddbb-bakery/pos/pkg/query"
	"github.com/google/uuid"
)

// Filters narrows a sales listing.
type Filters struct {
	SessionID *uuid.UUID
	Since     *time.Time
	Before    *time.Time
}

// FiltersFromQuery reads session, since and before. Values that fail to
// parse are ignored. Times use RFC 3339 or a plain date.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("session"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			f.SessionID = &id
		}
	}
	f.Since = parseTime(values.Get("since"))
	f.Before = parseTime(values.Get("before"))

	return f
}

func (f Filters) Apply(qb *query.Builder) *query.Builder {
	if f.SessionID != nil {
		qb.WhereEquals("SessionID", *f.SessionID)
	}
	return qb.
		WhereSince("CreatedAt", f.Since).
		WhereBefore("CreatedAt", f.Before)
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
