package database

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jmoiron/sqlx"
)

// NamedSelect expands :name parameters from arg, rebinds for the engine
// and scans all rows into dest.
func NamedSelect(ctx context.Context, e sqlx.ExtContext, dest interface{}, query string, arg interface{}) error {
	q, args, err := sqlx.Named(query, arg)
	if err != nil {
		return err
	}
	return sqlx.SelectContext(ctx, e, dest, e.Rebind(q), args...)
}

// NamedCount runs a named SELECT count(*) query.
func NamedCount(ctx context.Context, e sqlx.ExtContext, query string, arg interface{}) (int, error) {
	q, args, err := sqlx.Named(query, arg)
	if err != nil {
		return 0, err
	}
	var count int
	if err := sqlx.GetContext(ctx, e, &count, e.Rebind(q), args...); err != nil {
		return 0, err
	}
	return count, nil
}

// Where joins conditions with AND, returning "" when there are none.
func Where(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

// Page returns a LIMIT/OFFSET clause, or "" when pageSize is not positive.
// Pages are 1-based. Pages past the largest representable offset are
// clamped to it.
func Page(page, pageSize int) string {
	if pageSize <= 0 {
		return ""
	}
	if page < 1 {
		page = 1
	}
	skipped := int64(page) - 1
	if maxSkipped := math.MaxInt64 / int64(pageSize); skipped > maxSkipped {
		skipped = maxSkipped
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, skipped*int64(pageSize))
}

// LikeEscape goes after a LIKE whose pattern came from Contains.
const LikeEscape = ` ESCAPE '\'`

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains turns user input into a LIKE pattern matching it anywhere, with
// the wildcards % and _ taken literally.
func Contains(s string) string {
	return "%" + likeReplacer.Replace(s) + "%"
}

// Direction whitelists a sort direction.
func Direction(order string) string {
	if strings.EqualFold(order, "desc") {
		return " DESC"
	}
	return " ASC"
}
