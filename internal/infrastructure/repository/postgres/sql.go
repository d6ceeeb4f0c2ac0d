package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/week"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}

func int64PtrToNull(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullIntPtr(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int32)
	return &out
}

func intPtrToNull(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// dateArg binds a calendar date without a zone shift.
func dateArg(t time.Time) string {
	return t.Format(week.DateLayout)
}
