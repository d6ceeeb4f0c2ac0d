package division

import "context"

type Repository interface {
	// List returns divisions ordered by number.
	List(ctx context.Context) ([]Division, error)
	GetByID(ctx context.Context, divisionID int64) (Division, bool, error)
}
