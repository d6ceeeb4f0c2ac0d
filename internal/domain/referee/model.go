package referee

import (
	"context"
	"strings"
)

// Ref officiates matchups. A ref may also be a player.
type Ref struct {
	ID        int64
	FirstName string
	LastName  string
	PlayerID  *int64
}

func (r Ref) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

type Repository interface {
	ListByIDs(ctx context.Context, refIDs []int64) ([]Ref, error)
}
