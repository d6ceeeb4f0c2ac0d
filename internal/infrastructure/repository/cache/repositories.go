package cache

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/riskibarqy/street-hockey-league/internal/domain/division"
	"github.com/riskibarqy/street-hockey-league/internal/domain/season"
	"github.com/riskibarqy/street-hockey-league/internal/domain/team"
	basecache "github.com/riskibarqy/street-hockey-league/internal/platform/cache"
)

type found[T any] struct {
	value  T
	exists bool
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	items, err := basecache.Load(ctx, r.cache, "season:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	key := "season:id:" + strconv.FormatInt(seasonID, 10)
	v, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (found[season.Season], error) {
		item, exists, err := r.next.GetByID(ctx, seasonID)
		return found[season.Season]{value: item, exists: exists}, err
	})
	if err != nil {
		return season.Season{}, false, err
	}
	return v.value, v.exists, nil
}

func (r *SeasonRepository) ListByIDs(ctx context.Context, seasonIDs []int64) ([]season.Season, error) {
	return r.next.ListByIDs(ctx, seasonIDs)
}

func (r *SeasonRepository) Current(ctx context.Context) (season.Season, bool, error) {
	v, err := basecache.Load(ctx, r.cache, "season:current", func(ctx context.Context) (found[season.Season], error) {
		item, exists, err := r.next.Current(ctx)
		return found[season.Season]{value: item, exists: exists}, err
	})
	if err != nil {
		return season.Season{}, false, err
	}
	return v.value, v.exists, nil
}

func (r *SeasonRepository) CurrentForDivision(ctx context.Context, divisionID int64) (season.Season, bool, error) {
	key := "season:division:" + strconv.FormatInt(divisionID, 10)
	v, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (found[season.Season], error) {
		item, exists, err := r.next.CurrentForDivision(ctx, divisionID)
		return found[season.Season]{value: item, exists: exists}, err
	})
	if err != nil {
		return season.Season{}, false, err
	}
	return v.value, v.exists, nil
}

func (r *SeasonRepository) FindByYearType(ctx context.Context, year int, seasonType season.Type) (season.Season, bool, error) {
	return r.next.FindByYearType(ctx, year, seasonType)
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) (season.Season, error) {
	created, err := r.next.Create(ctx, s)
	if err != nil {
		return season.Season{}, err
	}
	r.Invalidate(ctx)
	return created, nil
}

func (r *SeasonRepository) SetCurrent(ctx context.Context, seasonID int64) error {
	if err := r.next.SetCurrent(ctx, seasonID); err != nil {
		return err
	}
	r.Invalidate(ctx)
	return nil
}

// Invalidate drops every cached season, e.g. after a rollover.
func (r *SeasonRepository) Invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, "season:")
}

type DivisionRepository struct {
	next  division.Repository
	cache *basecache.Store
}

func NewDivisionRepository(next division.Repository, cache *basecache.Store) *DivisionRepository {
	return &DivisionRepository{next: next, cache: cache}
}

func (r *DivisionRepository) List(ctx context.Context) ([]division.Division, error) {
	items, err := basecache.Load(ctx, r.cache, "division:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *DivisionRepository) GetByID(ctx context.Context, divisionID int64) (division.Division, bool, error) {
	key := "division:id:" + strconv.FormatInt(divisionID, 10)
	v, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (found[division.Division], error) {
		item, exists, err := r.next.GetByID(ctx, divisionID)
		return found[division.Division]{value: item, exists: exists}, err
	})
	if err != nil {
		return division.Division{}, false, err
	}
	return v.value, v.exists, nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := "team:id:" + strconv.FormatInt(teamID, 10)
	v, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (found[team.Team], error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		return found[team.Team]{value: item, exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return v.value, v.exists, nil
}

func (r *TeamRepository) ListByIDs(ctx context.Context, teamIDs []int64) ([]team.Team, error) {
	return r.next.ListByIDs(ctx, teamIDs)
}

// GetActiveByAccessCode is never cached so a deactivated team loses access
// immediately.
func (r *TeamRepository) GetActiveByAccessCode(ctx context.Context, code string) (team.Team, bool, error) {
	return r.next.GetActiveByAccessCode(ctx, code)
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, teamListKey(filter), func(ctx context.Context) ([]team.Team, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	created, err := r.next.Create(ctx, t)
	if err != nil {
		return team.Team{}, err
	}
	r.Invalidate(ctx)
	return created, nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	if err := r.next.Update(ctx, t); err != nil {
		return err
	}
	r.Invalidate(ctx)
	return nil
}

func (r *TeamRepository) Invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, "team:")
}

func teamListKey(filter team.ListFilter) string {
	return fmt.Sprintf("team:list:%s:%s:%t:%t:%t",
		optionalID(filter.SeasonID),
		optionalID(filter.DivisionID),
		filter.ActiveOnly,
		filter.CurrentSeasonOnly,
		filter.ChampionsOnly,
	)
}

func optionalID(id *int64) string {
	if id == nil {
		return "*"
	}
	return strconv.FormatInt(*id, 10)
}
