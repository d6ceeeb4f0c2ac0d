package staff

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/account"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
)

const (
	DefaultPrincipalCacheTTL = 30 * time.Second
	defaultMaxEntries        = 1024
)

// TokenVerifier resolves a bearer token to a staff principal.
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (account.Principal, error)
}

type cacheEntry struct {
	principal account.Principal
	expiresAt time.Time
}

// CachedVerifier keeps verified principals in memory for a short TTL so a
// burst of admin requests does not hit the session table each time.
type CachedVerifier struct {
	next       TokenVerifier
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	logger     *logging.Logger

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewCachedVerifier(next TokenVerifier, ttl time.Duration, logger *logging.Logger) *CachedVerifier {
	if ttl < 0 {
		ttl = 0
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CachedVerifier{
		next:       next,
		ttl:        ttl,
		maxEntries: defaultMaxEntries,
		now:        time.Now,
		logger:     logger,
		entries:    make(map[string]cacheEntry),
	}
}

func (v *CachedVerifier) VerifyAccessToken(ctx context.Context, token string) (account.Principal, error) {
	token = strings.TrimSpace(token)
	key := account.HashToken(token)
	if principal, ok := v.get(key); ok {
		return principal, nil
	}

	principal, err := v.next.VerifyAccessToken(ctx, token)
	if err != nil {
		return account.Principal{}, err
	}
	v.set(key, principal)
	return principal, nil
}

// Forget drops a token from the cache, e.g. on logout.
func (v *CachedVerifier) Forget(token string) {
	key := account.HashToken(strings.TrimSpace(token))
	v.mu.Lock()
	delete(v.entries, key)
	v.mu.Unlock()
}

func (v *CachedVerifier) get(key string) (account.Principal, bool) {
	now := v.now()

	v.mu.RLock()
	entry, ok := v.entries[key]
	v.mu.RUnlock()
	if !ok {
		return account.Principal{}, false
	}
	if !entry.expiresAt.After(now) {
		v.mu.Lock()
		delete(v.entries, key)
		v.mu.Unlock()
		return account.Principal{}, false
	}
	return entry.principal, true
}

func (v *CachedVerifier) set(key string, principal account.Principal) {
	if v.ttl <= 0 {
		return
	}
	now := v.now()

	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.entries) >= v.maxEntries {
		for k, e := range v.entries {
			if !e.expiresAt.After(now) {
				delete(v.entries, k)
			}
		}
		if len(v.entries) >= v.maxEntries {
			v.logger.Warn("principal cache full, evicting", "entries", len(v.entries))
			for k := range v.entries {
				delete(v.entries, k)
				break
			}
		}
	}
	v.entries[key] = cacheEntry{principal: principal, expiresAt: now.Add(v.ttl)}
}
