package staff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/account"
	"github.com/riskibarqy/street-hockey-league/internal/platform/logging"
	"golang.org/x/crypto/bcrypt"
)

type countingVerifier struct {
	calls int
	err   error
}

func (v *countingVerifier) VerifyAccessToken(_ context.Context, token string) (account.Principal, error) {
	v.calls++
	if v.err != nil {
		return account.Principal{}, v.err
	}
	return account.Principal{UserID: 7, Username: "goalie-" + token}, nil
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse" {
		t.Fatalf("hash must not equal the password")
	}
	if err := hasher.Compare(hash, "correct horse"); err != nil {
		t.Fatalf("compare matching password: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	t.Parallel()

	if got := NewBcryptHasher(0).cost; got != bcrypt.DefaultCost {
		t.Fatalf("cost=%d, want %d", got, bcrypt.DefaultCost)
	}
}

func TestCachedVerifier_CachesUntilExpiry(t *testing.T) {
	t.Parallel()

	next := &countingVerifier{}
	verifier := NewCachedVerifier(next, time.Minute, logging.NewNop())
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	verifier.now = func() time.Time { return now }

	for range 3 {
		principal, err := verifier.VerifyAccessToken(context.Background(), " abc ")
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if principal.Username != "goalie-abc" {
			t.Fatalf("unexpected principal: %+v", principal)
		}
	}
	if next.calls != 1 {
		t.Fatalf("next called %d times, want 1", next.calls)
	}

	now = now.Add(2 * time.Minute)
	if _, err := verifier.VerifyAccessToken(context.Background(), "abc"); err != nil {
		t.Fatalf("verify after expiry: %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("next called %d times after expiry, want 2", next.calls)
	}
}

func TestCachedVerifier_ForgetAndErrors(t *testing.T) {
	t.Parallel()

	next := &countingVerifier{}
	verifier := NewCachedVerifier(next, time.Minute, logging.NewNop())

	if _, err := verifier.VerifyAccessToken(context.Background(), "abc"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	verifier.Forget("abc")

	next.err = errors.New("session expired")
	if _, err := verifier.VerifyAccessToken(context.Background(), "abc"); err == nil {
		t.Fatalf("expected error after forget")
	}
	if next.calls != 2 {
		t.Fatalf("next called %d times, want 2", next.calls)
	}
}
