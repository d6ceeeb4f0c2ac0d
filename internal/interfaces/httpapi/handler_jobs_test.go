package httpapi

import (
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/street-hockey-league/internal/usecase"
)

func TestDeactivationYears_ZeroIsNotDefaulted(t *testing.T) {
	cases := []struct {
		body string
		want int
	}{
		{body: `{}`, want: usecase.DefaultDeactivationYears},
		{body: `{"years":0}`, want: 0},
		{body: `{"years":5,"dry_run":true}`, want: 5},
	}

	for _, tc := range cases {
		var req deactivationRequest
		if err := sonic.Unmarshal([]byte(tc.body), &req); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.body, err)
		}
		if got := deactivationYears(req.Years); got != tc.want {
			t.Fatalf("years for %s = %d, want %d", tc.body, got, tc.want)
		}
	}
}
