package division

import "testing"

func TestDisplayNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		number int
		long   string
		short  string
	}{
		{SundayD1, "Sunday D1", "D1"},
		{SundayD2, "Sunday D2", "D2"},
		{SundayDraft, "Sunday Draft", "Draft"},
		{MondayCoed, "Monday Coed", "Monday Coed"},
		{9, "Division 9", "Div 9"},
	}
	for _, tc := range cases {
		d := Division{ID: int64(tc.number), Number: tc.number}
		if got := d.DisplayName(); got != tc.long {
			t.Fatalf("DisplayName(%d) = %q, want %q", tc.number, got, tc.long)
		}
		if got := d.ShortName(); got != tc.short {
			t.Fatalf("ShortName(%d) = %q, want %q", tc.number, got, tc.short)
		}
	}
}
