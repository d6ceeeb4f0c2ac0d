package player

import "testing"

func TestSameFirstName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want bool
	}{
		{a: "Richard", b: "rick", want: true},
		{a: " Bill ", b: "William", want: true},
		{a: "Mike", b: "Mick", want: true},
		{a: "Chris", b: "Tina", want: true},
		{a: "Steve", b: "Stephen", want: true},
		{a: "Dana", b: "Dana", want: true},
		{a: "Richard", b: "Robert", want: false},
		{a: "Kevin", b: "Jason", want: false},
	}
	for _, tc := range cases {
		if got := SameFirstName(tc.a, tc.b); got != tc.want {
			t.Fatalf("SameFirstName(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNameVariantsIncludesFormalName(t *testing.T) {
	t.Parallel()

	variants := NameVariants("Bobby")
	for _, want := range []string{"bobby", "robert", "rob", "bob", "robbie"} {
		if _, ok := variants[want]; !ok {
			t.Fatalf("expected variant %q in %v", want, variants)
		}
	}
}
