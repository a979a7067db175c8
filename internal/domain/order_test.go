package domain

import "testing"

func TestCabLabel(t *testing.T) {
	cases := []struct {
		name string
		cab  Cab
		want string
	}{
		{"named cab", Cab{ID: 4, Name: "electric-4"}, "electric-4"},
		{"unnamed cab falls back to id", Cab{ID: 4}, "4"},
		{"no cab", Cab{}, ""},
	}
	for _, tc := range cases {
		if got := tc.cab.Label(); got != tc.want {
			t.Errorf("%s: Label() = %q, want %q", tc.name, got, tc.want)
		}
	}
}
