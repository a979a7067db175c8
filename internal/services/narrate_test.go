package services

import (
	"ride-view-service/internal/domain"
	"testing"
)

func TestNarrateLegStatus(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{domain.LegStarted, "left behind"},
		{domain.LegCompleted, "visited"},
		{domain.LegAssigned, ""},
		{domain.LegPlanned, ""},
		{"SOMETHING_NEW", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NarrateLegStatus(tc.status); got != tc.want {
			t.Errorf("NarrateLegStatus(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
