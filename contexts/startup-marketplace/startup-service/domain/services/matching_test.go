package services

import "testing"

func TestSharesTag(t *testing.T) {
	cases := []struct {
		name       string
		categories []string
		interests  []string
		want       bool
	}{
		{name: "single overlap", categories: []string{"AI"}, interests: []string{"AI", "SaaS"}, want: true},
		{name: "no overlap", categories: []string{"FinTech"}, interests: []string{"AI", "SaaS"}, want: false},
		{name: "partial overlap", categories: []string{"FinTech", "SaaS"}, interests: []string{"AI", "SaaS"}, want: true},
		{name: "case sensitive", categories: []string{"ai"}, interests: []string{"AI"}, want: false},
		{name: "empty interests", categories: []string{"AI"}, interests: nil, want: false},
		{name: "empty categories", categories: nil, interests: []string{"AI"}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SharesTag(tc.categories, tc.interests); got != tc.want {
				t.Fatalf("SharesTag(%v, %v) = %v, want %v", tc.categories, tc.interests, got, tc.want)
			}
		})
	}
}
