package services

import "testing"

func TestNormalizeInterests(t *testing.T) {
	got := NormalizeInterests([]string{" AI", "ai", "AI ", "", "  ", "SaaS"})
	want := []string{"AI", "ai", "SaaS"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if items := NormalizeInterests(nil); items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}
