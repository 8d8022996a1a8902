package bootstrap

import "testing"

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":       ":8080",
		"  ":     ":8080",
		"9090":   ":9090",
		":7000":  ":7000",
		" 3000 ": ":3000",
	}
	for input, want := range cases {
		if got := normalizeAddr(input); got != want {
			t.Fatalf("normalizeAddr(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBuildAPIInMemory(t *testing.T) {
	t.Setenv("JWT_SECRET", "bootstrap-secret")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("HTTP_PORT", "0")

	app, err := BuildAPI(t.Context())
	if err != nil {
		t.Fatalf("build api: %v", err)
	}
	if app.postgres != nil {
		t.Fatalf("expected no postgres handle without dsn")
	}
	if err := app.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestBuildAPIRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := BuildAPI(t.Context()); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}
