package obs

import "testing"

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"":                     "/",
		"/":                    "/",
		"/metrics":             "/metrics",
		"/api/users":           "/api/users",
		"/api/users/me":        "/api/users/me",
		"/api/login":           "/api/login",
		"/api/login?next=home": "/api/login",
		"/api/users/someone":   "other",
		"/favicon.ico":         "other",
	}
	for input, expected := range cases {
		if got := CanonicalPath(input); got != expected {
			t.Fatalf("CanonicalPath(%q)=%q, want %q", input, got, expected)
		}
	}
}
