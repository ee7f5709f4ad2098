package utils

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jane@EXAMPLE.COM", "Jane@example.com"},
		{"  jane@Example.com  ", "jane@example.com"},
		{"UPPER@lower.org", "UPPER@lower.org"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
		{"a@b@C.COM", "a@b@c.com"},
	}
	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
