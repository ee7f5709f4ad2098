package utils

import "testing"

func TestResolvePageDefaults(t *testing.T) {
	// 25 records at size 10 -> 3 pages
	cases := []struct {
		name     string
		raw      string
		wantPage int
	}{
		{"missing", "", 1},
		{"garbage", "abc", 1},
		{"float", "1.5", 1},
		{"first", "1", 1},
		{"middle", "2", 2},
		{"last", "3", 3},
		{"past the end", "999", 3},
		{"zero", "0", 3},
		{"negative", "-4", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolvePage(tc.raw, 25, 10)
			if got.Page != tc.wantPage {
				t.Fatalf("ResolvePage(%q): page = %d, want %d", tc.raw, got.Page, tc.wantPage)
			}
			if got.NumPages != 3 {
				t.Fatalf("ResolvePage(%q): numPages = %d, want 3", tc.raw, got.NumPages)
			}
		})
	}
}

func TestResolvePageEmptySet(t *testing.T) {
	got := ResolvePage("7", 0, 10)
	if got.Page != 1 || got.NumPages != 1 {
		t.Fatalf("empty set should resolve to one empty page, got %+v", got)
	}
	if got.Offset() != 0 {
		t.Fatalf("offset = %d, want 0", got.Offset())
	}
}

func TestPageInfoOffset(t *testing.T) {
	got := ResolvePage("3", 31, 10)
	if got.Offset() != 20 {
		t.Fatalf("offset = %d, want 20", got.Offset())
	}
	if got.NumPages != 4 {
		t.Fatalf("numPages = %d, want 4", got.NumPages)
	}
}
