package compose

import (
	"strings"
	"testing"
)

func TestResolveItemText(t *testing.T) {
	long := strings.Repeat("very long description text ", 4)
	cases := []struct {
		name        string
		title, desc string
		wantTitle   string
		wantBody    string
	}{
		{"both distinct", "Consulting", "March retainer work", "Consulting", "March retainer work"},
		{"title only", "Consulting", "", "Consulting", ""},
		{"duplicate description", "Consulting", "Consulting", "Consulting", ""},
		{"duplicate ignoring case", "Consulting", "CONSULTING", "Consulting", ""},
		{"short description promoted", "", "Server hosting", "Server hosting", ""},
		{"long description stays body", "", long, "", strings.TrimSpace(long)},
		{"both empty", "", "", "", ""},
		{"whitespace trimmed", "  Consulting  ", "  ", "Consulting", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gotTitle, gotBody := ResolveItemText(c.title, c.desc, 32)
			if gotTitle != c.wantTitle || gotBody != c.wantBody {
				t.Fatalf("ResolveItemText(%q, %q) = %q, %q; want %q, %q",
					c.title, c.desc, gotTitle, gotBody, c.wantTitle, c.wantBody)
			}
		})
	}
}

func TestResolveItemTextShortLimitIsRunes(t *testing.T) {
	// 20 runes but well over 20 bytes.
	desc := strings.Repeat("ü", 20)
	gotTitle, gotBody := ResolveItemText("", desc, 20)
	if gotTitle != desc || gotBody != "" {
		t.Fatalf("rune-limit promotion failed: %q, %q", gotTitle, gotBody)
	}
}

func TestResolveCombined(t *testing.T) {
	long := strings.Repeat("all of the words of a very long single field ", 3)
	cases := []struct {
		name      string
		combined  string
		wantTitle string
		wantBody  string
	}{
		{"en dash separator", "Hosting – monthly fee for March", "Hosting", "monthly fee for March"},
		{"hyphen separator", "Hosting - monthly fee for March", "Hosting", "monthly fee for March"},
		{"no separator short", "Hosting", "Hosting", ""},
		{"no separator long", long, "", strings.TrimSpace(long)},
		{"head too long falls back", long + " – tail", "", strings.TrimSpace(long + " – tail")},
		{"empty", "   ", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gotTitle, gotBody := ResolveCombined(c.combined, 32)
			if gotTitle != c.wantTitle || gotBody != c.wantBody {
				t.Fatalf("ResolveCombined(%q) = %q, %q; want %q, %q",
					c.combined, gotTitle, gotBody, c.wantTitle, c.wantBody)
			}
		})
	}
}
