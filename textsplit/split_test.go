package textsplit_test

import (
	"strings"
	"testing"

	invoicelayout "github.com/lvillar/invoicelayout"
	"github.com/lvillar/invoicelayout/metrics"
	"github.com/lvillar/invoicelayout/textsplit"
)

var testFont = invoicelayout.FontSpec{Family: "Helvetica", Size: 10}

// m wraps at 10 runes per line with 14pt lines when width is 60.
var m = metrics.NewFixed(6, 14)

func TestSplitEmptyText(t *testing.T) {
	fit, rem := textsplit.Split(m, "", testFont, 60, 14)
	if fit != "" || rem != "" {
		t.Fatalf("Split(%q) = %q, %q; want empty, empty", "", fit, rem)
	}
}

func TestSplitNoSplitNeeded(t *testing.T) {
	text := "hello world"
	fit, rem := textsplit.Split(m, text, testFont, 60, 3*14)
	if fit != text || rem != "" {
		t.Fatalf("Split(%q) = %q, %q; want full text, empty", text, fit, rem)
	}
}

func TestSplitAtWordBoundary(t *testing.T) {
	text := "aaaa bbbb cccc dddd"
	fit, rem := textsplit.Split(m, text, testFont, 60, 14)
	if fit != "aaaa bbbb" {
		t.Errorf("fitting = %q; want %q", fit, "aaaa bbbb")
	}
	if rem != "cccc dddd" {
		t.Errorf("remainder = %q; want %q", rem, "cccc dddd")
	}
	if h := m.Height(fit, testFont, 60); h > 14 {
		t.Errorf("fitting height = %v; want <= 14", h)
	}
}

func TestSplitLosslessReconstruction(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog again and again",
		"one\ntwo three four five six seven eight nine ten",
		"alpha beta gamma delta epsilon zeta eta theta iota kappa",
	}
	for _, text := range texts {
		rest := text
		var parts []string
		for rest != "" {
			fit, rem := textsplit.Split(m, rest, testFont, 60, 14)
			if fit == "" && rem == rest {
				t.Fatalf("no progress splitting %q", rest)
			}
			parts = append(parts, fit)
			rest = rem
		}
		// Each split elides exactly one boundary whitespace character.
		got := strings.Join(parts, " ")
		want := strings.ReplaceAll(text, "\n", " ")
		if got != want {
			t.Errorf("reconstruction = %q; want %q", got, want)
		}
	}
}

func TestSplitNeverBreaksWords(t *testing.T) {
	text := "lorem ipsum dolor sit amet consectetur adipiscing elit sed do"
	words := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		words[w] = true
	}
	rest := text
	for rest != "" {
		fit, rem := textsplit.Split(m, rest, testFont, 60, 14)
		for _, w := range strings.Fields(fit) {
			if !words[w] {
				t.Fatalf("fragment %q in %q is not a word of the original", w, fit)
			}
		}
		rest = rem
	}
}

func TestSplitForcedProgressOnLongWord(t *testing.T) {
	text := "abcdefghijklmnopqrst" // one word, two wrapped lines
	fit, rem := textsplit.Split(m, text, testFont, 60, 14)
	if fit == "" {
		t.Fatal("forced split consumed nothing")
	}
	if fit+rem != text {
		t.Errorf("forced split lost characters: %q + %q != %q", fit, rem, text)
	}
	if h := m.Height(fit, testFont, 60); h > 14 {
		t.Errorf("forced fitting height = %v; want <= 14", h)
	}
}

func TestSplitSingleRuneBudget(t *testing.T) {
	// One rune per line and a one-line budget: still at least one rune
	// of progress per call.
	fit, rem := textsplit.Split(m, "abc", testFont, 6, 14)
	if fit != "a" || rem != "bc" {
		t.Fatalf("Split = %q, %q; want %q, %q", fit, rem, "a", "bc")
	}
}

func TestSplitRemainderHadToExist(t *testing.T) {
	// Whenever a remainder comes back, the original text must have
	// exceeded the budget.
	texts := []string{"aaaa bbbb cccc", "hello", "x y z w v u t s r q p o"}
	for _, text := range texts {
		fit, rem := textsplit.Split(m, text, testFont, 60, 28)
		if rem != "" && m.Height(text, testFont, 60) <= 28 {
			t.Errorf("Split(%q) returned remainder %q although text fit", text, rem)
		}
		if h := m.Height(fit, testFont, 60); h > 28 {
			t.Errorf("Split(%q) fitting %q measures %v > 28", text, fit, h)
		}
	}
}
