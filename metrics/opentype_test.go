package metrics

import (
	"strings"
	"testing"

	invoicelayout "github.com/lvillar/invoicelayout"
)

func TestOpenTypeHeightBasics(t *testing.T) {
	m, err := NewOpenType()
	if err != nil {
		t.Fatalf("NewOpenType: %v", err)
	}
	font := invoicelayout.FontSpec{Family: "Helvetica", Size: 10}
	if h := m.Height("", font, 200); h != 0 {
		t.Errorf("Height(empty) = %v; want 0", h)
	}
	if h := m.Height("hello", font, 0); h != 0 {
		t.Errorf("Height(width=0) = %v; want 0", h)
	}
	if h := m.Height("hello", font, 200); h <= 0 {
		t.Errorf("Height(hello) = %v; want positive", h)
	}
}

func TestOpenTypeHeightDeterministic(t *testing.T) {
	m, err := NewOpenType()
	if err != nil {
		t.Fatalf("NewOpenType: %v", err)
	}
	font := invoicelayout.FontSpec{Family: "Helvetica", Size: 10.5}
	text := "Consulting services rendered during the month of March"
	a := m.Height(text, font, 330)
	b := m.Height(text, font, 330)
	if a != b {
		t.Fatalf("repeated measurement differs: %v vs %v", a, b)
	}
}

func TestOpenTypeHeightGrowsWithText(t *testing.T) {
	m, err := NewOpenType()
	if err != nil {
		t.Fatalf("NewOpenType: %v", err)
	}
	font := invoicelayout.FontSpec{Family: "Helvetica", Size: 10}
	short := "one line"
	long := strings.Repeat("many words that keep going ", 20)
	hs := m.Height(short, font, 200)
	hl := m.Height(long, font, 200)
	if hl <= hs {
		t.Fatalf("Height(long) = %v, Height(short) = %v; want longer text taller", hl, hs)
	}
}

func TestOpenTypeBoldFace(t *testing.T) {
	m, err := NewOpenType()
	if err != nil {
		t.Fatalf("NewOpenType: %v", err)
	}
	bold := invoicelayout.FontSpec{Family: "Helvetica", Style: "B", Size: 16}
	if h := m.Height("INVOICE", bold, 400); h <= 0 {
		t.Fatalf("bold Height = %v; want positive", h)
	}
}
