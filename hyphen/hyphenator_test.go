package hyphen

import (
	"reflect"
	"testing"
)

func TestHyphenateS1(t *testing.T) {
	h, err := New([]string{".hy3p"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := h.Hyphenate("hyphenation")
	want := []byte{0, 3, 0, 0, 0, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Hyphenate(\"hyphenation\") = %v, want %v", got, want)
	}
	points := h.Points("hyphenation")
	if !reflect.DeepEqual(points, []int{1}) {
		t.Errorf("Points = %v, want [1]", points)
	}
}

func TestHyphenateS4(t *testing.T) {
	// "1a" fires before every 'a'. In "aa" the only internal boundary sits
	// between the two letters, where the trailing match's leading-1
	// outweighs the leading match's trailing-0.
	h, err := New([]string{"1a"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := h.Hyphenate("aa")
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Hyphenate(\"aa\") = %v, want [1]", got)
	}
	if pts := h.Points("aa"); !reflect.DeepEqual(pts, []int{0}) {
		t.Errorf("Points(\"aa\") = %v, want [0]", pts)
	}
}

func TestHyphenateS5(t *testing.T) {
	h, err := New([]string{".a1b"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := h.Hyphenate("ab")
	want := []byte{1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Hyphenate(\"ab\") = %v, want %v", got, want)
	}
	if pts := h.Points("ab"); !reflect.DeepEqual(pts, []int{0}) {
		t.Errorf("Points(\"ab\") = %v, want [0]", pts)
	}
}

func TestHyphenateS6NoMatchingPatterns(t *testing.T) {
	h, err := New([]string{"9e5q7z1a8", "4o6e3e5nw1u0i9e0", "6c0f1l5xb6o7"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := h.Hyphenate("ulnrqvjd")
	want := make([]byte, 7)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Hyphenate(\"ulnrqvjd\") = %v, want all zero", got)
	}
}

func TestHyphenateEmptyPatternSet(t *testing.T) {
	h, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, word := range []string{"hyphenation", "a", "ab", ""} {
		got := h.Hyphenate(word)
		for _, v := range got {
			if v != 0 {
				t.Errorf("Hyphenate(%q) with no patterns must be all zero, got %v", word, got)
			}
		}
	}
}

func TestHyphenateShortWordsAreEmpty(t *testing.T) {
	h, err := New([]string{".hy3p"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, word := range []string{"", "a"} {
		if got := h.Hyphenate(word); len(got) != 0 {
			t.Errorf("Hyphenate(%q) = %v, want empty", word, got)
		}
	}
}

func TestHyphenateLengthInvariant(t *testing.T) {
	h, err := New([]string{".hy3p", "1ba", "2bb"}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, word := range []string{"ab", "hyphenation", "bb", "abba"} {
		got := h.Hyphenate(word)
		wantLen := len([]rune(word)) - 1
		if wantLen < 0 {
			wantLen = 0
		}
		if len(got) != wantLen {
			t.Errorf("len(Hyphenate(%q)) = %d, want %d", word, len(got), wantLen)
		}
		for _, p := range h.Points(word) {
			if p < 0 || p > len([]rune(word))-2 {
				t.Errorf("Points(%q) contains out-of-range point %d", word, p)
			}
		}
	}
}

func TestHyphenateIsDeterministic(t *testing.T) {
	h, err := New([]string{".hy3p", "1ba", "2bb", "3ence."}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := h.Hyphenate("hyphenation")
	for i := 0; i < 5; i++ {
		if got := h.Hyphenate("hyphenation"); !reflect.DeepEqual(got, first) {
			t.Fatalf("Hyphenate is not deterministic: %v vs %v", got, first)
		}
	}
}

func TestExceptionOverridesPatterns(t *testing.T) {
	h, err := New([]string{"1i1v"}, []string{"uni-ver-sity"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// "1i1v" alone would allow breaks at 1 and 2; the exception's 8 at slot 1
	// outweighs it, leaving only uni-ver-sity's breaks.
	pts := h.Points("university")
	if !reflect.DeepEqual(pts, []int{2, 5}) {
		t.Fatalf("Points(\"university\") = %v, want [2 5]", pts)
	}
}

func TestMinLeftMinRightSuppressesEdgePoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinLeft = 2
	cfg.MinRight = 2
	h, err := NewWithConfig([]string{"1a", "1b", "1c", "1d", "1e", "1f", "1g", "1h"}, nil, cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	pts := h.Points("abcdefgh")
	for _, p := range pts {
		if p+1 < 2 || len("abcdefgh")-(p+1) < 2 {
			t.Errorf("Points() leaked an edge point: %d", p)
		}
	}
}
