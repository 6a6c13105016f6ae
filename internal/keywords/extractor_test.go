package keywords

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractKeepsOrderAndLimit(t *testing.T) {
	e := New()
	got := e.Extract("My work and my family, and also school and money worries")
	want := []string{"work", "family", "school"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func TestExtractDeduplicatesCaseInsensitive(t *testing.T) {
	e := New()
	got := e.Extract("Work is hard and my WORK is boring")
	want := []string{"work"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	e := New()
	text := "My sister called about the wedding plans and the venue"
	first := e.Extract(text)
	second := e.Extract(text)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("extract is not idempotent (-first +second):\n%s", diff)
	}
}

func TestExtractEmpty(t *testing.T) {
	e := New()
	for _, in := range []string{"", "   ", "I am ok", "!!!"} {
		got := e.Extract(in)
		if got == nil || len(got) != 0 {
			t.Fatalf("Extract(%q) = %#v, want empty non-nil slice", in, got)
		}
	}
}

func TestWithStopWordsExcludesMoodWords(t *testing.T) {
	e := New(WithStopWords("anxious", "panic attack"))
	got := e.Extract("anxious about the panic attack at the office")
	// phrases are split, so "attack" is excluded too
	want := []string{"office"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func TestTermsReturnsAllCandidates(t *testing.T) {
	e := New()
	got := e.Terms("We had coffee with friends and dinner with my parents after the movies")
	want := []string{"coffee", "friends", "dinner", "parents", "movies"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected terms (-want +got):\n%s", diff)
	}
}

func TestExtractKeepsNounsOnly(t *testing.T) {
	e := New()
	got := e.Extract("My boss yelled at me at work about the deadline")
	want := []string{"boss", "work", "deadline"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func TestExtractSkipsVerbsAdverbsAndAdjectives(t *testing.T) {
	e := New()
	cases := map[string][]string{
		"I was running quickly and yelling loudly at everyone":    {"running", "quickly", "yelling", "loudly"},
		"I feel devastated and heartbroken, everything is ruined": {"devastated", "heartbroken", "ruined"},
	}
	for text, banned := range cases {
		got := e.Extract(text)
		for _, w := range banned {
			if slices.Contains(got, w) {
				t.Fatalf("Extract(%q) = %v, should not contain %q", text, got, w)
			}
		}
	}
}
