package assessment

import (
	"math"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello, World!", "hello world"},
		{"  It's   fine.  ", "it's fine"},
		{"", ""},
		{"ONE two THREE", "one two three"},
	}
	for _, c := range cases {
		if got := NormalizeText(c.in); got != c.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSimilarityRatioIdentical(t *testing.T) {
	s := "The weather in the south is warm and sunny"
	if got := SimilarityRatio(s, s); got != 1.0 {
		t.Errorf("identical strings ratio = %v, want 1.0", got)
	}
	// 标点与大小写不影响
	if got := SimilarityRatio("Hello, world!", "hello world"); got != 1.0 {
		t.Errorf("normalized-identical ratio = %v, want 1.0", got)
	}
}

func TestSimilarityRatioEmpty(t *testing.T) {
	if got := SimilarityRatio("expected sentence", ""); got != 0.0 {
		t.Errorf("empty answer ratio = %v, want 0.0", got)
	}
	if got := SimilarityRatio("", ""); got != 1.0 {
		t.Errorf("both empty ratio = %v, want 1.0", got)
	}
}

func TestSimilarityRatioPartial(t *testing.T) {
	got := SimilarityRatio("the cat sat on the mat", "the cat sat")
	if got <= 0.5 || got >= 1.0 {
		t.Errorf("partial repetition ratio = %v, want in (0.5, 1.0)", got)
	}
}

func TestWordOverlap(t *testing.T) {
	cases := []struct {
		expected, actual string
		want             float64
	}{
		{"the cat sat", "the cat sat", 1.0},
		{"the cat sat", "", 0.0},
		{"one two three four", "one three", 0.5},
		{"", "anything", 1.0},
	}
	for _, c := range cases {
		if got := WordOverlap(c.expected, c.actual); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("WordOverlap(%q, %q) = %v, want %v", c.expected, c.actual, got, c.want)
		}
	}
}

func TestListeningLevelBands(t *testing.T) {
	cases := []struct {
		name       string
		similarity float64
		overlap    float64
		want       Level
	}{
		{"perfect", 1.0, 1.0, LevelC1},
		{"boundary 0.9", 0.9, 0.0, LevelC1},
		{"just below 0.9", 0.89, 0.0, LevelB2},
		{"boundary 0.75", 0.75, 0.0, LevelB2},
		{"mid similarity", 0.5, 0.0, LevelB1},
		{"overlap rescues B1", 0.2, 0.6, LevelB1},
		{"boundary 0.3", 0.3, 0.0, LevelA2},
		{"overlap rescues A2", 0.1, 0.3, LevelA2},
		{"nothing", 0.0, 0.0, LevelA1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ListeningLevel(c.similarity, c.overlap); got != c.want {
				t.Errorf("ListeningLevel(%v, %v) = %s, want %s", c.similarity, c.overlap, got, c.want)
			}
		})
	}
}
