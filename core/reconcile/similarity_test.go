package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Keynote_Talk.mp4", "keynote talk"},
		{"keynote-talk.final.MOV", "keynote talk final"},
		{"  Opening   Session .pptx", "opening session"},
		{".hidden", "hidden"},
		{"archive.tar.gz", "archive tar"},
		{"no_extension", "no extension"},
		{"sub/dir/Panel_2.mp4", "panel 2"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Keynote_Talk.mp4", "A.B.C", "--x__y..z", "Panel 2", ".hidden", "  spaced  out  "}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), in)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"separators and case collapse", "keynote_talk.mp4", "Keynote Talk.mp4", 1.0},
		{"unrelated", "random_noise.mp4", "keynote_talk.mp4", 0.25},
		{"shifted", "abcd", "bcde", 0.75},
		{"suffix added", "Opening Keynote.mp4", "opening-keynote-final.mp4", 0.8333333333333334},
		{"both empty", "", "", 1.0},
		{"one empty", "panel.mp4", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Identity(t *testing.T) {
	for _, s := range []string{"a", "Keynote.mp4", "Closing Remarks (v2).mov", "ünïcödé_名前.mp4"} {
		assert.Equal(t, 1.0, Similarity(s, s), s)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	names := []string{
		"keynote_talk.mp4", "Keynote Talk.mp4", "closing.mp4", "random_noise.mp4",
		"abcabcab", "bcabca", "session one", "session 1", "panel-discussion-final.pptx",
		"", "x", "aaaaab", "baaaaa",
	}
	for _, a := range names {
		for _, b := range names {
			assert.Equal(t, Similarity(a, b), Similarity(b, a), "%q vs %q", a, b)
		}
	}
}

func TestSimilarity_Range(t *testing.T) {
	names := []string{"a", "ab", "ba", "keynote", "notekey", "", "q_r.s"}
	for _, a := range names {
		for _, b := range names {
			s := Similarity(a, b)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}
