package phrasetts

import (
	"regexp"
	"testing"
	"testing/quick"
)

var reSanitized = regexp.MustCompile(`^([a-zæøå0-9]+(_[a-zæøå0-9]+)*)?$`)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hej, Verden! 123", "hej_verden_123"},
		{"Hej", "hej"},
		{"Velkommen til Danmark", "velkommen_til_danmark"},
		{"  Rødgrød med fløde  ", "rødgrød_med_fløde"},
		{"ÆBLE på Ø", "æble_på_ø"},
		{"Hvad hedder du?", "hvad_hedder_du"},
		{"café crème", "caf_crme"},
		{"a - b", "a_b"},
		{"__snake__case__", "snake_case"},
		{"tab\tseparated", "tabseparated"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeFilenameIdempotent(t *testing.T) {
	f := func(s string) bool {
		once := SanitizeFilename(s)
		return SanitizeFilename(once) == once
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}

	for _, s := range []string{"Hej, Verden! 123", "a _ b", " _x_ ", "Æ Ø Å"} {
		if !f(s) {
			t.Errorf("SanitizeFilename not idempotent for %q", s)
		}
	}
}

func TestSanitizeFilenameAlphabet(t *testing.T) {
	f := func(s string) bool {
		return reSanitized.MatchString(SanitizeFilename(s))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
