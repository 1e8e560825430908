package i18n_test

import (
	"testing"

	"github.com/vojtechokenka/nokturo/internal/i18n"
)

// TestLanguages verifies the shipped locale set
func TestLanguages(t *testing.T) {
	langs := i18n.Languages()
	found := map[string]bool{}
	for _, l := range langs {
		found[l] = true
	}
	if !found["en"] || !found["cs"] {
		t.Errorf("Expected en and cs locales, got %v", langs)
	}
}

// TestTranslationLookup verifies direct hits per language
func TestTranslationLookup(t *testing.T) {
	en := i18n.T("en", "description.saved")
	cs := i18n.T("cs", "description.saved")

	if en == "description.saved" {
		t.Error("Expected an English translation, got the key back")
	}
	if cs == "description.saved" {
		t.Error("Expected a Czech translation, got the key back")
	}
	if en == cs {
		t.Error("Expected the Czech catalog to differ from English")
	}
}

// TestFallbackToEnglish verifies unknown languages use the English catalog
func TestFallbackToEnglish(t *testing.T) {
	if got, want := i18n.T("de", "description.saved"), i18n.T("en", "description.saved"); got != want {
		t.Errorf("Expected the English fallback %q, got %q", want, got)
	}
}

// TestFallbackToKey verifies unknown keys come back verbatim
func TestFallbackToKey(t *testing.T) {
	if got := i18n.T("en", "does.not.exist"); got != "does.not.exist" {
		t.Errorf("Expected the key verbatim, got %q", got)
	}
	if got := i18n.T("xx", "does.not.exist"); got != "does.not.exist" {
		t.Errorf("Expected the key verbatim for unknown language too, got %q", got)
	}
}
