package services

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

// DetectLanguage guesses the language of a piece of content and
// returns its ISO 639-1 code, or an empty string when unsure.
func DetectLanguage(content string) string {
	if len(content) == 0 {
		return ""
	}

	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			WithLowAccuracyMode().
			Build()
	})

	if language, ok := languageDetector.DetectLanguageOf(content); ok {
		return language.IsoCode639_1().String()
	}

	return ""
}
