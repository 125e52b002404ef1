// Package i18n holds the localized bot texts.
package i18n

import (
	"fmt"
	"strings"
	"unicode"
)

// Lang is a supported interface language
type Lang string

const (
	Uzbek   Lang = "uz"
	Russian Lang = "ru"
	English Lang = "en"

	Default = Uzbek
)

// Languages in detection order
var Languages = []Lang{Uzbek, Russian, English}

// Key names a localized message
type Key string

// languageTags are matched against free text when picking a language
var languageTags = map[Lang][]string{
	Uzbek:   {"O'zbekcha", "🇺🇿"},
	Russian: {"Русский", "🇷🇺"},
	English: {"English", "🇬🇧"},
}

// Parse converts a stored language code, falling back to the default
func Parse(code string) Lang {
	l := Lang(code)
	if _, ok := translations[l]; ok {
		return l
	}
	return Default
}

// Text returns the message for key in lang.
// Missing entries fall back to Uzbek, then to the key itself.
func Text(lang Lang, key Key) string {
	if msg, ok := translations[lang][key]; ok {
		return msg
	}
	if msg, ok := translations[Default][key]; ok {
		return msg
	}
	return string(key)
}

// Format fills the placeholders of a message
func Format(lang Lang, key Key, args ...any) string {
	return fmt.Sprintf(Text(lang, key), args...)
}

// DetectLang finds a language tag inside text. The first match in
// Languages order wins.
func DetectLang(text string) (Lang, bool) {
	for _, l := range Languages {
		for _, tag := range languageTags[l] {
			if strings.Contains(text, tag) {
				return l, true
			}
		}
	}
	return Default, false
}

// LanguageLabel is the button text of a language
func LanguageLabel(l Lang) string {
	return Text(l, Key(l))
}

// Bare strips the leading emoji and spaces of a button label
func Bare(label string) string {
	return strings.TrimLeftFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
