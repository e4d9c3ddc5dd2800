// Package i18n resolves the storefront's trilingual fields. Entities carry
// one field per language, named by suffix (NameFr, NameEn, NameAr); French is
// the hard fallback for anything untranslated.
package i18n

import "strings"

type Language string

const (
	French  Language = "fr"
	English Language = "en"
	Arabic  Language = "ar"
)

// Direction of rendered text for a language.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
)

// ParseLanguage normalises a raw language code. Anything unknown falls back
// to French, the shop's first language.
func ParseLanguage(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en":
		return English
	case "ar":
		return Arabic
	default:
		return French
	}
}

// Direction returns the text direction the language renders in.
func (l Language) Direction() Direction {
	if l == Arabic {
		return RightToLeft
	}
	return LeftToRight
}

// Localized is the per-language value set behind one suffixed field group.
type Localized struct {
	Fr string
	En string
	Ar string
}

// Resolve picks the best string for the requested language: the requested
// field if non-empty, otherwise the French field, otherwise "". The French
// fallback is unconditional, so an Arabic or English shopper sees French for
// any untranslated field.
func (v Localized) Resolve(lang Language) string {
	var s string
	switch lang {
	case English:
		s = v.En
	case Arabic:
		s = v.Ar
	default:
		s = v.Fr
	}
	if s == "" {
		return v.Fr
	}
	return s
}
