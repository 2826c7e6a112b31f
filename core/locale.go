package core

import (
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_CD"
	ut "github.com/go-playground/universal-translator"
)

// DefaultLocale is used whenever a requested locale is not supported.
const DefaultLocale = "en"

var uni *ut.UniversalTranslator

func init() {
	_en := en.New()
	uni = ut.New(_en, _en, en_US.New(), en_GB.New(), fr.New(), fr_CD.New())
}

// NormalizeLocale turns BCP 47 style tags ("en-US") into CLDR ones ("en_US").
func NormalizeLocale(locale string) string {
	return strings.ReplaceAll(CleanString(locale), "-", "_")
}

// FindTranslator returns the translator of the first supported locale, falling back to DefaultLocale.
func FindTranslator(locales ...string) ut.Translator {
	normalized := make([]string, 0, len(locales))
	for _, l := range locales {
		if l = NormalizeLocale(l); l != "" {
			normalized = append(normalized, l)
		}
	}
	if trans, found := uni.FindTranslator(normalized...); found {
		return trans
	}
	return uni.GetFallback()
}

// HasLocale reports whether `locale` is supported as is.
func HasLocale(locale string) bool {
	_, found := uni.GetTranslator(NormalizeLocale(locale))
	return found
}
