package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "kind" for invalid_type).
type Translator interface {
	Message(code string, data map[string]string) string
}

var catalog = map[string]map[string]string{
	"en": {
		"required":     "field is required",
		"invalid_type": "cannot interpret value as {kind}",
		"invalid_enum": "cannot interpret value as enum",
		"out_of_range": "value out of range",
		"unknown_key":  "unknown field",
		"schema":       "no schema to validate against",

		"dependency_unavailable": "dependency unavailable",
	},
	"ja": {
		"required":     "必須フィールドです",
		"invalid_type": "値を{kind}として解釈できません",
		"invalid_enum": "値を列挙値として解釈できません",
		"out_of_range": "値が範囲外です",
		"unknown_key":  "未知のフィールドです",
		"schema":       "検証するスキーマがありません",

		"dependency_unavailable": "依存先サービスが利用できません",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := catalog[t.lang][code]
	if !ok {
		msg, ok = catalog["en"][code]
	}
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var (
	mu                           sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := catalog[lang]; !ok {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
