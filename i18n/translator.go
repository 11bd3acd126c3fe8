package i18n

// Translator retrieves localized messages for Violation kinds. data provides
// optional metadata to embed in the message (for example, "expected" or
// "key").
type Translator interface {
	Message(kind string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(kind string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch kind {
		case "wrong_type":
			return "型が不正です"
		case "missing_key":
			return "必須キーが不足しています"
		case "invalid_value":
			return "値が不正です"
		case "schema_mismatch":
			return "スキーマに一致しません"
		case "conversion_error":
			return "変換に失敗しました"
		}
	default: // "en"
		switch kind {
		case "wrong_type":
			return "wrong type"
		case "missing_key":
			return "required key missing"
		case "invalid_value":
			return "invalid value"
		case "schema_mismatch":
			return "schema mismatch"
		case "conversion_error":
			return "conversion failed"
		}
	}
	return kind
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given kind using the current Translator.
func T(kind string, data map[string]string) string { return currentTranslator.Message(kind, data) }
