package mahabote

// Language selects which side of the bilingual data tables is rendered.
type Language string

const (
	LangMyanmar Language = "my"
	LangEnglish Language = "en"
)

// ParseLanguage falls back to Myanmar for anything unrecognized.
func ParseLanguage(s string) Language {
	if s == string(LangEnglish) {
		return LangEnglish
	}
	return LangMyanmar
}

// pick selects the variant for lang, falling back to the other variant when
// the requested one is absent.
func pick(mm, en string, lang Language) string {
	if lang == LangEnglish {
		if en != "" {
			return en
		}
		return mm
	}
	if mm != "" {
		return mm
	}
	return en
}

func pickList(mm, en []string, lang Language) []string {
	if lang == LangEnglish {
		if len(en) > 0 {
			return en
		}
		return mm
	}
	if len(mm) > 0 {
		return mm
	}
	return en
}
