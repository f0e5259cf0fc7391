package models

import "testing"

// TestLocalizedIn verifies language selection and the English fallback
// when the Arabic side is empty.
func TestLocalizedIn(t *testing.T) {
	tests := []struct {
		name string
		l    Localized
		lang Lang
		want string
	}{
		{name: "english requested", l: Localized{EN: "Windows", AR: "نوافذ"}, lang: LangEnglish, want: "Windows"},
		{name: "arabic requested", l: Localized{EN: "Windows", AR: "نوافذ"}, lang: LangArabic, want: "نوافذ"},
		{name: "arabic missing falls back", l: Localized{EN: "Windows"}, lang: LangArabic, want: "Windows"},
		{name: "both empty", l: Localized{}, lang: LangArabic, want: ""},
		{name: "unknown lang behaves as english", l: Localized{EN: "Doors", AR: "أبواب"}, lang: Lang("fr"), want: "Doors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.In(tt.lang); got != tt.want {
				t.Errorf("Localized%+v.In(%q) = %q, want %q", tt.l, tt.lang, got, tt.want)
			}
		})
	}
}

// TestParseLang verifies that only "ar" selects Arabic and everything else
// defaults to English.
func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
	}{
		{in: "ar", want: LangArabic},
		{in: "en", want: LangEnglish},
		{in: "", want: LangEnglish},
		{in: "AR", want: LangEnglish},
		{in: "fr", want: LangEnglish},
	}

	for _, tt := range tests {
		if got := ParseLang(tt.in); got != tt.want {
			t.Errorf("ParseLang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
