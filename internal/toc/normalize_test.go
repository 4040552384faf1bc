package toc

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain ascii", "hello", "hello"},
		{"uppercase", "HELLO World", "hello world"},
		{"acute accent", "café", "cafe"},
		{"capital accented", "Éléphant", "elephant"},
		{"diaeresis", "naïve", "naive"},
		{"decomposed input", "cafe\u0301", "cafe"},
		{"cedilla and tilde", "Façade São", "facade sao"},
		{"non-latin kept", "Привет", "привет"},
		{"digits and punctuation", "Step 1: Set-up!", "step 1: set-up!"},
		{"spacing acute", "x´y", "xy"},
		{"circumflex", "a^b", "ab"},
		{"grave accent", "`quoted`", "quoted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "Café", "ÀÉÎÕÜ", "naïve résumé", "Straße", "İstanbul", "ǅemal", "a^b´c`d"}

	for _, s := range inputs {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", s, twice, once)
		}
	}
}

func TestNormalizeCaseDiacriticLaw(t *testing.T) {
	if Normalize("Café") != "cafe" || Normalize("cafe") != "cafe" {
		t.Errorf("Normalize(\"Café\") = %q, Normalize(\"cafe\") = %q, want both \"cafe\"",
			Normalize("Café"), Normalize("cafe"))
	}
}
