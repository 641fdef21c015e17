package msg

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestLocaleNumberFormatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  float64
		format NumberFormat
		locale language.Tag
		want   string
	}{
		{"integral number", 42, NumberFormat{Kind: KindNumber}, language.English, "42"},
		{"fractional number", 19.99, NumberFormat{Kind: KindNumber}, language.English, "19.99"},
		{"grouped number", 1234.5, NumberFormat{Kind: KindNumber}, language.English, "1,234.5"},
		{"german grouping", 1234.5, NumberFormat{Kind: KindNumber}, language.German, "1.234,5"},
		{"integer truncates", 19.99, NumberFormat{Kind: KindInteger}, language.English, "19"},
		{"integer truncates toward zero", -19.99, NumberFormat{Kind: KindInteger}, language.English, "-19"},
		{"grouped integer", 1234567, NumberFormat{Kind: KindInteger}, language.English, "1,234,567"},
		{"percent", 0.75, NumberFormat{Kind: KindPercent}, language.English, "75%"},
		{"percent truncates", 0.125, NumberFormat{Kind: KindPercent}, language.English, "12%"},
		{"percent ignores locale", 0.5, NumberFormat{Kind: KindPercent}, language.French, "50%"},
		{"unknown currency", 25, NumberFormat{Kind: KindCurrency, Currency: "ZZZ"}, language.English, "ZZZ 25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LocaleNumberFormatter{}.FormatNumber(tt.value, tt.format, tt.locale)
			if err != nil {
				t.Fatalf("FormatNumber error: %v", err)
			}

			if got != tt.want {
				t.Errorf("FormatNumber(%v, %v) = %q, want %q", tt.value, tt.format.Kind, got, tt.want)
			}
		})
	}
}

func TestLocaleNumberFormatter_Currency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     string
		value    float64
		contains []string
	}{
		{"USD", 19.99, []string{"$", "19.99"}},
		{"usd", 19.99, []string{"$", "19.99"}},
		{"EUR", 25, []string{"€", "25"}},
		{"JPY", 1000, []string{"1,000"}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			got, err := LocaleNumberFormatter{}.FormatNumber(
				tt.value,
				NumberFormat{Kind: KindCurrency, Currency: tt.code},
				language.English,
			)
			if err != nil {
				t.Fatalf("FormatNumber error: %v", err)
			}

			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("FormatNumber(%v %s) = %q, want it to contain %q", tt.value, tt.code, got, s)
				}
			}
		})
	}
}

func TestLocaleNumberFormatter_InvalidCurrency(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"", "EU", "EURO", "E1R", "€UR"} {
		t.Run(code, func(t *testing.T) {
			t.Parallel()

			_, err := LocaleNumberFormatter{}.FormatNumber(
				1, NumberFormat{Kind: KindCurrency, Currency: code}, language.English,
			)
			if !errors.Is(err, ErrInvalidCurrency) {
				t.Errorf("code %q: expected ErrInvalidCurrency, got %v", code, err)
			}
		})
	}
}

func TestLocaleNumberFormatter_Range(t *testing.T) {
	t.Parallel()

	_, err := LocaleNumberFormatter{}.FormatNumber(1e300, NumberFormat{Kind: KindInteger}, language.English)
	if !errors.Is(err, ErrNumberRange) {
		t.Errorf("expected ErrNumberRange, got %v", err)
	}
}
