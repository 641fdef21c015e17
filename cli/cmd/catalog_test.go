package cmd

import (
	"errors"
	"testing"

	"github.com/ardnew/msgfmt/catalog"
	"github.com/ardnew/msgfmt/msg"
)

func testCatalogDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	writeFile(t, dir, "en.yaml", ""+
		"greeting: Hello, {name}!\n"+
		"cart:\n"+
		"  items: '{count, plural, one{# item} other{# items}}'\n")
	writeFile(t, dir, "de.toml", "greeting = \"Hallo, {name}!\"\n")

	return dir
}

func TestCatalogRender_Run(t *testing.T) {
	t.Parallel()

	dir := testCatalogDir(t)

	tests := []struct {
		name     string
		locale   string
		key      string
		bindings Bindings
		want     string
	}{
		{
			name:     "exact",
			locale:   "en",
			key:      "greeting",
			bindings: Bindings{Param: map[string]string{"name": "Ada"}},
			want:     "Hello, Ada!\n",
		},
		{
			name:     "regional",
			locale:   "de-CH",
			key:      "greeting",
			bindings: Bindings{Param: map[string]string{"name": "Ada"}},
			want:     "Hallo, Ada!\n",
		},
		{
			name:     "fallback",
			locale:   "de",
			key:      "cart.items",
			bindings: Bindings{Int: map[string]int64{"count": 1}},
			want:     "1 item\n",
		},
		{
			name:     "unknown locale",
			locale:   "ja",
			key:      "cart.items",
			bindings: Bindings{Int: map[string]int64{"count": 4}},
			want:     "4 items\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := CatalogRender{
				Bindings: tt.bindings,
				Store:    Store{DefaultLocale: "en", Dir: dir},
				Locale:   tt.locale,
				Key:      tt.key,
			}

			got, err := run(t, "", c.Run)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalogRender_Run_Errors(t *testing.T) {
	t.Parallel()

	dir := testCatalogDir(t)

	tests := []struct {
		name   string
		cmd    CatalogRender
		target error
	}{
		{
			name: "missing key",
			cmd: CatalogRender{
				Store:  Store{DefaultLocale: "en", Dir: dir},
				Locale: "en",
				Key:    "farewell",
			},
			target: catalog.ErrMessageNotFound,
		},
		{
			name: "missing parameter",
			cmd: CatalogRender{
				Store:  Store{DefaultLocale: "en", Dir: dir},
				Locale: "en",
				Key:    "greeting",
			},
			target: msg.ErrMissingParameter,
		},
		{
			name: "invalid default locale",
			cmd: CatalogRender{
				Store:  Store{DefaultLocale: "??", Dir: dir},
				Locale: "en",
				Key:    "greeting",
			},
			target: ErrInvalidLocale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := run(t, "", tt.cmd.Run); !errors.Is(err, tt.target) {
				t.Errorf("Run() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestCatalogList_Run(t *testing.T) {
	t.Parallel()

	dir := testCatalogDir(t)

	tests := []struct {
		name   string
		locale string
		want   string
	}{
		{
			name: "all",
			want: "en\n  cart.items\n  greeting\nde\n  greeting\n",
		},
		{
			name:   "one locale",
			locale: "de-DE",
			want:   "greeting\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := CatalogList{
				Store:  Store{DefaultLocale: "en", Concurrency: 1, Dir: dir},
				Locale: tt.locale,
			}

			got, err := run(t, "", c.Run)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}
