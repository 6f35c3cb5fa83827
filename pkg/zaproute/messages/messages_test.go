package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	bokmal := language.MustParse("nb")

	tests := []struct {
		name  string
		prefs []string
		want  language.Tag
	}{
		{"no preference", nil, language.English},
		{"english", []string{"en-US"}, language.English},
		{"bokmal", []string{"nb"}, bokmal},
		{"accept-language header", []string{"nb-NO,nb;q=0.9,en;q=0.8"}, bokmal},
		{"unsupported falls back", []string{"ja"}, language.English},
		{"garbage is skipped", []string{"!!", "nb"}, bokmal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.prefs...))
		})
	}
}

func TestDefaultPrinter(t *testing.T) {
	p := Default()

	assert.Equal(t, language.English, p.Tag())
	assert.Equal(t, "Redirecting to index.", p.RedirectingToIndex())
	assert.Equal(t, "404 page not found", p.NotFound())
	assert.Equal(t, "Take me to the index!", p.TakeMeToIndex())
	assert.Equal(t, "Invalid choosing method chosen", p.InvalidMethod())
	assert.Equal(t, "Duplicate widget key: link2Index", p.DuplicateWidget("link2Index"))
}

func TestNorwegianPrinter(t *testing.T) {
	p := New("nb")

	assert.Equal(t, "Omdirigerer til forsiden.", p.RedirectingToIndex())
	assert.Equal(t, "404 fant ikke siden", p.NotFound())
	assert.Equal(t, "Duplisert widgetnøkkel: x", p.DuplicateWidget("x"))
}
