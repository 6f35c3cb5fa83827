// Package messages holds the user-visible notices shown by the router and the
// web host, localised with go-i18n.
package messages

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	bokmal    = language.MustParse("nb")
	supported = []language.Tag{language.English, bokmal}
	matcher   = language.NewMatcher(supported)
)

// Default message texts, used when a catalogue lacks a translation.
var (
	redirectingToIndex = &i18n.Message{ID: "RedirectingToIndex", Other: "Redirecting to index."}
	notFound           = &i18n.Message{ID: "NotFound", Other: "404 page not found"}
	takeMeToIndex      = &i18n.Message{ID: "TakeMeToIndex", Other: "Take me to the index!"}
	invalidMethod      = &i18n.Message{ID: "InvalidMethod", Other: "Invalid choosing method chosen"}
	duplicateWidget    = &i18n.Message{ID: "DuplicateWidget", Other: "Duplicate widget key: {{.Key}}"}
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		for _, name := range []string{"locales/active.en.toml", "locales/active.nb.toml"} {
			if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
				panic("messages: load " + name + ": " + err.Error())
			}
		}
	})
	return bundle
}

// Supported returns the languages with a message catalogue.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match picks the best supported language for the given preferences, which
// may be tags or Accept-Language header values. English is the fallback.
func Match(prefs ...string) language.Tag {
	var tags []language.Tag
	for _, pref := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// Printer localises notices for one language.
type Printer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New returns a printer for the best match of prefs.
func New(prefs ...string) *Printer {
	tag := Match(prefs...)
	return &Printer{
		tag:       tag,
		localizer: i18n.NewLocalizer(getBundle(), tag.String()),
	}
}

var (
	defaultOnce    sync.Once
	defaultPrinter *Printer
)

// Default returns the English printer.
func Default() *Printer {
	defaultOnce.Do(func() {
		defaultPrinter = New(language.English.String())
	})
	return defaultPrinter
}

// Tag returns the language the printer writes in.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

func (p *Printer) localize(msg *i18n.Message, data map[string]string) string {
	out, err := p.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil && out == "" {
		return msg.Other
	}
	return out
}

func (p *Printer) RedirectingToIndex() string { return p.localize(redirectingToIndex, nil) }

func (p *Printer) NotFound() string { return p.localize(notFound, nil) }

func (p *Printer) TakeMeToIndex() string { return p.localize(takeMeToIndex, nil) }

func (p *Printer) InvalidMethod() string { return p.localize(invalidMethod, nil) }

// DuplicateWidget reports a widget key used twice in one cycle.
func (p *Printer) DuplicateWidget(key string) string {
	return p.localize(duplicateWidget, map[string]string{"Key": key})
}
