// Package i18n resolves menu label keys against the embedded locale files.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLocale is used when no locale, or an unknown one, is requested.
const DefaultLocale = "en"

// Catalog translates keys for one locale. The zero value is not usable.
type Catalog struct {
	locale    language.Tag
	localizer *goi18n.Localizer
}

// Locales lists the embedded locale names.
func Locales() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	return out
}

// Supported reports whether an embedded locale matches name.
func Supported(name string) bool {
	for _, l := range Locales() {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}

// Load builds a catalog for locale. Unknown locales fall back to English.
func Load(locale string) (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, name := range Locales() {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", name+".yaml")); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", name, err)
		}
	}
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil || !Supported(locale) {
		tag = language.English
	}
	return &Catalog{
		locale:    tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String(), DefaultLocale),
	}, nil
}

// Locale returns the resolved locale tag.
func (c *Catalog) Locale() string {
	return c.locale.String()
}

// Translate returns the message for key, or an empty string when no locale
// defines it.
func (c *Catalog) Translate(key string) string {
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		var notFound *goi18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			return msg
		}
		return ""
	}
	return msg
}
