// Package i18n renders user-facing messages for domain error codes.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// BaseLocale is the fallback locale when no catalog matches.
const BaseLocale = "en-US"

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}

	matcherMu sync.RWMutex
	matcher   language.Matcher
	matchTags []language.Tag
)

func init() {
	RegisterCatalog(BaseLocale, NewCatalog(BaseLocale, enUSMessages))
}

// GetCatalog returns the catalog for the given locale.
// Falls back to en-US if the locale is not found.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}

	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	resolved := resolveLocale(requested)
	if c, ok := lookupCatalog(resolved); ok {
		return c
	}

	c, _ := lookupCatalog(BaseLocale)
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata to ensure
// consistent output (template variables without metadata render as empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a catalog for the given locale. Registration
// rebuilds the language matcher, so callers should register during init or
// single-threaded test setup.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	catalogs[locale] = cat
	locales := make([]string, 0, len(catalogs))
	for key := range catalogs {
		locales = append(locales, key)
	}
	catalogsMu.Unlock()

	rebuildMatcher(locales)
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

// resolveLocale matches a requested locale against registered catalogs,
// so "en-GB" or "en" resolve to the en-US catalog.
func resolveLocale(requested string) string {
	tag, err := language.Parse(requested)
	if err != nil {
		return BaseLocale
	}

	matcherMu.RLock()
	m := matcher
	tags := matchTags
	matcherMu.RUnlock()
	if m == nil || len(tags) == 0 {
		return BaseLocale
	}

	_, index, _ := m.Match(tag)
	if index < 0 || index >= len(tags) {
		return BaseLocale
	}
	return tags[index].String()
}

func rebuildMatcher(locales []string) {
	tags := make([]language.Tag, 0, len(locales)+1)
	tags = append(tags, language.MustParse(BaseLocale))
	for _, locale := range locales {
		if locale == BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	matcherMu.Lock()
	matcher = language.NewMatcher(tags)
	matchTags = tags
	matcherMu.Unlock()
}
