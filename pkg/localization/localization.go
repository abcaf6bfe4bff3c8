package localization

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LangParam is the query parameter selecting the UI locale.
const LangParam = "lang"

// Display labels locales with their language name written in the current
// locale's language. Overrides take precedence; unknown codes label as
// themselves.
type Display struct {
	current   string
	overrides map[string]string
}

// NewDisplay creates a Display provider for the current UI locale.
func NewDisplay(current string, overrides map[string]string) *Display {
	copied := make(map[string]string, len(overrides))
	for code, label := range overrides {
		copied[code] = label
	}
	return &Display{current: current, overrides: copied}
}

// Translate returns the label for code.
func (d *Display) Translate(code string) string {
	if label, ok := d.overrides[code]; ok {
		return label
	}

	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	namer := display.Tags(d.currentTag())
	if namer == nil {
		return code
	}
	if name := namer.Name(tag); name != "" {
		return name
	}
	return code
}

// CurrentLocale returns the UI locale.
func (d *Display) CurrentLocale() string {
	return d.current
}

// WithCurrent returns a copy of d for another UI locale.
func (d *Display) WithCurrent(current string) *Display {
	return &Display{current: current, overrides: d.overrides}
}

func (d *Display) currentTag() language.Tag {
	tag, err := language.Parse(d.current)
	if err != nil {
		return language.English
	}
	return tag
}

// Static labels locales from a fixed map.
type Static struct {
	Labels  map[string]string
	Current string
}

// Translate returns the label for code, or code when it has none.
func (s Static) Translate(code string) string {
	if label, ok := s.Labels[code]; ok {
		return label
	}
	return code
}

// CurrentLocale returns the UI locale.
func (s Static) CurrentLocale() string {
	return s.Current
}

// Negotiate picks the UI locale for a request among supported codes: the lang
// query parameter first, then Accept-Language, then fallback.
func Negotiate(supported []string, fallback string, r *http.Request) string {
	if r == nil || len(supported) == 0 {
		return fallback
	}

	if lang := strings.TrimSpace(r.URL.Query().Get(LangParam)); lang != "" {
		for _, code := range supported {
			if strings.EqualFold(code, lang) {
				return code
			}
		}
	}

	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return fallback
	}
	desired, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	var codes []string
	var tags []language.Tag
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		codes = append(codes, code)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return codes[index]
}
