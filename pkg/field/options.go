package field

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrLocalesNotObject is returned when decoding locales that are not a JSON object
var ErrLocalesNotObject = errors.New("locales must be a JSON object")

// Locale is one entry of a LocaleSet.
type Locale struct {
	Code  string
	Label string
}

// LocaleSet is an ordered set of locales. Order is display order.
type LocaleSet []Locale

// NewLocaleSet builds a set from alternating code, label pairs. A trailing
// code without a label is labelled with itself.
//
//	field.NewLocaleSet("en", "English", "de", "Deutsch")
func NewLocaleSet(pairs ...string) LocaleSet {
	var set LocaleSet
	for i := 0; i < len(pairs); i += 2 {
		label := pairs[i]
		if i+1 < len(pairs) {
			label = pairs[i+1]
		}
		set = set.With(pairs[i], label)
	}
	return set
}

// With returns the set with code labelled as label. A code already present
// keeps its position and takes the new label.
func (s LocaleSet) With(code, label string) LocaleSet {
	for i := range s {
		if s[i].Code == code {
			out := append(LocaleSet(nil), s...)
			out[i].Label = label
			return out
		}
	}
	return append(append(LocaleSet(nil), s...), Locale{Code: code, Label: label})
}

// Codes returns the locale codes in order.
func (s LocaleSet) Codes() []string {
	codes := make([]string, 0, len(s))
	for _, l := range s {
		codes = append(codes, l.Code)
	}
	return codes
}

// Label returns the label of code and whether the code is in the set.
func (s LocaleSet) Label(code string) (string, bool) {
	for _, l := range s {
		if l.Code == code {
			return l.Label, true
		}
	}
	return "", false
}

// MarshalJSON encodes the set as a JSON object keyed by code, keeping order.
func (s LocaleSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(l.Code)
		if err != nil {
			return nil, err
		}
		label, err := json.Marshal(l.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(label)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of code to label, keeping document order.
func (s *LocaleSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrLocalesNotObject
	}

	var set LocaleSet
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		var label string
		if err := dec.Decode(&label); err != nil {
			return err
		}
		set = set.With(keyTok.(string), label)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = set
	return nil
}

// Options is the typed metadata of a translatable field.
type Options struct {
	// Locales are the tabs shown by the editor
	Locales LocaleSet

	// IndexLocale selects the locale displayed on index and detail views
	IndexLocale string

	// SingleLine renders a text input instead of a textarea
	SingleLine bool

	// Rich renders a WYSIWYG editor instead of plain text
	Rich bool
}

type optionsJSON struct {
	Locales     LocaleSet `json:"locales"`
	IndexLocale string    `json:"indexLocale"`
	SingleLine  bool      `json:"singleLine,omitempty"`
	Rich        bool      `json:"rich,omitempty"`
}

func (o Options) toJSON() optionsJSON {
	locales := o.Locales
	if locales == nil {
		locales = LocaleSet{}
	}
	return optionsJSON{
		Locales:     locales,
		IndexLocale: o.IndexLocale,
		SingleLine:  o.SingleLine,
		Rich:        o.Rich,
	}
}

// MarshalJSON encodes the options in the shape the UI component reads.
func (o Options) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.toJSON())
}

// UnmarshalJSON decodes options from the UI shape.
func (o *Options) UnmarshalJSON(data []byte) error {
	var raw optionsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*o = Options{
		Locales:     raw.Locales,
		IndexLocale: raw.IndexLocale,
		SingleLine:  raw.SingleLine,
		Rich:        raw.Rich,
	}
	return nil
}
