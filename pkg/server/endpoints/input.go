package endpoints

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"regexp"

	"github.com/doodlesbykumbi/translatable/pkg/field"
)

// bracketKeyRgx matches form keys such as title[en]. The locale is required.
var bracketKeyRgx = regexp.MustCompile(`^([^\[\]]+)\[([^\[\]]+)\]$`)

// decodeInput reads the submitted field values from a JSON or form body.
func decodeInput(r *http.Request) (field.Input, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		input := field.Input{}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		return input, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form body: %w", err)
	}
	return formInput(r.PostForm), nil
}

// formInput groups bracketed form keys into one mapping per attribute.
// Plain keys are kept as scalars.
func formInput(form map[string][]string) field.Input {
	input := field.Input{}
	for key, values := range form {
		if len(values) == 0 {
			continue
		}

		m := bracketKeyRgx.FindStringSubmatch(key)
		if m == nil {
			input[key] = values[0]
			continue
		}

		attribute, locale := m[1], m[2]
		nested, ok := input[attribute].(map[string]interface{})
		if !ok {
			nested = map[string]interface{}{}
			input[attribute] = nested
		}
		nested[locale] = values[0]
	}
	return input
}
