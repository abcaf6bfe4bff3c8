package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/translatable/pkg/config"
	"github.com/doodlesbykumbi/translatable/pkg/field"
	"github.com/doodlesbykumbi/translatable/pkg/localization"
	"github.com/doodlesbykumbi/translatable/pkg/server"
)

// LocalesResponse represents the response from /locales
type LocalesResponse struct {
	Locales     field.LocaleSet `json:"locales"`
	IndexLocale string          `json:"indexLocale"`
}

// RegisterLocalesEndpoints registers the locales endpoint
func RegisterLocalesEndpoints(s *server.Server) {
	// GET /locales?lang=xx - Configured locales labelled in the UI locale
	s.Router.HandleFunc("/locales", handleLocales(s)).Methods("GET")
}

func handleLocales(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := s.Config()
		l10n := localizerFor(cfg, r)

		locales := field.LocaleSet{}
		for _, code := range cfg.Locales {
			locales = locales.With(code, l10n.Translate(code))
		}

		respondWithJSON(w, http.StatusOK, LocalesResponse{
			Locales:     locales,
			IndexLocale: l10n.CurrentLocale(),
		})
	}
}

// localizerFor labels locales in the UI locale negotiated for r
func localizerFor(cfg *config.TranslatableConfig, r *http.Request) *localization.Display {
	current := localization.Negotiate(cfg.Locales, cfg.AppLocale, r)
	return localization.NewDisplay(current, cfg.Labels)
}
