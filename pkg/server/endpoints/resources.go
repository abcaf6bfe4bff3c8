package endpoints

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/translatable/pkg/field"
	"github.com/doodlesbykumbi/translatable/pkg/record"
	"github.com/doodlesbykumbi/translatable/pkg/server"
)

// RecordResponse represents a record's translatable fields with their values
type RecordResponse struct {
	Resource string             `json:"resource"`
	ID       string             `json:"id"`
	Fields   []field.Serialized `json:"fields"`
}

// FillResponse reports how each field handled the submitted value
type FillResponse struct {
	Fields map[string]field.FillOutcome `json:"fields"`
}

func RegisterResourcesEndpoints(s *server.Server) {
	router := s.Router

	// GET /resources/{resource}/fields - Field descriptors
	router.HandleFunc("/resources/{resource}/fields", handleListFields(s)).Methods("GET")

	// GET /resources/{resource}/{id} - Fields with the record's values
	router.HandleFunc("/resources/{resource}/{id}", handleShowRecord(s)).Methods("GET")

	// PUT /resources/{resource}/{id} - Fill and save the record's translations
	router.HandleFunc("/resources/{resource}/{id}", handleUpdateRecord(s)).Methods("PUT")
}

func handleListFields(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["resource"]
		res, ok := s.Resource(name)
		if !ok {
			respondWithError(w, http.StatusNotFound, "resource not found: "+name)
			return
		}

		cfg := s.Config()
		respondWithJSON(w, http.StatusOK, res.Translatables(cfg, localizerFor(cfg, r)))
	}
}

func handleShowRecord(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		name, id := vars["resource"], vars["id"]

		res, ok := s.Resource(name)
		if !ok {
			respondWithError(w, http.StatusNotFound, "resource not found: "+name)
			return
		}

		cfg := s.Config()
		rec := record.New(id, res.Store)

		found := false
		fields := make([]field.Serialized, 0, len(res.Fields))
		for _, f := range res.Translatables(cfg, localizerFor(cfg, r)) {
			value, err := f.Resolve(rec)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, err.Error())
				return
			}
			if len(value) > 0 {
				found = true
			}
			fields = append(fields, f.WithValue(value))
		}

		if !found {
			exists, err := res.Store.OwnerExists(id)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, err.Error())
				return
			}
			if !exists {
				respondWithError(w, http.StatusNotFound, "record not found: "+id)
				return
			}
		}

		respondWithJSON(w, http.StatusOK, RecordResponse{
			Resource: name,
			ID:       id,
			Fields:   fields,
		})
	}
}

func handleUpdateRecord(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		name, id := vars["resource"], vars["id"]

		res, ok := s.Resource(name)
		if !ok {
			respondWithError(w, http.StatusNotFound, "resource not found: "+name)
			return
		}

		input, err := decodeInput(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		cfg := s.Config()
		rec := record.New(id, res.Store)

		outcomes := make(map[string]field.FillOutcome, len(res.Fields))
		for _, f := range res.Translatables(cfg, localizerFor(cfg, r)) {
			outcome, err := f.Fill(input, rec)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, err.Error())
				return
			}
			if outcome == field.ValidationSkipped {
				log.Printf("%s %s: field %s skipped, submitted value is not a locale mapping", name, id, f.Attribute)
			}
			outcomes[f.Attribute] = outcome
		}

		if err := rec.Save(); err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithJSON(w, http.StatusOK, FillResponse{Fields: outcomes})
	}
}
