package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/translatable/pkg/server/store"
)

func serve(t *testing.T, translations *MockTranslationsStore, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	srv := newTestServer(NewMockHealthStore(), translations)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

func TestHandleListFields(t *testing.T) {
	w := serve(t, NewMockTranslationsStore(), httptest.NewRequest("GET", "/resources/posts/fields", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{
			"component": "nova-translation",
			"name": "Title",
			"attribute": "title",
			"indexName": "Title",
			"value": null,
			"locales": {"en": "English", "fr": "French", "de": "Deutsch"},
			"indexLocale": "en",
			"singleLine": true
		},
		{
			"component": "nova-translation",
			"name": "Body",
			"attribute": "body",
			"indexName": "Body",
			"value": null,
			"locales": {"en": "English", "fr": "French", "de": "Deutsch"},
			"indexLocale": "en",
			"rich": true
		}
	]`, w.Body.String())
}

func TestHandleListFields_UnknownResource(t *testing.T) {
	w := serve(t, NewMockTranslationsStore(), httptest.NewRequest("GET", "/resources/pages/fields", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "resource not found: pages")
}

func TestHandleShowRecord(t *testing.T) {
	translations := NewMockTranslationsStore()
	translations.On("ListTranslations", "1", "title").Return([]store.TranslationRow{
		{Locale: "en", Value: "Hello"},
		{Locale: "fr", Value: "Bonjour"},
	}, nil)
	translations.On("ListTranslations", "1", "body").Return([]store.TranslationRow{
		{Locale: "en", Value: "Text"},
	}, nil)

	w := serve(t, translations, httptest.NewRequest("GET", "/resources/posts/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Resource string `json:"resource"`
		ID       string `json:"id"`
		Fields   []struct {
			Attribute string            `json:"attribute"`
			Value     map[string]string `json:"value"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "posts", resp.Resource)
	assert.Equal(t, "1", resp.ID)
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, map[string]string{"en": "Hello", "fr": "Bonjour"}, resp.Fields[0].Value)
	assert.Equal(t, map[string]string{"en": "Text"}, resp.Fields[1].Value)

	translations.AssertNotCalled(t, "OwnerExists", mock.Anything)
	translations.AssertExpectations(t)
}

func TestHandleShowRecord_NoTranslations(t *testing.T) {
	tests := []struct {
		name         string
		exists       bool
		expectedCode int
	}{
		{name: "owner with translations elsewhere", exists: true, expectedCode: http.StatusOK},
		{name: "unknown owner", exists: false, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translations := NewMockTranslationsStore()
			translations.On("ListTranslations", "9", mock.Anything).Return([]store.TranslationRow{}, nil)
			translations.On("OwnerExists", "9").Return(tt.exists, nil)

			w := serve(t, translations, httptest.NewRequest("GET", "/resources/posts/9", nil))
			assert.Equal(t, tt.expectedCode, w.Code)
			translations.AssertExpectations(t)
		})
	}
}

func TestHandleShowRecord_StoreError(t *testing.T) {
	translations := NewMockTranslationsStore()
	translations.On("ListTranslations", "1", "title").Return(nil, errors.New("relation does not exist"))

	w := serve(t, translations, httptest.NewRequest("GET", "/resources/posts/1", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "relation does not exist")
}

func TestHandleUpdateRecord_JSON(t *testing.T) {
	translations := NewMockTranslationsStore()
	translations.On("FindTranslation", "1", "en").Return(&store.Translation{
		OwnerID: "1", Locale: "en", Values: map[string]string{"title": "Hi"},
	}, nil)
	translations.On("FindTranslation", "1", "fr").Return(nil, store.ErrTranslationNotFound)
	translations.On("SaveTranslations", "1", []store.TranslationChange{
		{Locale: "en", Exists: true, Values: map[string]string{"title": "Hello"}},
		{Locale: "fr", Exists: false, Values: map[string]string{"title": "Bonjour"}},
	}).Return(nil)

	req := httptest.NewRequest("PUT", "/resources/posts/1",
		strings.NewReader(`{"title":{"en":"Hello","fr":"Bonjour"},"body":"not a mapping"}`))
	req.Header.Set("Content-Type", "application/json")

	w := serve(t, translations, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fields":{"title":"Filled","body":"ValidationSkipped"}}`, w.Body.String())
	translations.AssertExpectations(t)
}

func TestHandleUpdateRecord_Form(t *testing.T) {
	translations := NewMockTranslationsStore()
	translations.On("FindTranslation", "1", "de").Return(nil, store.ErrTranslationNotFound)
	translations.On("SaveTranslations", "1", []store.TranslationChange{
		{Locale: "de", Exists: false, Values: map[string]string{"title": "Hallo", "body": "Text"}},
	}).Return(nil)

	form := url.Values{"title[de]": {"Hallo"}, "body[de]": {"Text"}}
	req := httptest.NewRequest("PUT", "/resources/posts/1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := serve(t, translations, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fields":{"title":"Filled","body":"Filled"}}`, w.Body.String())
	translations.AssertExpectations(t)
}

func TestHandleUpdateRecord_NothingSubmitted(t *testing.T) {
	translations := NewMockTranslationsStore()

	req := httptest.NewRequest("PUT", "/resources/posts/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := serve(t, translations, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fields":{"title":"ValidationSkipped","body":"ValidationSkipped"}}`, w.Body.String())
	translations.AssertNotCalled(t, "SaveTranslations", mock.Anything, mock.Anything)
}

func TestHandleUpdateRecord_Errors(t *testing.T) {
	t.Run("unknown resource", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/resources/pages/1", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := serve(t, NewMockTranslationsStore(), req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/resources/posts/1", strings.NewReader(`{"title":`))
		req.Header.Set("Content-Type", "application/json")

		w := serve(t, NewMockTranslationsStore(), req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lookup fails", func(t *testing.T) {
		translations := NewMockTranslationsStore()
		translations.On("FindTranslation", "1", "en").Return(nil, errors.New("connection reset"))

		req := httptest.NewRequest("PUT", "/resources/posts/1", strings.NewReader(`{"title":{"en":"Hello"}}`))
		req.Header.Set("Content-Type", "application/json")

		w := serve(t, translations, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		translations.AssertNotCalled(t, "SaveTranslations", mock.Anything, mock.Anything)
	})

	t.Run("save fails", func(t *testing.T) {
		translations := NewMockTranslationsStore()
		translations.On("FindTranslation", "1", "en").Return(nil, store.ErrTranslationNotFound)
		translations.On("SaveTranslations", "1", mock.Anything).Return(errors.New("unique violation"))

		req := httptest.NewRequest("PUT", "/resources/posts/1", strings.NewReader(`{"title":{"en":"Hello"}}`))
		req.Header.Set("Content-Type", "application/json")

		w := serve(t, translations, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "unique violation")
	})
}
