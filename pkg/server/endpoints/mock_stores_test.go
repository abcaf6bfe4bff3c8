package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/translatable/pkg/config"
	"github.com/doodlesbykumbi/translatable/pkg/server"
	"github.com/doodlesbykumbi/translatable/pkg/server/store"
)

// MockTranslationsStore implements store.TranslationsStore for testing using testify/mock
type MockTranslationsStore struct {
	mock.Mock
}

func NewMockTranslationsStore() *MockTranslationsStore {
	return &MockTranslationsStore{}
}

func (m *MockTranslationsStore) ListTranslations(ownerID string, attribute string) ([]store.TranslationRow, error) {
	args := m.Called(ownerID, attribute)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.TranslationRow), args.Error(1)
}

func (m *MockTranslationsStore) FindTranslation(ownerID string, locale string) (*store.Translation, error) {
	args := m.Called(ownerID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Translation), args.Error(1)
}

func (m *MockTranslationsStore) SaveTranslations(ownerID string, changes []store.TranslationChange) error {
	args := m.Called(ownerID, changes)
	return args.Error(0)
}

func (m *MockTranslationsStore) OwnerExists(ownerID string) (bool, error) {
	args := m.Called(ownerID)
	return args.Bool(0), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}

func testConfig() *config.TranslatableConfig {
	return &config.TranslatableConfig{
		Locales:   []string{"en", "fr", "de"},
		LocaleKey: "locale",
		AppLocale: "en",
		Labels:    map[string]string{"de": "Deutsch"},
		Resources: []config.ResourceConfig{
			{
				Name:              "posts",
				TranslationsTable: "post_translations",
				ForeignKey:        "post_id",
				Fields: []config.FieldConfig{
					{Name: "Title", SingleLine: true},
					{Name: "Body", Rich: true},
				},
			},
		},
	}
}

// newTestServer builds a server whose every resource is backed by translations
func newTestServer(health store.HealthStore, translations store.TranslationsStore) *server.Server {
	srv := server.New(testConfig(), health, func(store.TranslationTable) store.TranslationsStore {
		return translations
	}, "127.0.0.1", "0")
	RegisterAll(srv)
	return srv
}
