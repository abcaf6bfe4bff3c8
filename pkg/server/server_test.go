package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/translatable/pkg/config"
	"github.com/doodlesbykumbi/translatable/pkg/localization"
	"github.com/doodlesbykumbi/translatable/pkg/server/store"
)

type nopStore struct {
	store.TranslationsStore
	table store.TranslationTable
}

func newTestServer(cfg *config.TranslatableConfig) *Server {
	return New(cfg, nil, func(table store.TranslationTable) store.TranslationsStore {
		return &nopStore{table: table}
	}, "127.0.0.1", "0")
}

func testConfig() *config.TranslatableConfig {
	return &config.TranslatableConfig{
		Locales:   []string{"en", "fr"},
		LocaleKey: "locale",
		AppLocale: "en",
		Resources: []config.ResourceConfig{
			{
				Name:              "posts",
				TranslationsTable: "post_translations",
				ForeignKey:        "post_id",
				Fields: []config.FieldConfig{
					{Name: "Title", SingleLine: true},
					{Name: "Body", Attribute: "content", Rich: true, IndexLocale: "fr", Locales: []string{"fr"}},
				},
			},
		},
	}
}

func TestServer_Resources(t *testing.T) {
	s := newTestServer(testConfig())

	posts, ok := s.Resource("posts")
	require.True(t, ok)
	assert.Equal(t, store.TranslationTable{
		Name:       "post_translations",
		ForeignKey: "post_id",
		LocaleKey:  "locale",
	}, posts.Store.(*nopStore).table)

	_, ok = s.Resource("pages")
	assert.False(t, ok)
	assert.Equal(t, "127.0.0.1:0", s.Addr())
}

func TestServer_SetConfig(t *testing.T) {
	s := newTestServer(testConfig())

	next := testConfig()
	next.Resources[0].Name = "articles"
	s.SetConfig(next)

	assert.Same(t, next, s.Config())
	_, ok := s.Resource("posts")
	assert.False(t, ok)
	_, ok = s.Resource("articles")
	assert.True(t, ok)
}

func TestResource_Translatables(t *testing.T) {
	cfg := testConfig()
	s := newTestServer(cfg)
	posts, _ := s.Resource("posts")

	l10n := localization.Static{Labels: map[string]string{"en": "English", "fr": "Français"}, Current: "en"}
	fields := posts.Translatables(cfg, l10n)
	require.Len(t, fields, 2)

	title := fields[0].Meta()
	assert.Equal(t, "title", fields[0].Attribute)
	assert.Equal(t, []string{"en", "fr"}, title.Locales.Codes())
	assert.Equal(t, "en", title.IndexLocale)
	assert.True(t, title.SingleLine)
	assert.False(t, title.Rich)

	body := fields[1].Meta()
	assert.Equal(t, "content", fields[1].Attribute)
	assert.Equal(t, []string{"fr"}, body.Locales.Codes())
	label, ok := body.Locales.Label("fr")
	assert.True(t, ok)
	assert.Equal(t, "Français", label)
	assert.Equal(t, "fr", body.IndexLocale)
	assert.True(t, body.Rich)
}
