package gorm

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doodlesbykumbi/translatable/pkg/server/store"
)

var postTranslations = store.TranslationTable{
	Name:       "post_translations",
	ForeignKey: "post_id",
	LocaleKey:  "locale",
}

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	return gormDB, mock
}

func TestTranslationsStore_ListTranslations(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewTranslationsStore(db, postTranslations)

	rows := sqlmock.NewRows([]string{"locale", "value"}).
		AddRow("en", "Hello").
		AddRow("fr", "Bonjour").
		AddRow("de", nil)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "locale" AS locale, "title" AS value FROM "post_translations" WHERE "post_id" = $1`)).
		WithArgs("42").
		WillReturnRows(rows)

	translations, err := s.ListTranslations("42", "title")
	require.NoError(t, err)
	assert.Equal(t, []store.TranslationRow{
		{Locale: "en", Value: "Hello"},
		{Locale: "fr", Value: "Bonjour"},
		{Locale: "de", Value: ""},
	}, translations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationsStore_ListTranslations_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewTranslationsStore(db, postTranslations)

	mock.ExpectQuery(`SELECT .+ FROM "post_translations"`).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"locale", "value"}))

	translations, err := s.ListTranslations("7", "title")
	require.NoError(t, err)
	assert.Empty(t, translations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationsStore_ListTranslations_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewTranslationsStore(db, postTranslations)

	dbErr := errors.New("connection refused")
	mock.ExpectQuery(`SELECT .+ FROM "post_translations"`).WillReturnError(dbErr)

	_, err := s.ListTranslations("42", "title")
	assert.ErrorIs(t, err, dbErr)
}

func TestTranslationsStore_FindTranslation(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewTranslationsStore(db, postTranslations)

	rows := sqlmock.NewRows([]string{"id", "post_id", "locale", "title", "body"}).
		AddRow(int64(3), int64(42), "fr", "Bonjour", nil)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "post_translations" WHERE "post_id" = $1 AND "locale" = $2 LIMIT 1`)).
		WithArgs("42", "fr").
		WillReturnRows(rows)

	translation, err := s.FindTranslation("42", "fr")
	require.NoError(t, err)
	assert.Equal(t, "42", translation.OwnerID)
	assert.Equal(t, "fr", translation.Locale)
	assert.Equal(t, "Bonjour", translation.Values["title"])
	assert.Equal(t, "", translation.Values["body"])
	assert.Equal(t, "3", translation.Values["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationsStore_FindTranslation_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewTranslationsStore(db, postTranslations)

	mock.ExpectQuery(`SELECT \* FROM "post_translations"`).
		WithArgs("42", "it").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "locale", "title"}))

	_, err := s.FindTranslation("42", "it")
	assert.ErrorIs(t, err, store.ErrTranslationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationsStore_SaveTranslations(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewTranslationsStore(db, postTranslations)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "post_translations" SET "title" = $1 WHERE "post_id" = $2 AND "locale" = $3`)).
		WithArgs("Hello", "42", "en").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "post_translations" ("post_id", "locale", "body", "title") VALUES ($1, $2, $3, $4)`)).
		WithArgs("42", "fr", "Corps", "Bonjour").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.SaveTranslations("42", []store.TranslationChange{
		{Locale: "en", Exists: true, Values: map[string]string{"title": "Hello"}},
		{Locale: "fr", Values: map[string]string{"title": "Bonjour", "body": "Corps"}},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationsStore_SaveTranslations_RollsBack(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewTranslationsStore(db, postTranslations)

	dbErr := errors.New("duplicate key value violates unique constraint")
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "post_translations"`).
		WithArgs("42", "en", "Hello").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO "post_translations"`).
		WithArgs("42", "fr", "Bonjour").
		WillReturnError(dbErr)
	mock.ExpectRollback()

	err := s.SaveTranslations("42", []store.TranslationChange{
		{Locale: "en", Values: map[string]string{"title": "Hello"}},
		{Locale: "fr", Values: map[string]string{"title": "Bonjour"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), `"fr"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationsStore_SaveTranslations_VanishedRow(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewTranslationsStore(db, postTranslations)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "post_translations"`).
		WithArgs("Hello", "42", "en").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.SaveTranslations("42", []store.TranslationChange{
		{Locale: "en", Exists: true, Values: map[string]string{"title": "Hello"}},
	})
	assert.ErrorIs(t, err, store.ErrTranslationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationsStore_SaveTranslations_NoChanges(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewTranslationsStore(db, postTranslations)

	require.NoError(t, s.SaveTranslations("42", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationsStore_OwnerExists(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		expected bool
	}{
		{name: "has translations", count: 2, expected: true},
		{name: "no translations", count: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			s := NewTranslationsStore(db, postTranslations)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM "post_translations" WHERE "post_id" = $1`)).
				WithArgs("42").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			exists, err := s.OwnerExists("42")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTranslationsStore_CustomLocaleKey(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewTranslationsStore(db, store.TranslationTable{
		Name:       "page_translations",
		ForeignKey: "page_id",
		LocaleKey:  "lang",
	})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "lang" AS locale, "heading" AS value FROM "page_translations" WHERE "page_id" = $1`)).
		WithArgs("1").
		WillReturnRows(sqlmock.NewRows([]string{"locale", "value"}).AddRow("it", "Ciao"))

	translations, err := s.ListTranslations("1", "heading")
	require.NoError(t, err)
	assert.Equal(t, []store.TranslationRow{{Locale: "it", Value: "Ciao"}}, translations)
	assert.Equal(t, "page_translations", s.Table().Name)
}

func TestHealthStore_CheckConnectivity(t *testing.T) {
	db, mock := setupTestDB(t)
	s := NewHealthStore(db)

	mock.ExpectExec(`SELECT 1`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.NoError(t, s.CheckConnectivity())

	mock.ExpectExec(`SELECT 1`).WillReturnError(errors.New("down"))
	assert.EqualError(t, s.CheckConnectivity(), "down")
}
