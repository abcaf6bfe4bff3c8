package gorm

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/doodlesbykumbi/translatable/pkg/server/store"
)

// Ensure TranslationsStore implements store.TranslationsStore
var _ store.TranslationsStore = (*TranslationsStore)(nil)

// TranslationsStore implements store.TranslationsStore using GORM.
// Table and column names come from configuration, so every identifier is
// passed as a clause.Table or clause.Column and quoted by the dialector.
type TranslationsStore struct {
	db    *gorm.DB
	table store.TranslationTable
}

// NewTranslationsStore creates a new TranslationsStore over the given table
func NewTranslationsStore(db *gorm.DB, table store.TranslationTable) *TranslationsStore {
	return &TranslationsStore{db: db, table: table}
}

// Table returns the translations table the store reads and writes
func (s *TranslationsStore) Table() store.TranslationTable {
	return s.table
}

func (s *TranslationsStore) tableName() clause.Table {
	return clause.Table{Name: s.table.Name}
}

func column(name string) clause.Column {
	return clause.Column{Name: name}
}

// ListTranslations projects every translation of the owner onto its locale
// and the given attribute
func (s *TranslationsStore) ListTranslations(ownerID string, attribute string) ([]store.TranslationRow, error) {
	type translationRow struct {
		Locale sql.NullString
		Value  sql.NullString
	}
	var rows []translationRow
	err := s.db.Raw(`SELECT ? AS locale, ? AS value FROM ? WHERE ? = ?`,
		column(s.table.LocaleKey), column(attribute), s.tableName(), column(s.table.ForeignKey), ownerID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	translations := make([]store.TranslationRow, 0, len(rows))
	for _, row := range rows {
		translations = append(translations, store.TranslationRow{
			Locale: row.Locale.String,
			Value:  row.Value.String,
		})
	}
	return translations, nil
}

// FindTranslation returns the owner's translation for locale
func (s *TranslationsStore) FindTranslation(ownerID string, locale string) (*store.Translation, error) {
	rows, err := s.db.Raw(`SELECT * FROM ? WHERE ? = ? AND ? = ? LIMIT 1`,
		s.tableName(), column(s.table.ForeignKey), ownerID, column(s.table.LocaleKey), locale,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, store.ErrTranslationNotFound
	}

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	translation := &store.Translation{
		OwnerID: ownerID,
		Locale:  locale,
		Values:  make(map[string]string, len(columns)),
	}
	for i, name := range columns {
		translation.Values[name] = values[i].String
	}
	return translation, nil
}

// SaveTranslations inserts new rows and updates existing ones in one transaction
func (s *TranslationsStore) SaveTranslations(ownerID string, changes []store.TranslationChange) error {
	if len(changes) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, change := range changes {
			var err error
			if change.Exists {
				err = s.update(tx, ownerID, change)
			} else {
				err = s.insert(tx, ownerID, change)
			}
			if err != nil {
				return fmt.Errorf("failed to save %q translation: %w", change.Locale, err)
			}
		}
		return nil
	})
}

func (s *TranslationsStore) insert(tx *gorm.DB, ownerID string, change store.TranslationChange) error {
	attributes := sortedKeys(change.Values)

	columns := []interface{}{column(s.table.ForeignKey), column(s.table.LocaleKey)}
	values := []interface{}{ownerID, change.Locale}
	for _, attribute := range attributes {
		columns = append(columns, column(attribute))
		values = append(values, change.Values[attribute])
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf(`INSERT INTO ? (%s) VALUES (%s)`, placeholders, placeholders)

	vars := append([]interface{}{s.tableName()}, columns...)
	vars = append(vars, values...)
	return tx.Exec(query, vars...).Error
}

func (s *TranslationsStore) update(tx *gorm.DB, ownerID string, change store.TranslationChange) error {
	attributes := sortedKeys(change.Values)
	if len(attributes) == 0 {
		return nil
	}

	assignments := make([]string, 0, len(attributes))
	vars := []interface{}{s.tableName()}
	for _, attribute := range attributes {
		assignments = append(assignments, "? = ?")
		vars = append(vars, column(attribute), change.Values[attribute])
	}
	vars = append(vars, column(s.table.ForeignKey), ownerID, column(s.table.LocaleKey), change.Locale)

	query := fmt.Sprintf(`UPDATE ? SET %s WHERE ? = ? AND ? = ?`, strings.Join(assignments, ", "))
	result := tx.Exec(query, vars...)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrTranslationNotFound
	}
	return nil
}

// OwnerExists reports whether the owner has any translation row
func (s *TranslationsStore) OwnerExists(ownerID string) (bool, error) {
	var count int64
	err := s.db.Raw(`SELECT COUNT(*) FROM ? WHERE ? = ?`,
		s.tableName(), column(s.table.ForeignKey), ownerID,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
