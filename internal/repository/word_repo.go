package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"mondict/internal/database"
	"mondict/internal/models"
	"mondict/internal/view"
)

// wordRecordColumns is the column list of the word_records projection,
// in scan order
const wordRecordColumns = `word_id, mon_word, pronunciation, word_language_id,
	pos_ids, pos_en_names, pos_mm_names, definition_ids, definitions, examples,
	category_ids, synonyms`

// searchPredicate matches a word exactly, by prefix, by substring, or by
// substring of its aggregated definition text. Argument order:
// query, query%, %query%, %query%.
const searchPredicate = `(mon_word = ? OR mon_word LIKE ? OR mon_word LIKE ? OR definitions LIKE ?)`

// searchRank orders exact matches first, then prefix, then substring.
// Argument order: query, query%, %query%.
const searchRank = `CASE WHEN mon_word = ? THEN 1
		WHEN mon_word LIKE ? THEN 2
		WHEN mon_word LIKE ? THEN 3
		ELSE 4 END`

// WordRepository handles database operations for words, definitions and
// synonyms, including reads from the denormalized word_records projection
type WordRepository struct {
	db *database.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *database.DB) *WordRepository {
	return &WordRepository{db: db}
}

// scanWordRecord reads one row of the word_records projection and runs it
// through the view adapter so aggregate columns are decoded and
// deduplicated before anything downstream sees them
func scanWordRecord(scan func(dest ...interface{}) error) (*models.WordRecord, error) {
	var rec models.WordRecord
	var pronunciation sql.NullString
	var aggregates [8]sql.NullString

	dest := []interface{}{&rec.WordID, &rec.MonWord, &pronunciation, &rec.WordLanguageID}
	for i := range aggregates {
		dest = append(dest, &aggregates[i])
	}
	if err := scan(dest...); err != nil {
		return nil, err
	}

	if pronunciation.Valid {
		rec.Pronunciation = pronunciation.String
	}
	fields := []*interface{}{
		&rec.PosIDs, &rec.PosENNames, &rec.PosMMNames, &rec.DefinitionIDs,
		&rec.Definitions, &rec.Examples, &rec.CategoryIDs, &rec.Synonyms,
	}
	for i, f := range fields {
		if aggregates[i].Valid {
			*f = aggregates[i].String
		}
	}

	view.NormalizeRecord(&rec)
	return &rec, nil
}

func (r *WordRepository) queryWordRecords(query string, args ...interface{}) ([]models.WordRecord, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query word records: %w", err)
	}
	defer rows.Close()

	var records []models.WordRecord
	for rows.Next() {
		rec, err := scanWordRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word record: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// GetWordRecordByID retrieves one denormalized word record, or nil if the
// word does not exist
func (r *WordRepository) GetWordRecordByID(wordID int64) (*models.WordRecord, error) {
	query := "SELECT " + wordRecordColumns + " FROM word_records WHERE word_id = ?"
	rec, err := scanWordRecord(r.db.QueryRow(query, wordID).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word record: %w", err)
	}
	return rec, nil
}

// GetWordRecordsByIDs retrieves denormalized records for a set of word ids.
// Missing ids are skipped; result order is unspecified.
func (r *WordRepository) GetWordRecordsByIDs(wordIDs []int64) ([]models.WordRecord, error) {
	if len(wordIDs) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(wordIDs)), ", ")
	query := "SELECT " + wordRecordColumns + " FROM word_records WHERE word_id IN (" + placeholders + ")"
	args := make([]interface{}, len(wordIDs))
	for i, id := range wordIDs {
		args[i] = id
	}
	return r.queryWordRecords(query, args...)
}

// SearchWords returns the full, unpaginated result set for a free-text
// query, ranked exact > prefix > substring > definition match
func (r *WordRepository) SearchWords(query string) ([]models.WordRecord, error) {
	sqlQuery := "SELECT " + wordRecordColumns + " FROM word_records WHERE " +
		searchPredicate + " ORDER BY " + searchRank
	prefix := query + "%"
	contains := "%" + query + "%"
	return r.queryWordRecords(sqlQuery,
		query, prefix, contains, contains,
		query, prefix, contains)
}

// paginatedPredicate builds the WHERE clause shared by the count and page
// queries of a paginated search. Returns an empty clause when no filter is
// given.
func paginatedPredicate(query string, posID int64) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if query != "" {
		conditions = append(conditions, searchPredicate)
		contains := "%" + query + "%"
		args = append(args, query, query+"%", contains, contains)
	}
	if posID > 0 {
		// Exact membership against the definitions table rather than a
		// substring test on the encoded pos_ids column, so pos id 1 can
		// never match a list containing 12
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM definitions d WHERE d.word_id = word_records.word_id AND d.pos_id = ?)")
		args = append(args, posID)
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// CountPaginatedSearch counts the rows matching a paginated search filter
func (r *WordRepository) CountPaginatedSearch(query string, posID int64) (int64, error) {
	where, args := paginatedPredicate(query, posID)
	var total int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM word_records"+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count search results: %w", err)
	}
	return total, nil
}

// PaginatedSearch returns one page of a filtered search. Pagination values
// are always bound parameters, never interpolated.
func (r *WordRepository) PaginatedSearch(query string, posID int64, limit, offset int) ([]models.WordRecord, error) {
	where, args := paginatedPredicate(query, posID)

	orderBy := " ORDER BY mon_word ASC"
	if query != "" {
		orderBy = " ORDER BY " + searchRank
		args = append(args, query, query+"%", "%"+query+"%")
	}

	sqlQuery := "SELECT " + wordRecordColumns + " FROM word_records" + where +
		orderBy + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)
	return r.queryWordRecords(sqlQuery, args...)
}

const categoryPredicate = `EXISTS (SELECT 1 FROM definitions d WHERE d.word_id = word_records.word_id AND d.category_id = ?)`

// CountByCategory counts words having at least one definition in the category
func (r *WordRepository) CountByCategory(categoryID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM word_records WHERE "+categoryPredicate, categoryID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count words in category: %w", err)
	}
	return total, nil
}

// GetByCategory returns one page of words in a category, ordered by word
// text ascending
func (r *WordRepository) GetByCategory(categoryID int64, limit, offset int) ([]models.WordRecord, error) {
	sqlQuery := "SELECT " + wordRecordColumns + " FROM word_records WHERE " +
		categoryPredicate + " ORDER BY mon_word ASC LIMIT ? OFFSET ?"
	return r.queryWordRecords(sqlQuery, categoryID, limit, offset)
}

// categorySearchPredicate builds the text predicate for a category-scoped
// search restricted to the selected fields (validated by the caller)
func categorySearchPredicate(query string, fields []string) (string, []interface{}) {
	var parts []string
	var args []interface{}
	contains := "%" + query + "%"
	for _, f := range fields {
		switch f {
		case "word":
			parts = append(parts, "mon_word LIKE ?")
			args = append(args, contains)
		case "definitions":
			parts = append(parts, "definitions LIKE ?")
			args = append(args, contains)
		}
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

// CountSearchInCategory counts category-scoped search matches
func (r *WordRepository) CountSearchInCategory(categoryID int64, query string, fields []string) (int64, error) {
	textWhere, textArgs := categorySearchPredicate(query, fields)
	args := append([]interface{}{categoryID}, textArgs...)

	var total int64
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM word_records WHERE "+categoryPredicate+" AND "+textWhere,
		args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count category search results: %w", err)
	}
	return total, nil
}

// SearchInCategory returns one page of category-scoped search matches
func (r *WordRepository) SearchInCategory(categoryID int64, query string, fields []string, limit, offset int) ([]models.WordRecord, error) {
	textWhere, textArgs := categorySearchPredicate(query, fields)
	args := append([]interface{}{categoryID}, textArgs...)
	args = append(args, limit, offset)

	sqlQuery := "SELECT " + wordRecordColumns + " FROM word_records WHERE " +
		categoryPredicate + " AND " + textWhere +
		" ORDER BY mon_word ASC LIMIT ? OFFSET ?"
	return r.queryWordRecords(sqlQuery, args...)
}

// CountWords returns the total number of words
func (r *WordRepository) CountWords() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// CountDefinitions returns the total number of definitions
func (r *WordRepository) CountDefinitions() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM definitions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count definitions: %w", err)
	}
	return count, nil
}

// CreateWord inserts a word with its definitions and synonyms in one
// transaction. Either every row reaches the store or none do.
func (r *WordRepository) CreateWord(input *models.WordInput) (wordID int64, definitionIDs []int64, err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	wordID, err = tx.ExecReturningID(
		"INSERT INTO words (word, pronunciation, language_id) VALUES (?, ?, ?)",
		input.MonWord, input.Pronunciation, input.LanguageID)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to insert word: %w", err)
	}

	for _, def := range input.Definitions {
		defID, insertErr := insertDefinition(tx, wordID, &def)
		if insertErr != nil {
			err = insertErr
			return 0, nil, err
		}
		definitionIDs = append(definitionIDs, defID)
	}

	if err = insertSynonyms(tx, wordID, input.LanguageID, input.Synonyms); err != nil {
		return 0, nil, err
	}

	if err = tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return wordID, definitionIDs, nil
}

// UpdateWord overwrites a word's main fields, updates or inserts each
// definition, and replaces the synonym set, all in one transaction.
// found is false when the word does not exist; nothing is written then.
func (r *WordRepository) UpdateWord(wordID int64, input *models.WordInput) (definitionIDs []int64, found bool, err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil || !found {
			tx.Rollback()
		}
	}()

	// Confirm the target exists before touching anything, so a miss has
	// zero side effects
	var exists int
	err = tx.QueryRow("SELECT COUNT(*) FROM words WHERE word_id = ?", wordID).Scan(&exists)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check word existence: %w", err)
	}
	if exists == 0 {
		return nil, false, nil
	}
	found = true

	_, err = tx.Exec(
		"UPDATE words SET word = ?, pronunciation = ?, language_id = ? WHERE word_id = ?",
		input.MonWord, input.Pronunciation, input.LanguageID, wordID)
	if err != nil {
		return nil, true, fmt.Errorf("failed to update word: %w", err)
	}

	for _, def := range input.Definitions {
		if def.DefinitionID != nil {
			// Scoped by both ids so a definition of another word can
			// never be hijacked
			_, err = tx.Exec(
				`UPDATE definitions SET definition = ?, example = ?, language_id = ?, pos_id = ?, category_id = ?
				 WHERE definition_id = ? AND word_id = ?`,
				def.Definition, def.Example, def.LanguageID, def.PosID, def.CategoryID,
				*def.DefinitionID, wordID)
			if err != nil {
				return nil, true, fmt.Errorf("failed to update definition: %w", err)
			}
			definitionIDs = append(definitionIDs, *def.DefinitionID)
			continue
		}

		defID, insertErr := insertDefinition(tx, wordID, &def)
		if insertErr != nil {
			err = insertErr
			return nil, true, err
		}
		definitionIDs = append(definitionIDs, defID)
	}

	// Replace-all: delete every existing synonym, then bulk-insert the
	// new set
	if _, err = tx.Exec("DELETE FROM synonyms WHERE word_id = ?", wordID); err != nil {
		return nil, true, fmt.Errorf("failed to clear synonyms: %w", err)
	}
	if err = insertSynonyms(tx, wordID, input.LanguageID, input.Synonyms); err != nil {
		return nil, true, err
	}

	if err = tx.Commit(); err != nil {
		return nil, true, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return definitionIDs, true, nil
}

// DeleteWord removes a word, its definitions and its synonyms. found is
// false when the word did not exist; definitionsDeleted reports how many
// definition rows went with it.
func (r *WordRepository) DeleteWord(wordID int64) (definitionsDeleted int64, found bool, err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil || !found {
			tx.Rollback()
		}
	}()

	// Children first for referential integrity
	result, err := tx.Exec("DELETE FROM definitions WHERE word_id = ?", wordID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to delete definitions: %w", err)
	}
	definitionsDeleted, err = result.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read deleted definition count: %w", err)
	}

	if _, err = tx.Exec("DELETE FROM synonyms WHERE word_id = ?", wordID); err != nil {
		return 0, false, fmt.Errorf("failed to delete synonyms: %w", err)
	}

	result, err = tx.Exec("DELETE FROM words WHERE word_id = ?", wordID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to delete word: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return 0, false, nil
	}
	found = true

	if err = tx.Commit(); err != nil {
		return 0, true, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return definitionsDeleted, true, nil
}

// insertDefinition adds one definition row for a word and returns its id
func insertDefinition(tx *database.Tx, wordID int64, def *models.DefinitionInput) (int64, error) {
	defID, err := tx.ExecReturningID(
		`INSERT INTO definitions (word_id, language_id, pos_id, category_id, definition, example)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		wordID, def.LanguageID, def.PosID, def.CategoryID, def.Definition, def.Example)
	if err != nil {
		return 0, fmt.Errorf("failed to insert definition: %w", err)
	}
	return defID, nil
}

// insertSynonyms bulk-inserts a synonym set in one statement. Blank
// entries must already be filtered out by the caller.
func insertSynonyms(tx *database.Tx, wordID, languageID int64, synonyms []string) error {
	if len(synonyms) == 0 {
		return nil
	}

	values := strings.TrimSuffix(strings.Repeat("(?, ?, ?), ", len(synonyms)), ", ")
	args := make([]interface{}, 0, len(synonyms)*3)
	for _, s := range synonyms {
		args = append(args, wordID, languageID, s)
	}

	_, err := tx.Exec("INSERT INTO synonyms (word_id, language_id, synonym) VALUES "+values, args...)
	if err != nil {
		return fmt.Errorf("failed to insert synonyms: %w", err)
	}
	return nil
}
