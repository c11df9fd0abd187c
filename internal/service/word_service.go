package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"mondict/internal/models"
	"mondict/internal/repository"
	"mondict/internal/validation"
)

var (
	ErrWordNotFound     = errors.New("word not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNoMatches        = errors.New("no matching words found")
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// WordService implements the word read/write pipeline: search, pagination,
// random/daily selection and the transactional multi-table mutations
type WordService struct {
	wordRepo     *repository.WordRepository
	categoryRepo *repository.CategoryRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo *repository.WordRepository, categoryRepo *repository.CategoryRepository) *WordService {
	return &WordService{
		wordRepo:     wordRepo,
		categoryRepo: categoryRepo,
	}
}

// SearchWords runs a free-text search and returns the full result set.
// An empty result is ErrNoMatches, not an empty-list success.
func (s *WordService) SearchWords(query string) ([]models.WordRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, validation.ValidationError{Field: "query", Message: "search query is required"}
	}

	records, err := s.wordRepo.SearchWords(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search words: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoMatches
	}
	return records, nil
}

// clampPage floors page and pageSize at 1, substituting defaults for
// zero values
func clampPage(page, pageSize int) (int, int) {
	if page == 0 {
		page = defaultPage
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return page, pageSize
}

// buildPagination derives the pagination envelope for a page of a result
// set of the given total size
func buildPagination(page, pageSize int, total int64) models.Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return models.Pagination{
		CurrentPage:     page,
		PageSize:        pageSize,
		TotalItems:      total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1 && total > 0,
	}
}

// PaginatedSearchWords returns one page of a filtered search. With neither
// a query nor a posID there is nothing to filter on, and the contract is
// an empty page with a zero total rather than an unfiltered scan.
func (s *WordService) PaginatedSearchWords(query string, page, pageSize int, posID int64) (*models.WordPage, error) {
	page, pageSize = clampPage(page, pageSize)

	if strings.TrimSpace(query) == "" && posID <= 0 {
		return &models.WordPage{
			Data:       []models.WordRecord{},
			Pagination: buildPagination(page, pageSize, 0),
		}, nil
	}

	total, err := s.wordRepo.CountPaginatedSearch(query, posID)
	if err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	offset := (page - 1) * pageSize
	records, err := s.wordRepo.PaginatedSearch(query, posID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to run paginated search: %w", err)
	}
	if records == nil {
		records = []models.WordRecord{}
	}

	return &models.WordPage{
		Data:       records,
		Pagination: buildPagination(page, pageSize, total),
	}, nil
}

// GetWordsByCategory returns one page of words in a category ordered by
// word text, along with the resolved category
func (s *WordService) GetWordsByCategory(categoryID int64, page, pageSize int) (*models.WordPage, *models.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	if category == nil {
		return nil, nil, ErrCategoryNotFound
	}

	page, pageSize = clampPage(page, pageSize)

	total, err := s.wordRepo.CountByCategory(categoryID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count words in category: %w", err)
	}

	offset := (page - 1) * pageSize
	records, err := s.wordRepo.GetByCategory(categoryID, pageSize, offset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get words in category: %w", err)
	}
	if records == nil {
		records = []models.WordRecord{}
	}

	return &models.WordPage{
		Data:       records,
		Pagination: buildPagination(page, pageSize, total),
	}, category, nil
}

// SearchWordsInCategory combines a category filter with a text predicate
// restricted to the caller-selected fields
func (s *WordService) SearchWordsInCategory(categoryID int64, query string, page, pageSize int, searchFields []string) (*models.WordPage, *models.Category, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil, validation.ValidationError{Field: "query", Message: "search query is required"}
	}
	if err := validation.ValidateSearchFields(searchFields); err != nil {
		return nil, nil, err
	}

	category, err := s.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	if category == nil {
		return nil, nil, ErrCategoryNotFound
	}

	page, pageSize = clampPage(page, pageSize)

	total, err := s.wordRepo.CountSearchInCategory(categoryID, query, searchFields)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count category search results: %w", err)
	}

	offset := (page - 1) * pageSize
	records, err := s.wordRepo.SearchInCategory(categoryID, query, searchFields, pageSize, offset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search words in category: %w", err)
	}
	if records == nil {
		records = []models.WordRecord{}
	}

	return &models.WordPage{
		Data:       records,
		Pagination: buildPagination(page, pageSize, total),
	}, category, nil
}

// GetRandomWords samples up to count distinct word ids uniformly from
// [1, total], resampling on collision until the set is full or the
// population is exhausted
func (s *WordService) GetRandomWords(count int) ([]models.WordRecord, error) {
	if count < 1 {
		count = 1
	}

	total, err := s.wordRepo.CountWords()
	if err != nil {
		return nil, fmt.Errorf("failed to count words: %w", err)
	}
	if total == 0 {
		return []models.WordRecord{}, nil
	}
	if int64(count) > total {
		count = int(total)
	}

	picked := make(map[int64]bool, count)
	ids := make([]int64, 0, count)
	for len(ids) < count {
		id := rand.Int63n(total) + 1
		if picked[id] {
			continue
		}
		picked[id] = true
		ids = append(ids, id)
	}

	records, err := s.wordRepo.GetWordRecordsByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch random words: %w", err)
	}
	if records == nil {
		records = []models.WordRecord{}
	}
	return records, nil
}

// GetWordOfTheDay deterministically selects one word for the current
// calendar day. The same date always resolves to the same word; nil is
// returned when the store is empty.
func (s *WordService) GetWordOfTheDay() (*models.WordRecord, error) {
	total, err := s.wordRepo.CountWords()
	if err != nil {
		return nil, fmt.Errorf("failed to count words: %w", err)
	}
	if total == 0 {
		return nil, nil
	}

	wordID := wordOfTheDayID(time.Now(), total)
	record, err := s.wordRepo.GetWordRecordByID(wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch word of the day: %w", err)
	}
	return record, nil
}

// wordOfTheDayID maps a calendar date onto the word id space:
// seed = year*10000 + month*100 + day, id = (seed mod total) + 1
func wordOfTheDayID(t time.Time, total int64) int64 {
	seed := int64(t.Year())*10000 + int64(t.Month())*100 + int64(t.Day())
	return (seed % total) + 1
}

// GetWordByID retrieves one denormalized word record
func (s *WordService) GetWordByID(wordID int64) (*models.WordRecord, error) {
	record, err := s.wordRepo.GetWordRecordByID(wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}
	if record == nil {
		return nil, ErrWordNotFound
	}
	return record, nil
}

// AddWord validates and creates a word with its definitions and synonyms
// in one transaction, then reloads the denormalized record
func (s *WordService) AddWord(input *models.WordInput) (int64, []int64, *models.WordRecord, error) {
	if err := validation.ValidateWordInput(input); err != nil {
		return 0, nil, nil, err
	}
	input.Synonyms = validation.NormalizeSynonyms(input.Synonyms)

	wordID, definitionIDs, err := s.wordRepo.CreateWord(input)
	if err != nil {
		return 0, nil, nil, err
	}

	record, err := s.wordRepo.GetWordRecordByID(wordID)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to reload word record: %w", err)
	}
	return wordID, definitionIDs, record, nil
}

// UpdateWord validates and applies a word update in one transaction, then
// reloads the denormalized record. ErrWordNotFound is returned with zero
// side effects when the target does not exist.
func (s *WordService) UpdateWord(wordID int64, input *models.WordInput) ([]int64, *models.WordRecord, error) {
	if err := validation.ValidateWordInput(input); err != nil {
		return nil, nil, err
	}
	input.Synonyms = validation.NormalizeSynonyms(input.Synonyms)

	definitionIDs, found, err := s.wordRepo.UpdateWord(wordID, input)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, ErrWordNotFound
	}

	record, err := s.wordRepo.GetWordRecordByID(wordID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reload word record: %w", err)
	}
	return definitionIDs, record, nil
}

// DeleteWord removes a word with its definitions and synonyms, reporting
// how many definitions were deleted
func (s *WordService) DeleteWord(wordID int64) (int64, error) {
	definitionsDeleted, found, err := s.wordRepo.DeleteWord(wordID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrWordNotFound
	}
	return definitionsDeleted, nil
}
