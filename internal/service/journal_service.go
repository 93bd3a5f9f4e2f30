package service

import (
	"strings"
	"time"

	"habit_streak_backend/internal/model"
	"habit_streak_backend/internal/util"
)

type JournalRepo interface {
	Upsert(userID uint, date, note string) error
	FindByMonth(userID uint, year, month int) ([]model.Journal, error)
	FindRecent(userID uint, limit int) ([]model.Journal, error)
}

type JournalService struct {
	Journals JournalRepo
}

func NewJournalService(journals JournalRepo) *JournalService {
	return &JournalService{Journals: journals}
}

// Save upserts the note for a calendar day. Validation happens before any
// write: bad dates and over-long notes never reach the store.
func (s *JournalService) Save(userID uint, date, note string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return util.ErrInvalidDate
	}

	note = strings.TrimSpace(util.Sanitize(note))
	if len([]rune(note)) > model.MaxJournalNoteLen {
		return util.ErrNoteTooLong
	}

	return s.Journals.Upsert(userID, date, note)
}

func (s *JournalService) Month(userID uint, year, month int) ([]model.Journal, error) {
	if month < 1 || month > 12 {
		return nil, util.ErrInvalidDate
	}
	return s.Journals.FindByMonth(userID, year, month)
}

func (s *JournalService) Recent(userID uint, limit int) ([]model.Journal, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	return s.Journals.FindRecent(userID, limit)
}
