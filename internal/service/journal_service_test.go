package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"habit_streak_backend/internal/model"
	"habit_streak_backend/internal/util"
)

type memJournalRepo struct {
	notes map[uint]map[string]string
}

func newMemJournalRepo() *memJournalRepo {
	return &memJournalRepo{notes: make(map[uint]map[string]string)}
}

func (r *memJournalRepo) Upsert(userID uint, date, note string) error {
	if r.notes[userID] == nil {
		r.notes[userID] = make(map[string]string)
	}
	r.notes[userID][date] = note
	return nil
}

func (r *memJournalRepo) FindByMonth(userID uint, year, month int) ([]model.Journal, error) {
	var out []model.Journal
	want := fmt.Sprintf("%04d-%02d", year, month)
	for date, note := range r.notes[userID] {
		if strings.HasPrefix(date, want) {
			out = append(out, model.Journal{UserID: userID, Date: date, Note: note})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *memJournalRepo) FindRecent(userID uint, limit int) ([]model.Journal, error) {
	var out []model.Journal
	for date, note := range r.notes[userID] {
		out = append(out, model.Journal{UserID: userID, Date: date, Note: note})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestJournalSaveAndReplace(t *testing.T) {
	repo := newMemJournalRepo()
	svc := NewJournalService(repo)

	if err := svc.Save(1, "2025-06-01", "first draft"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Save(1, "2025-06-01", "second draft"); err != nil {
		t.Fatalf("Save replace: %v", err)
	}

	if got := repo.notes[1]["2025-06-01"]; got != "second draft" {
		t.Errorf("stored note = %q, want the replacement", got)
	}
	if len(repo.notes[1]) != 1 {
		t.Errorf("rows for the day = %d, want 1", len(repo.notes[1]))
	}
}

func TestJournalSaveRejectsBadDate(t *testing.T) {
	svc := NewJournalService(newMemJournalRepo())

	for _, date := range []string{"2025/06/01", "01-06-2025", "2025-13-01", "yesterday", ""} {
		if err := svc.Save(1, date, "note"); !errors.Is(err, util.ErrInvalidDate) {
			t.Errorf("Save(%q) error = %v, want ErrInvalidDate", date, err)
		}
	}
}

func TestJournalSaveRejectsOverlongNote(t *testing.T) {
	repo := newMemJournalRepo()
	svc := NewJournalService(repo)

	long := strings.Repeat("あ", model.MaxJournalNoteLen+1)
	if err := svc.Save(1, "2025-06-01", long); !errors.Is(err, util.ErrNoteTooLong) {
		t.Errorf("Save overlong error = %v, want ErrNoteTooLong", err)
	}
	if len(repo.notes[1]) != 0 {
		t.Error("overlong note reached the store")
	}

	// Exactly at the limit is fine; the limit counts runes, not bytes.
	exact := strings.Repeat("あ", model.MaxJournalNoteLen)
	if err := svc.Save(1, "2025-06-01", exact); err != nil {
		t.Errorf("Save at limit: %v", err)
	}
}

func TestJournalSaveAllowsEmptyNote(t *testing.T) {
	repo := newMemJournalRepo()
	svc := NewJournalService(repo)

	if err := svc.Save(1, "2025-06-01", ""); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	if _, ok := repo.notes[1]["2025-06-01"]; !ok {
		t.Error("empty note was not stored")
	}
}

func TestJournalMonthValidatesRange(t *testing.T) {
	svc := NewJournalService(newMemJournalRepo())

	for _, month := range []int{0, 13, -1} {
		if _, err := svc.Month(1, 2025, month); !errors.Is(err, util.ErrInvalidDate) {
			t.Errorf("Month(%d) error = %v, want ErrInvalidDate", month, err)
		}
	}
}

func TestJournalRecentClampsLimit(t *testing.T) {
	repo := newMemJournalRepo()
	svc := NewJournalService(repo)

	for _, d := range []string{"2025-06-01", "2025-06-02", "2025-06-03"} {
		if err := svc.Save(1, d, "note "+d); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	got, err := svc.Recent(1, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d entries", len(got))
	}
	if got[0].Date != "2025-06-03" {
		t.Errorf("Recent[0] = %s, want newest first", got[0].Date)
	}
}
