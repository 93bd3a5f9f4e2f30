package model

// Journal is one note per user per calendar day. The (user_id, date)
// unique index enforces the at-most-one-entry invariant; writes go through
// an upsert so a same-day save replaces the existing note.
type Journal struct {
	BaseModel
	UserID uint   `gorm:"index:idx_user_date,unique;not null" json:"userId"`
	Date   string `gorm:"index:idx_user_date,unique;size:10;not null" json:"date"` // YYYY-MM-DD
	Note   string `gorm:"type:text" json:"note"`
}

func (Journal) TableName() string {
	return "journals"
}

// MaxJournalNoteLen caps a note at 1000 characters.
const MaxJournalNoteLen = 1000
