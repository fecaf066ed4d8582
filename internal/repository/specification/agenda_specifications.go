package specification

import "gorm.io/gorm"

// ByCompleted filters agenda items by completion state.
type ByCompleted struct {
	Completed bool
}

func (s ByCompleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("completed = ?", s.Completed)
}

// DateOnOrAfter matches items whose ISO date column is today or later.
// Lexicographic comparison is valid for YYYY-MM-DD strings.
type DateOnOrAfter struct {
	Date string
}

func (s DateOnOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ?", s.Date)
}

// ByDate matches items on an exact ISO date.
type ByDate struct {
	Date string
}

func (s ByDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", s.Date)
}

// BySessionId filters conversation turns by dialogue session.
type BySessionId struct {
	SessionId string
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}
