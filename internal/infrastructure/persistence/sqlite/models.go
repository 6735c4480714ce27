package sqlite

import (
	"time"

	"github.com/google/uuid"
)

// Dates are stored as YYYY-MM-DD text to keep them independent of the
// time zone of the process that wrote them.

type programModel struct {
	ID              uint      `gorm:"primaryKey"`
	Name            string    `gorm:"type:text;not null"`
	Degree          string    `gorm:"type:text;not null"`
	TotalSemesters  int       `gorm:"not null"`
	TargetAverage   float64   `gorm:"not null"`
	TargetSemesters int       `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (programModel) TableName() string { return "programs" }

type semesterModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProgramID uint   `gorm:"index;not null"`
	Number    int    `gorm:"not null"`
	Label     string `gorm:"type:text;not null"`
	StartDate string `gorm:"type:text;not null"`
	EndDate   string `gorm:"type:text;not null"`
}

func (semesterModel) TableName() string { return "semesters" }

type moduleModel struct {
	ID                  uuid.UUID `gorm:"type:text;primaryKey"`
	Code                string    `gorm:"type:text;not null"`
	Name                string    `gorm:"type:text;not null"`
	Credits             int       `gorm:"not null"`
	RecommendedSemester int       `gorm:"not null"`
	Status              string    `gorm:"type:text;not null"`
}

func (moduleModel) TableName() string { return "modules" }

// membershipModel places a module in a semester. Position keeps the
// insertion order.
type membershipModel struct {
	SemesterID uint      `gorm:"primaryKey"`
	ModuleID   uuid.UUID `gorm:"type:text;primaryKey"`
	Position   int       `gorm:"not null"`
}

func (membershipModel) TableName() string { return "semester_modules" }

type examinationModel struct {
	ModuleID uuid.UUID `gorm:"type:text;primaryKey"`
	Score    float64   `gorm:"not null"`
	Date     string    `gorm:"type:text;not null"`
	Attempt  int       `gorm:"not null"`
	Kind     string    `gorm:"type:text;not null"`
}

func (examinationModel) TableName() string { return "examinations" }
