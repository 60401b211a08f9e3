package models

import (
	"time"

	"gorm.io/gorm"
)

type ClassLevel string

const (
	LevelBeginner     ClassLevel = "beginner"
	LevelIntermediate ClassLevel = "intermediate"
	LevelAdvanced     ClassLevel = "advanced"
)

func (l ClassLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type ClassType string

const (
	TypeClass        ClassType = "class"
	TypeWorkshop     ClassType = "workshop"
	TypeConversation ClassType = "conversation"
)

func (t ClassType) Valid() bool {
	switch t {
	case TypeClass, TypeWorkshop, TypeConversation:
		return true
	}
	return false
}

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCancelled SessionStatus = "cancelled"
	SessionCompleted SessionStatus = "completed"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionScheduled, SessionCancelled, SessionCompleted:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingBooked    BookingStatus = "booked"
	BookingAttended  BookingStatus = "attended"
	BookingCancelled BookingStatus = "cancelled"
	BookingNoShow    BookingStatus = "no_show"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingBooked, BookingAttended, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

type LanguageClass struct {
	gorm.Model
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `json:"description"`
	Language        string     `gorm:"not null;index" json:"language"`
	Level           ClassLevel `gorm:"type:varchar(16)" json:"level"`
	Type            ClassType  `gorm:"type:varchar(16)" json:"type"`
	InstructorName  string     `json:"instructorName"`
	Location        string     `json:"location"`
	Address         string     `json:"address"`
	Price           int        `json:"price"` // minor currency units
	Duration        int        `json:"duration"`
	MaxStudents     int        `json:"maxStudents"`
	CurrentStudents int        `gorm:"default:0" json:"currentStudents"`
	ContactEmail    string     `json:"contactEmail"`
	ContactPhone    string     `json:"contactPhone"`
	IsActive        bool       `gorm:"default:true" json:"isActive"`

	Sessions []ClassSession `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE" json:"-"`
}

type ClassSession struct {
	gorm.Model
	ClassID          uint          `gorm:"not null;index" json:"classId"`
	StartTime        time.Time     `gorm:"not null;index" json:"startTime"`
	EndTime          time.Time     `json:"endTime"`
	AvailableSpots   int           `json:"availableSpots"`
	IsRecurring      bool          `gorm:"default:false" json:"isRecurring"`
	RecurringPattern string        `json:"recurringPattern"` // weekly, biweekly
	Status           SessionStatus `gorm:"type:varchar(16);default:scheduled" json:"status"`

	Class LanguageClass `gorm:"foreignKey:ClassID" json:"-"`
}

type UserBooking struct {
	gorm.Model
	UserID    uint          `gorm:"not null;index" json:"userId"`
	SessionID uint          `gorm:"not null;index" json:"sessionId"`
	Status    BookingStatus `gorm:"type:varchar(16);default:booked" json:"status"`
	BookedAt  time.Time     `json:"bookedAt"`
	Notes     string        `json:"notes"`

	User    User         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Session ClassSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

// ClassWithNextSession pairs a class with its earliest upcoming scheduled
// session, if any.
type ClassWithNextSession struct {
	LanguageClass
	NextSession    *ClassSession `json:"nextSession"`
	AvailableSpots int           `json:"availableSpots"`
}

// SessionWithClass is a session joined with its class offering.
type SessionWithClass struct {
	ClassSession
	ClassInfo LanguageClass `json:"class"`
}

// BookingDetails is a booking joined with its session and class.
type BookingDetails struct {
	UserBooking
	SessionInfo ClassSession  `json:"session"`
	ClassInfo   LanguageClass `json:"class"`
}
