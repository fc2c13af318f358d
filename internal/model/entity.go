package model

import "time"

// Fixed role ids, seeded in this order by cmd/seed.
const (
	RoleAdmin    = 1
	RoleManager  = 2
	RoleEmployee = 3
)

type Role struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:32" json:"name"`
}

type User struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       int       `json:"roleId"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Group struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:255" json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UserGroup struct {
	UserID   int       `gorm:"primaryKey" json:"userId"`
	GroupID  int       `gorm:"primaryKey" json:"groupId"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`
}

// WorkDayRecord is one user's attendance for one calendar date.
// At most one row exists per (user, date); the unique index backs the
// find-or-create race resolution in service.WorkDayService.
type WorkDayRecord struct {
	ID        int        `gorm:"primaryKey" json:"id"`
	UserID    int        `gorm:"uniqueIndex:uk_user_work_date" json:"userId"`
	WorkDate  string     `gorm:"size:10;uniqueIndex:uk_user_work_date" json:"workDate"`
	CheckIn   *time.Time `json:"checkIn"`
	CheckOut  *time.Time `json:"checkOut"`
	Note      *string    `json:"note"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Activity is a titled, timed entry attached to a WorkDayRecord.
// Start and end are wall-clock "HH:MM:SS" strings on the owning day.
type Activity struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	WorkDayID    int       `json:"workDayId"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	StartTime    string    `gorm:"size:8" json:"startTime"`
	EndTime      string    `gorm:"size:8" json:"endTime"`
	MinutesSpent int       `gorm:"default:0" json:"minutesSpent"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Role) TableName() string          { return "roles" }
func (User) TableName() string          { return "users" }
func (Group) TableName() string         { return "groups" }
func (UserGroup) TableName() string     { return "user_groups" }
func (WorkDayRecord) TableName() string { return "work_day_records" }
func (Activity) TableName() string      { return "activities" }
