package model

import "time"

// TaskModel mirrors the 'tasks' table. OwnerID references users.id.
type TaskModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:text"`
	Done        bool   `gorm:"not null;default:false"`
	OwnerID     int64  `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
