package model

import "time"

const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

type Task struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Date          string    `gorm:"size:20;not null"`
	EntityName    string    `gorm:"column:entity_name;size:255;not null"`
	TaskType      string    `gorm:"column:task_type;size:50;not null"`
	Time          string    `gorm:"size:20;not null"`
	ContactPerson string    `gorm:"column:contact_person;size:255;not null"`
	Notes         *string   `gorm:"type:text"`
	Status        string    `gorm:"size:20;not null;default:Open"`
	PhoneNumber   *string   `gorm:"column:phone_number;size:50"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
