package dto

import (
	"encoding/json"
	"time"

	model "task-tracker.com/task-tracker/internal/models"
)

type CreateTaskRequest struct {
	Date          string  `json:"date" yaml:"date"`
	EntityName    string  `json:"entityName" yaml:"entityName"`
	TaskType      string  `json:"taskType" yaml:"taskType"`
	Time          string  `json:"time" yaml:"time"`
	ContactPerson string  `json:"contactPerson" yaml:"contactPerson"`
	Notes         *string `json:"notes" yaml:"notes"`
	Status        string  `json:"status" yaml:"status"`
	PhoneNumber   *string `json:"phoneNumber" yaml:"phoneNumber"`
}

// UpdateTaskRequest carries the mutable subset of a task. Fields absent from
// the request body stay unset and are left untouched.
type UpdateTaskRequest struct {
	Status     OptionalString `json:"status"`
	EntityName OptionalString `json:"entityName"`
	Notes      OptionalString `json:"notes"`
}

// OptionalString distinguishes an absent JSON member from an explicit null.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		o.Value = ""
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func Some(v string) OptionalString {
	return OptionalString{Set: true, Valid: true, Value: v}
}

func Null() OptionalString {
	return OptionalString{Set: true}
}

type TaskResponse struct {
	ID            uint    `json:"id"`
	Date          string  `json:"date"`
	EntityName    string  `json:"entityName"`
	TaskType      string  `json:"taskType"`
	Time          string  `json:"time"`
	ContactPerson string  `json:"contactPerson"`
	Notes         *string `json:"notes"`
	Status        string  `json:"status"`
	PhoneNumber   *string `json:"phoneNumber"`
	CreatedAt     *string `json:"createdAt"`
	UpdatedAt     *string `json:"updatedAt"`
}

// NewTaskModel maps the wire fields of a create request onto the storage model.
// Identity and timestamps are left for the repository to assign.
func NewTaskModel(req CreateTaskRequest) *model.Task {
	return &model.Task{
		Date:          req.Date,
		EntityName:    req.EntityName,
		TaskType:      req.TaskType,
		Time:          req.Time,
		ContactPerson: req.ContactPerson,
		Notes:         req.Notes,
		Status:        req.Status,
		PhoneNumber:   req.PhoneNumber,
	}
}

// Columns returns the storage columns touched by the update, keyed by column
// name. Explicit nulls map to nil.
func (r UpdateTaskRequest) Columns() map[string]interface{} {
	columns := make(map[string]interface{}, 3)
	for column, field := range map[string]OptionalString{
		"status":      r.Status,
		"entity_name": r.EntityName,
		"notes":       r.Notes,
	} {
		if !field.Set {
			continue
		}
		if !field.Valid {
			columns[column] = nil
			continue
		}
		columns[column] = field.Value
	}
	return columns
}

func NewTaskResponse(t *model.Task) TaskResponse {
	return TaskResponse{
		ID:            t.ID,
		Date:          t.Date,
		EntityName:    t.EntityName,
		TaskType:      t.TaskType,
		Time:          t.Time,
		ContactPerson: t.ContactPerson,
		Notes:         t.Notes,
		Status:        t.Status,
		PhoneNumber:   t.PhoneNumber,
		CreatedAt:     formatTimestamp(t.CreatedAt),
		UpdatedAt:     formatTimestamp(t.UpdatedAt),
	}
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}

func formatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
