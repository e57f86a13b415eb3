package validators

import (
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// ValidateCreateTaskRequest reports the first required field that is missing
// or empty. Only presence is checked.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"entityName", r.EntityName},
		{"taskType", r.TaskType},
		{"time", r.Time},
		{"contactPerson", r.ContactPerson},
		{"date", r.Date},
		{"status", r.Status},
	}

	for _, f := range required {
		if f.value == "" {
			return apperrors.NewMissingField(f.name)
		}
	}
	return nil
}

// ValidateUpdateTaskRequest rejects explicit nulls for columns that cannot be null.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Status.Set && !r.Status.Valid {
		return apperrors.NewInvalidField("status")
	}
	if r.EntityName.Set && !r.EntityName.Valid {
		return apperrors.NewInvalidField("entityName")
	}
	return nil
}
