package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	model "task-tracker.com/task-tracker/internal/models"
)

func optionalText(t *rapid.T, label string) *string {
	if !rapid.Bool().Draw(t, label+"_set") {
		return nil
	}
	s := rapid.String().Draw(t, label)
	return &s
}

// TestProperty_CreateRequestSurvivesAdapter checks that every wire field of a
// create request reaches the same storage field and comes back out unchanged.
func TestProperty_CreateRequestSurvivesAdapter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		req := CreateTaskRequest{
			Date:          rapid.String().Draw(t, "date"),
			EntityName:    rapid.String().Draw(t, "entityName"),
			TaskType:      rapid.String().Draw(t, "taskType"),
			Time:          rapid.String().Draw(t, "time"),
			ContactPerson: rapid.String().Draw(t, "contactPerson"),
			Notes:         optionalText(t, "notes"),
			Status:        rapid.String().Draw(t, "status"),
			PhoneNumber:   optionalText(t, "phoneNumber"),
		}

		task := NewTaskModel(req)
		task.ID = uint(rapid.IntRange(1, 1<<30).Draw(t, "id"))
		resp := NewTaskResponse(task)

		if resp.ID != task.ID {
			t.Fatalf("id = %d, want %d", resp.ID, task.ID)
		}
		if resp.Date != req.Date || resp.EntityName != req.EntityName || resp.TaskType != req.TaskType ||
			resp.Time != req.Time || resp.ContactPerson != req.ContactPerson || resp.Status != req.Status {
			t.Fatalf("response %+v does not match request %+v", resp, req)
		}
		if (resp.Notes == nil) != (req.Notes == nil) || (resp.Notes != nil && *resp.Notes != *req.Notes) {
			t.Fatalf("notes mismatch")
		}
		if (resp.PhoneNumber == nil) != (req.PhoneNumber == nil) || (resp.PhoneNumber != nil && *resp.PhoneNumber != *req.PhoneNumber) {
			t.Fatalf("phone number mismatch")
		}
	})
}

func TestProperty_UpdateColumnsOnlyForPresentFields(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		body := map[string]interface{}{}
		wire := map[string]string{"status": "status", "entityName": "entity_name", "notes": "notes"}
		for _, field := range []string{"entityName", "notes", "status"} {
			switch rapid.IntRange(0, 2).Draw(t, field) {
			case 1:
				body[field] = rapid.String().Draw(t, field+"_value")
			case 2:
				body[field] = nil
			}
		}
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		var req UpdateTaskRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		columns := req.Columns()
		if len(columns) != len(body) {
			t.Fatalf("got %d columns for %d fields", len(columns), len(body))
		}
		for field, value := range body {
			got, ok := columns[wire[field]]
			if !ok {
				t.Fatalf("column for %s missing", field)
			}
			if value == nil && got != nil {
				t.Fatalf("%s: expected nil, got %v", field, got)
			}
			if value != nil && got != value {
				t.Fatalf("%s: expected %v, got %v", field, value, got)
			}
		}
	})
}

func TestTaskResponse_JSONShape(t *testing.T) {
	created := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	task := &model.Task{
		ID:            7,
		Date:          "2025-06-14",
		EntityName:    "ABC Pvt Ltd",
		TaskType:      "Call",
		Time:          "10:00 AM",
		ContactPerson: "Ravi Kumar",
		Status:        model.StatusOpen,
		CreatedAt:     created,
		UpdatedAt:     created.Add(time.Minute),
	}

	raw, err := json.Marshal(NewTaskResponse(task))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Len(t, got, 11)
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "ABC Pvt Ltd", got["entityName"])
	assert.Equal(t, "Ravi Kumar", got["contactPerson"])
	assert.Nil(t, got["notes"])
	assert.Nil(t, got["phoneNumber"])
	assert.Equal(t, "2025-06-14T10:00:00Z", got["createdAt"])
	assert.Equal(t, "2025-06-14T10:01:00Z", got["updatedAt"])
}

func TestTaskResponse_ZeroTimestampsAreNull(t *testing.T) {
	resp := NewTaskResponse(&model.Task{ID: 1})
	assert.Nil(t, resp.CreatedAt)
	assert.Nil(t, resp.UpdatedAt)
}

func TestNewTaskResponses_EmptyIsNotNil(t *testing.T) {
	raw, err := json.Marshal(NewTaskResponses(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestOptionalString_Unmarshal(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Closed","notes":null}`), &req))

	assert.Equal(t, Some("Closed"), req.Status)
	assert.Equal(t, Null(), req.Notes)
	assert.False(t, req.EntityName.Set)
	assert.Equal(t, map[string]interface{}{"status": "Closed", "notes": nil}, req.Columns())
}

func TestOptionalString_RejectsNonString(t *testing.T) {
	var req UpdateTaskRequest
	assert.Error(t, json.Unmarshal([]byte(`{"status":42}`), &req))
}
