// Package export renders task lists as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	dto "task-tracker.com/task-tracker/internal/data_models"
)

const (
	SheetName   = "Tasks"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []interface{}{
	"ID", "Date", "Entity Name", "Task Type", "Time", "Contact Person",
	"Notes", "Status", "Phone Number", "Created At", "Updated At",
}

// WriteTasks writes a workbook with a header row followed by one row per task.
func WriteTasks(w io.Writer, tasks []dto.TaskResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1565C0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, t := range tasks {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			t.ID, t.Date, t.EntityName, t.TaskType, t.Time, t.ContactPerson,
			deref(t.Notes), t.Status, deref(t.PhoneNumber), deref(t.CreatedAt), deref(t.UpdatedAt),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "B", "K", 20); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
