// Package fixtures loads sample tasks used to seed an empty store.
package fixtures

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	dto "task-tracker.com/task-tracker/internal/data_models"
)

//go:embed sample_tasks.yaml
var sampleTasks []byte

// Default returns the built-in sample tasks.
func Default() ([]dto.CreateTaskRequest, error) {
	return parse(sampleTasks)
}

// LoadFile reads a YAML list of tasks using the same camelCase keys as the
// JSON API.
func LoadFile(path string) ([]dto.CreateTaskRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixtures: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]dto.CreateTaskRequest, error) {
	var tasks []dto.CreateTaskRequest
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}
	return tasks, nil
}
