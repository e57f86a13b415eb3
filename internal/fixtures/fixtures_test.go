package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tasks, err := Default()
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "ABC Pvt Ltd", tasks[0].EntityName)
	assert.Equal(t, "Ravi Kumar", tasks[0].ContactPerson)
	require.NotNil(t, tasks[0].PhoneNumber)
	assert.Equal(t, "+91-9876543210", *tasks[0].PhoneNumber)

	assert.Equal(t, "Closed", tasks[1].Status)
	assert.Nil(t, tasks[1].PhoneNumber)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`- date: "2025-07-01"
  entityName: Acme
  taskType: Email
  time: "09:00 AM"
  contactPerson: Jane Doe
  status: Open
`), 0o600))

	tasks, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Acme", tasks[0].EntityName)
	assert.Nil(t, tasks[0].Notes)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entityName: [unterminated"), 0o600))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
