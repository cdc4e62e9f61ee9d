package mockdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"attendance-bot/pkg/attendance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmployees(t *testing.T) {
	input := `[
		{"id": 1, "name": " Alice ", "leaves": "05, 12"},
		{"id": 2, "name": "Bob", "leaves": ""}
	]`

	got, err := ParseEmployees(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []attendance.Employee{
		{ID: 1, Name: "Alice", Leaves: "05, 12"},
		{ID: 2, Name: "Bob", Leaves: ""},
	}, got)
}

func TestParseEmployeesErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"not json", `{`, "failed to unmarshal JSON"},
		{"object instead of array", `{"id": 1}`, "failed to unmarshal JSON"},
		{"empty name", `[{"id": 1, "name": "  "}]`, "name is empty"},
		{"zero id", `[{"id": 0, "name": "A"}]`, "id must be positive"},
		{"duplicate id", `[{"id": 1, "name": "A"}, {"id": 1, "name": "B"}]`, "duplicate id 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEmployees(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseEmployeesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 7, "name": "Eve", "leaves": "01"}]`), 0o644))

	got, err := ParseEmployeesJSON(path)
	require.NoError(t, err)
	assert.Equal(t, []attendance.Employee{{ID: 7, Name: "Eve", Leaves: "01"}}, got)
}

func TestParseEmployeesJSONMissingFile(t *testing.T) {
	_, err := ParseEmployeesJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open JSON file")
}

func TestParseEmployeesJSONFixture(t *testing.T) {
	got, err := ParseEmployeesJSON(filepath.Join("..", "..", "testdata", "employees.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
