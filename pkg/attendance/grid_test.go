package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridNovember2024(t *testing.T) {
	p, err := MonthPeriod(2024, 10)
	require.NoError(t, err)

	grid, err := BuildGrid(p, []Employee{{ID: 1, Name: "A", Leaves: "01,02"}})
	require.NoError(t, err)

	require.Len(t, grid.Columns, 30)
	assert.Equal(t, "01", grid.Columns[0].Key)
	assert.Equal(t, "30", grid.Columns[29].Key)

	require.Len(t, grid.Rows, 1)
	row := grid.Rows[0]

	status, ok := row.Status("01")
	require.True(t, ok)
	assert.Equal(t, Absent, status)

	status, ok = row.Status("02")
	require.True(t, ok)
	assert.Equal(t, NonWorking, status)

	// ноябрь 2024: 21 будний день, 9 выходных
	assert.Equal(t, 21, grid.WorkingDays())
	assert.Equal(t, Totals{Present: 20, Absent: 1, NonWorking: 9}, row.Totals)
	assert.Equal(t, 1, row.Count(Absent))
	assert.Equal(t, 20, row.Count(Present))
	assert.Equal(t, 9, row.Count(NonWorking))
}

func TestBuildGridKeepsEmployeeOrder(t *testing.T) {
	p, err := MonthPeriod(2024, 10)
	require.NoError(t, err)

	employees := []Employee{
		{ID: 3, Name: "C"},
		{ID: 1, Name: "A", Leaves: "04"},
		{ID: 2, Name: "B", Leaves: "99"},
	}
	grid, err := BuildGrid(p, employees)
	require.NoError(t, err)

	require.Len(t, grid.Rows, 3)
	for i, e := range employees {
		assert.Equal(t, e, grid.Rows[i].Employee)
	}
	assert.Equal(t, 0, grid.Rows[2].Totals.Absent)
}

func TestBuildGridNoEmployees(t *testing.T) {
	p, err := MonthPeriod(2023, 1)
	require.NoError(t, err)

	grid, err := BuildGrid(p, nil)
	require.NoError(t, err)
	assert.Len(t, grid.Columns, 28)
	assert.Empty(t, grid.Rows)
}

func TestBuildGridInvalidPeriod(t *testing.T) {
	_, err := BuildGrid(Period{}, []Employee{{ID: 1}})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestBuildGridIdempotent(t *testing.T) {
	p, err := MonthPeriod(2024, 10)
	require.NoError(t, err)
	employees := []Employee{{ID: 1, Name: "A", Leaves: "05, 12"}}

	first, err := BuildGrid(p, employees)
	require.NoError(t, err)
	second, err := BuildGrid(p, employees)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
