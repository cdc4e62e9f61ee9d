package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novemberColumns(t *testing.T) []DayColumn {
	t.Helper()

	p, err := MonthPeriod(2024, 10)
	require.NoError(t, err)
	cols, err := BuildColumns(p)
	require.NoError(t, err)
	return cols
}

func TestParseLeaves(t *testing.T) {
	tests := []struct {
		name   string
		leaves string
		want   []string
	}{
		{"empty", "", nil},
		{"only separators", " , ,, ", nil},
		{"no spaces", "01,02", []string{"01", "02"}},
		{"spaces around tokens", " 05 ,  12,23 ", []string{"05", "12", "23"}},
		{"duplicates", "05, 05", []string{"05"}},
		{"malformed kept as tokens", "abc, 99", []string{"abc", "99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLeaves(tt.leaves)
			assert.Len(t, got, len(tt.want))
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestFormatRowNoLeaves(t *testing.T) {
	cols := novemberColumns(t)

	row := FormatRow(Employee{ID: 1, Name: "A"}, cols)
	require.Len(t, row, len(cols))

	for _, c := range cols {
		if c.IsWeekend {
			assert.Equal(t, NonWorking, row[c.Key], c.Key)
		} else {
			assert.Equal(t, Present, row[c.Key], c.Key)
		}
	}
}

func TestFormatRowWeekdayLeaves(t *testing.T) {
	cols := novemberColumns(t)

	// 05.11.2024 - вторник, 12.11.2024 - вторник
	row := FormatRow(Employee{ID: 2, Name: "B", Leaves: "05, 12"}, cols)

	assert.Equal(t, Absent, row["05"])
	assert.Equal(t, Absent, row["12"])
	for _, c := range cols {
		if c.Key == "05" || c.Key == "12" {
			continue
		}
		if c.IsWeekend {
			assert.Equal(t, NonWorking, row[c.Key], c.Key)
		} else {
			assert.Equal(t, Present, row[c.Key], c.Key)
		}
	}
}

func TestFormatRowIgnoresUnknownTokens(t *testing.T) {
	cols := novemberColumns(t)

	clean := FormatRow(Employee{ID: 3, Name: "C"}, cols)
	noisy := FormatRow(Employee{ID: 3, Name: "C", Leaves: "99, abc, 5, 31, -1,"}, cols)

	assert.Equal(t, clean, noisy)
	assert.NotContains(t, noisy, "99")
}

func TestFormatRowWeekendOverridesLeave(t *testing.T) {
	cols := novemberColumns(t)

	row := FormatRow(Employee{ID: 1, Name: "A", Leaves: "02,03"}, cols)
	assert.Equal(t, NonWorking, row["02"])
	assert.Equal(t, NonWorking, row["03"])
}

func TestFormatRowIdempotent(t *testing.T) {
	cols := novemberColumns(t)
	e := Employee{ID: 4, Name: "D", Leaves: "07, 08, 21"}

	assert.Equal(t, FormatRow(e, cols), FormatRow(e, cols))
}

func TestFormatRowEmptyColumns(t *testing.T) {
	row := FormatRow(Employee{ID: 1, Leaves: "01"}, nil)
	assert.Empty(t, row)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "P", Present.String())
	assert.Equal(t, "A", Absent.String())
	assert.Equal(t, "-", NonWorking.String())
	assert.Equal(t, "?", Status(42).String())
}
