package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/college-enricher/internal/types"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestNewWriter_WritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched.csv")

	w, err := NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(&types.CollegeRecord{Name: "Acme College", URL: "http://acme.edu"}))
	require.NoError(t, w.Close())

	// Reopen in append mode; the header must not repeat.
	w, err = NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(&types.CollegeRecord{Name: "Beta University", URL: "http://beta.edu"}))
	require.NoError(t, w.Close())

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, types.OutputColumns, rows[0])
	assert.Equal(t, "Acme College", rows[1][0])
	assert.Equal(t, "Beta University", rows[2][0])
}

func TestAppend_FixedColumnOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched.csv")

	record := &types.CollegeRecord{
		Name:           "Test College",
		URL:            "http://test.edu",
		City:           "Springfield",
		State:          "MA",
		AcceptanceRate: floatPtr(0.45),
		PopularMajors:  types.MajorsList{"Biology", "Economics"},
		TestOptional:   boolPtr(true),
	}

	w, err := NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(record))
	require.NoError(t, w.Close())

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	header, row := rows[0], rows[1]
	require.Len(t, row, len(header))

	byColumn := make(map[string]string, len(header))
	for i, col := range header {
		byColumn[col] = row[i]
	}

	assert.Equal(t, "Test College", byColumn["name"])
	assert.Equal(t, "http://test.edu", byColumn["url"])
	assert.Equal(t, "0.45", byColumn["acceptance_rate"])
	assert.Equal(t, "Biology, Economics", byColumn["popular_majors"])
	assert.Equal(t, "true", byColumn["test_optional"])

	// Absent optional attributes persist as empty cells.
	assert.Equal(t, "", byColumn["sat_50th_percentile"])
	assert.Equal(t, "", byColumn["ipeds_id"])
	assert.Equal(t, "", byColumn["housing_available"])
}

func TestAppend_RowDurableBeforeNextWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched.csv")

	w, err := NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(&types.CollegeRecord{Name: "Acme College"}))

	// Without closing the writer, the file already contains the full row.
	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme College", rows[1][0])
	require.NoError(t, w.Close())
}

func TestAppend_EmptyMajorsListSerializesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched.csv")

	w, err := NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(&types.CollegeRecord{Name: "Acme College", PopularMajors: types.MajorsList{}}))
	require.NoError(t, w.Close())

	rows := readRows(t, path)
	byColumn := make(map[string]string)
	for i, col := range rows[0] {
		byColumn[col] = rows[1][i]
	}
	assert.Equal(t, "", byColumn["popular_majors"])
}
