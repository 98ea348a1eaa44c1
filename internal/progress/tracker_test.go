package progress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enriched.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	processed, err := Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	require.NoError(t, err)
	assert.Empty(t, processed)
}

func TestLoad_EmptyFile(t *testing.T) {
	processed, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, processed)
}

func TestLoad_NormalizesKeys(t *testing.T) {
	path := writeFile(t, "name,url\n Acme College ,http://acme.edu\nBETA UNIVERSITY,http://beta.edu\n")

	processed, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, processed, 2)
	assert.True(t, processed["acme college"])
	assert.True(t, processed["beta university"])
}

func TestLoad_NameColumnNotFirst(t *testing.T) {
	path := writeFile(t, "url,name\nhttp://acme.edu,Acme College\n")

	processed, err := Load(path)
	require.NoError(t, err)
	assert.True(t, processed["acme college"])
}

func TestLoad_CorruptFileIsBestEffort(t *testing.T) {
	// Unterminated quote after two good rows.
	path := writeFile(t, "name,url\nAcme College,http://acme.edu\nBeta University,http://beta.edu\n\"broken,row\n")

	processed, err := Load(path)
	assert.Error(t, err)
	assert.True(t, processed["acme college"])
	assert.True(t, processed["beta university"])
}

func TestLoad_ShortRowsSkipped(t *testing.T) {
	path := writeFile(t, "url,name\nhttp://acme.edu\nhttp://beta.edu,Beta University\n")

	processed, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, processed, 1)
	assert.True(t, processed["beta university"])
}
