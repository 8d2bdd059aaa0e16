package proglist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticListerDefaultCatalog(t *testing.T) {
	lister := NewStaticLister(nil)

	programs, err := lister.ListDegreePrograms(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, programs)

	assert.Equal(t, "CS01", programs[0].Code)
	assert.Equal(t, "Computer Science", programs[0].Name)
	assert.True(t, Exists(programs, "CS01"))
	assert.False(t, Exists(programs, "XX99"))
}

func TestStaticListerReturnsCopy(t *testing.T) {
	lister := NewStaticLister([]DegreeProgram{
		{Code: "CS01", Name: "Computer Science"},
		{Code: "SE02", Name: "Software Engineering"},
	})

	first, err := lister.ListDegreePrograms(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := lister.ListDegreePrograms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", second[0].Name)
}

func TestReadCatalogFile(t *testing.T) {
	content := `
[[programs]]
code = "CS01"
name = "Computer Science"

[[programs]]
code = "LW08"
name = "Law"
`
	path := filepath.Join(t.TempDir(), "programs.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	programs, err := ReadCatalogFile(path)
	require.NoError(t, err)
	require.Len(t, programs, 2)

	// File order is presentation order.
	assert.Equal(t, DegreeProgram{Code: "CS01", Name: "Computer Science"}, programs[0])
	assert.Equal(t, DegreeProgram{Code: "LW08", Name: "Law"}, programs[1])
}

func TestReadCatalogFileRejectsIncompleteEntries(t *testing.T) {
	content := `
[[programs]]
code = "CS01"
`
	path := filepath.Join(t.TempDir(), "programs.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := ReadCatalogFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CS01")
}
