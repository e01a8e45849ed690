package migration

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Create Properties Table")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.True(t, strings.HasSuffix(mf.UpPath, "_create_properties_table.up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, "_create_properties_table.down.sql"))

	for _, path := range []string{mf.UpPath, mf.DownPath} {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Create Properties Table")
	}
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"Create Properties Table": "create_properties_table",
		"add-favorites":           "add_favorites",
		"trailing space ":         "trailing_space",
		"UPPER":                   "upper",
		"v2 schema!!":             "v2_schema",
	}
	for in, want := range cases {
		assert.Equal(t, want, sanitizeName(in), "input %q", in)
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateMigration(dir, "first")
	require.NoError(t, err)

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.True(t, strings.HasSuffix(migrations[0], "_first"))
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	migrations, err := ListMigrations("/nonexistent/migrations")
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
