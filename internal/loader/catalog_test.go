package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navstack/internal/view"
)

// writeDefinition places a definition file for resourcePath under dir,
// creating intermediate directories as needed.
func writeDefinition(t *testing.T, dir, resourcePath, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(resourcePath)+".yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCatalogGet_ParsesDefinition(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "screens/home", `title: Home Screen
pooling: enabled
args:
  theme: dark
metadata:
  owner: ui-core
`)

	c := NewCatalog(dir)
	def, err := c.Get(context.Background(), "screens/home")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "screens/home", def.ResourcePath)
	assert.Equal(t, "Home Screen", def.Title)
	assert.Equal(t, view.PoolEnabled, def.PoolingPolicy())
	assert.Equal(t, "dark", def.Args["theme"])
	assert.Equal(t, "ui-core", def.Metadata["owner"])
}

func TestCatalogGet_MissingFileReturnsNil(t *testing.T) {
	c := NewCatalog(t.TempDir())

	def, err := c.Get(context.Background(), "screens/none")
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestCatalogGet_YmlExtensionAccepted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "screens", "home.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("title: Home\n"), 0644))

	c := NewCatalog(dir)
	def, err := c.Get(context.Background(), "screens/home")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "Home", def.Title)
}

func TestCatalogGet_CachesUntilInvalidated(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "screens/home", "title: First\n")

	c := NewCatalog(dir)
	ctx := context.Background()

	def, err := c.Get(ctx, "screens/home")
	require.NoError(t, err)
	require.Equal(t, "First", def.Title)

	writeDefinition(t, dir, "screens/home", "title: Second\n")

	def, err = c.Get(ctx, "screens/home")
	require.NoError(t, err)
	assert.Equal(t, "First", def.Title, "cached definition should be served")

	c.Invalidate("screens/home")

	def, err = c.Get(ctx, "screens/home")
	require.NoError(t, err)
	assert.Equal(t, "Second", def.Title)
}

func TestCatalogGet_CachesNotFound(t *testing.T) {
	dir := t.TempDir()
	c := NewCatalog(dir)
	ctx := context.Background()

	def, err := c.Get(ctx, "screens/late")
	require.NoError(t, err)
	require.Nil(t, def)

	writeDefinition(t, dir, "screens/late", "title: Late\n")

	def, err = c.Get(ctx, "screens/late")
	require.NoError(t, err)
	assert.Nil(t, def, "missing lookup should be cached until invalidated")

	c.Invalidate("screens/late")

	def, err = c.Get(ctx, "screens/late")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "Late", def.Title)
}

func TestCatalogGet_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "screens/home", "title: [unclosed\n")

	c := NewCatalog(dir)
	_, err := c.Get(context.Background(), "screens/home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestCatalogGet_InvalidPoolingValue(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "screens/home", "pooling: sometimes\n")

	c := NewCatalog(dir)
	_, err := c.Get(context.Background(), "screens/home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pooling")
}

func TestCatalogGet_ErrorsAreNotCached(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "screens/home", "pooling: sometimes\n")

	c := NewCatalog(dir)
	ctx := context.Background()

	_, err := c.Get(ctx, "screens/home")
	require.Error(t, err)

	writeDefinition(t, dir, "screens/home", "pooling: enabled\n")

	def, err := c.Get(ctx, "screens/home")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, view.PoolEnabled, def.PoolingPolicy())
}

func TestCatalogGet_RejectsEscapingPaths(t *testing.T) {
	c := NewCatalog(t.TempDir())
	ctx := context.Background()

	_, err := c.Get(ctx, "../outside")
	require.Error(t, err)

	_, err = c.Get(ctx, "screens/../../outside")
	require.Error(t, err)

	_, err = c.Get(ctx, "/absolute")
	require.Error(t, err)

	_, err = c.Get(ctx, "")
	require.Error(t, err)
}

func TestCatalogPaths_ListsSorted(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "screens/home", "title: Home\n")
	writeDefinition(t, dir, "screens/settings", "title: Settings\n")
	writeDefinition(t, dir, "dialogs/confirm", "title: Confirm\n")

	c := NewCatalog(dir)
	paths, err := c.Paths()
	require.NoError(t, err)
	assert.Equal(t, []string{"dialogs/confirm", "screens/home", "screens/settings"}, paths)
}

func TestCatalogPaths_MissingDirIsEmpty(t *testing.T) {
	c := NewCatalog(filepath.Join(t.TempDir(), "never-created"))

	paths, err := c.Paths()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDefinitionPoolingPolicy(t *testing.T) {
	assert.Equal(t, view.PoolUseContainerDefault, (&Definition{}).PoolingPolicy())
	assert.Equal(t, view.PoolEnabled, (&Definition{Pooling: "enabled"}).PoolingPolicy())
	assert.Equal(t, view.PoolDisabled, (&Definition{Pooling: "disabled"}).PoolingPolicy())
}
