package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-cart-ecommerce/service-ts-gen/internal/codemodel"
)

func widgetFile(name string) *codemodel.File {
	f := codemodel.NewFile(name, codemodel.Env{})
	f.CreateClass("Widget").AddServiceMethod(codemodel.Operation{OperationID: "pingUsingGET"})
	return f
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src", "services")
	f := widgetFile("widget")

	path, err := Save(f, dir, ".ts")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "widget.ts"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f.Render(), string(data))
}

func TestSaveAll(t *testing.T) {
	dir := t.TempDir()
	var files []*codemodel.File
	for i := 0; i < 10; i++ {
		files = append(files, widgetFile(fmt.Sprintf("widget%d", i)))
	}

	paths, err := SaveAll(context.Background(), files, dir, ".service.ts", 3)
	require.NoError(t, err)
	require.Len(t, paths, len(files))
	for i, p := range paths {
		assert.Equal(t, filepath.Join(dir, fmt.Sprintf("widget%d.service.ts", i)), p)
		assert.FileExists(t, p)
	}
}

func TestSaveAllEmpty(t *testing.T) {
	paths, err := SaveAll(context.Background(), nil, t.TempDir(), ".ts", 1)
	assert.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSaveAllFailure(t *testing.T) {
	dir := t.TempDir()
	// a directory in the way of the target file
	require.NoError(t, os.Mkdir(filepath.Join(dir, "widget.ts"), 0o755))

	_, err := SaveAll(context.Background(), []*codemodel.File{widgetFile("widget")}, dir, ".ts", 2)
	assert.ErrorContains(t, err, "failed to write")
}
