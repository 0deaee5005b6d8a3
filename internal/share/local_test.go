package share

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSharer_Share(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sharer, err := NewLocalSharer(dir)
	require.NoError(t, err)

	res, err := sharer.Share(context.Background(), &Request{
		Filename:    "../ocorrencia-ABC.pdf",
		ContentType: "application/pdf",
		Body:        strings.NewReader("%PDF-1.4"),
	})

	require.NoError(t, err)
	assert.Equal(t, "ocorrencia-ABC.pdf", res.Filename)
	assert.Equal(t, filepath.Join(dir, "ocorrencia-ABC.pdf"), res.Location)
	assert.EqualValues(t, 8, res.Size)

	data, err := os.ReadFile(res.Location)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk unplugged") }

func TestLocalSharer_Share_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	sharer, err := NewLocalSharer(dir)
	require.NoError(t, err)

	res, err := sharer.Share(context.Background(), &Request{
		Filename: "ocorrencia-ABC.pdf",
		Body:     failingReader{},
	})

	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "disk unplugged")
	_, statErr := os.Stat(filepath.Join(dir, "ocorrencia-ABC.pdf"))
	assert.True(t, os.IsNotExist(statErr), "partial file must be removed")
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "dropbox"})
	assert.Error(t, err)
}
