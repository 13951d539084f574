package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "github.com/SirClappington/ecommerce-admin-backend/internal/errors"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type memoryObjects struct {
	objects      map[string][]byte
	contentTypes map[string]string
	order        []string
	err          error
}

func newMemoryObjects() *memoryObjects {
	return &memoryObjects{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (m *memoryObjects) PutObject(ctx context.Context, objectName, contentType string, r io.Reader) error {
	if m.err != nil {
		return m.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[objectName] = data
	m.contentTypes[objectName] = contentType
	m.order = append(m.order, objectName)
	return nil
}

type testFile struct {
	name string
	data []byte
}

func fileHeaders(t *testing.T, files ...testFile) []*multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := w.CreateFormFile("file", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"]
}

func TestUploadService_StoresImagesInOrder(t *testing.T) {
	objects := newMemoryObjects()
	svc := NewUploadService(objects, "https://cdn.example.com/bucket/", "products/", 1<<20, zap.NewNop())

	links, err := svc.Upload(context.Background(), fileHeaders(t,
		testFile{name: "first.png", data: pngHeader},
		testFile{name: "second.png", data: append(append([]byte{}, pngHeader...), 0x01)},
	))

	require.NoError(t, err)
	require.Len(t, links, 2)
	require.Len(t, objects.order, 2)
	for i, link := range links {
		assert.Equal(t, "https://cdn.example.com/bucket/"+objects.order[i], link)
		assert.True(t, strings.HasPrefix(objects.order[i], "products/"))
		assert.True(t, strings.HasSuffix(objects.order[i], ".png"))
		assert.Equal(t, "image/png", objects.contentTypes[objects.order[i]])
	}
	assert.Equal(t, pngHeader, objects.objects[objects.order[0]])
}

func TestUploadService_RejectsNonImages(t *testing.T) {
	svc := NewUploadService(newMemoryObjects(), "https://cdn", "", 0, zap.NewNop())

	_, err := svc.Upload(context.Background(), fileHeaders(t, testFile{name: "notes.png", data: []byte("just some text")}))

	assert.Equal(t, apierrors.ErrorTypeValidation, errorType(err))
}

func TestUploadService_RejectsOversizedFiles(t *testing.T) {
	svc := NewUploadService(newMemoryObjects(), "https://cdn", "", 8, zap.NewNop())

	_, err := svc.Upload(context.Background(), fileHeaders(t, testFile{name: "big.png", data: pngHeader}))

	assert.Equal(t, apierrors.ErrorTypeValidation, errorType(err))
}

func TestUploadService_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewUploadService(nil, "", "", 0, zap.NewNop()).Upload(ctx, nil)
	assert.Equal(t, apierrors.ErrorTypeExternal, errorType(err))

	_, err = NewUploadService(newMemoryObjects(), "https://cdn", "", 0, zap.NewNop()).Upload(ctx, nil)
	assert.Equal(t, apierrors.ErrorTypeValidation, errorType(err))

	failing := newMemoryObjects()
	failing.err = errors.New("bucket unavailable")
	_, err = NewUploadService(failing, "https://cdn", "", 0, zap.NewNop()).Upload(ctx, fileHeaders(t, testFile{name: "a.png", data: pngHeader}))
	assert.Equal(t, apierrors.ErrorTypeExternal, errorType(err))
}
