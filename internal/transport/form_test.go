package transport

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeImage() io.Reader {
	return bytes.NewReader([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a})
}

func TestFormEncode(t *testing.T) {
	form := NewForm().
		Set("title", "First upload").
		Set("description", "hello")
	form.File("thumbnail", "thumb.jpg", strings.NewReader("jpeg-bytes"))

	body, contentType, err := form.Encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	require.NotEmpty(t, params["boundary"])

	reader := multipart.NewReader(body, params["boundary"])
	fields := map[string]string{}
	var fileNames []string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FileName() != "" {
			fileNames = append(fileNames, part.FileName())
		} else {
			fields[part.FormName()] = string(data)
		}
	}

	assert.Equal(t, map[string]string{"title": "First upload", "description": "hello"}, fields)
	assert.Equal(t, []string{"thumb.jpg"}, fileNames)
}

func TestFormWithoutFiles(t *testing.T) {
	// Omitting a media field entirely is how "retain the existing asset"
	// is expressed; the part must simply be absent.
	form := NewForm().Set("title", "No new thumbnail")

	body, contentType, err := form.Encode()
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(body, params["boundary"])
	var parts []string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		parts = append(parts, part.FormName())
	}
	assert.Equal(t, []string{"title"}, parts)
}
