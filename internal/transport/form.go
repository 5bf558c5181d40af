package transport

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Form builds a multipart request body of text fields and file parts.
// A media field left off the form means "retain the existing asset";
// the backend treats absence as a no-op, not a deletion.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	name     string
	filename string
	content  io.Reader
}

// NewForm creates an empty Form
func NewForm() *Form {
	return &Form{}
}

// Set adds a text field
func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// File adds a file part read from content
func (f *Form) File(name, filename string, content io.Reader) *Form {
	f.files = append(f.files, formFile{name: name, filename: filename, content: content})
	return f
}

// Encode serializes the form and returns the body with its content type,
// including the generated boundary.
func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.name, file.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
