package domain

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// UploadCandidate — файл, выбранный пользователем для загрузки.
// Принадлежит вызывающей стороне; валидатор только читает его один раз.
type UploadCandidate interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// FileCandidate — файл на диске.
type FileCandidate struct {
	Path string
}

func (f FileCandidate) Name() string                 { return filepath.Base(f.Path) }
func (f FileCandidate) Open() (io.ReadCloser, error) { return os.Open(f.Path) }

// BytesCandidate — содержимое в памяти (тесты, уже прочитанные тела запросов).
type BytesCandidate struct {
	Filename string
	Content  []byte
}

func (b BytesCandidate) Name() string { return b.Filename }
func (b BytesCandidate) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.Content)), nil
}

// MultipartCandidate — файл из multipart-формы.
type MultipartCandidate struct {
	Header *multipart.FileHeader
}

func (m MultipartCandidate) Name() string {
	if m.Header == nil {
		return ""
	}
	return m.Header.Filename
}

func (m MultipartCandidate) Open() (io.ReadCloser, error) {
	if m.Header == nil {
		return nil, os.ErrNotExist
	}
	return m.Header.Open()
}
