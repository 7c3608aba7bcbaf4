package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxFileSize = 20 * 1024 * 1024 // 20 MB

	defaultBaseDir    = "./uploads"
	defaultStaticBase = "/static/uploads"
)

// Defect photos only; anything else is rejected up front.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Service stores inspection photos on local disk: save file, record in
// DB, return the public URL used as an item result's photo reference.
type Service struct {
	repo       Repository
	baseDir    string
	staticBase string
}

func NewService(repo Repository, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = defaultBaseDir
	}
	if staticBase == "" {
		staticBase = defaultStaticBase
	}
	return &Service{repo: repo, baseDir: baseDir, staticBase: staticBase}
}

func (s *Service) Save(ctx context.Context, barcode string, fileHeader *multipart.FileHeader) (*Upload, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// sniff the MIME type from the first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !allowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}

	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	fileName := id + ext

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare uploads dir: %w", err)
	}

	diskPath := filepath.Join(s.baseDir, fileName)
	dst, err := os.Create(diskPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(diskPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	u := &Upload{
		ID:           id,
		Barcode:      strings.TrimSpace(barcode),
		OriginalName: fileHeader.Filename,
		FilePath:     diskPath,
		FileURL:      s.staticBase + "/" + fileName,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		os.Remove(diskPath)
		return nil, err
	}
	return u, nil
}
