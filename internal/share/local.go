package share

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalSharer складывает документы в каталог, откуда их забирает интерфейс
type LocalSharer struct {
	basePath string
}

func NewLocalSharer(basePath string) (*LocalSharer, error) {
	if basePath == "" {
		basePath = "./exports"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &LocalSharer{basePath: basePath}, nil
}

func (l *LocalSharer) Share(ctx context.Context, req *Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := filepath.Base(req.Filename)
	path := filepath.Join(l.basePath, name)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	size, err := io.Copy(file, req.Body)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	// ошибка записи на диск может проявиться только при закрытии
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	return &Result{Filename: name, Location: path, Size: size}, nil
}
