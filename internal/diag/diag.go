// Package diag открывает диагностический лог преобразования прокрутки.
// Файл только дописывается.
package diag

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Open возвращает логгер с временными метками, дописывающий в path.
// Если файл не открывается, логгер пишет в stderr и возвращается ошибка.
func Open(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return New(os.Stderr), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return New(os.Stderr), nopCloser{}, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return New(os.Stderr), nopCloser{}, fmt.Errorf("open diagnostic log: %w", err)
	}
	return New(f), f, nil
}

// New возвращает диагностический логгер, пишущий в w.
func New(w io.Writer) *log.Logger {
	return log.New(w, "", log.LstdFlags)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
