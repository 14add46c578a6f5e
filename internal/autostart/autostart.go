// Package autostart управляет файлом автозапуска при входе пользователя.
// Наличие файла и есть состояние "включено".
package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Label - идентификатор записи автозапуска.
const Label = "com.fixscroll.rdp"

// ErrUnsupported - платформа без поддержки автозапуска.
var ErrUnsupported = errors.New("автозапуск не поддерживается на этой платформе")

// Manager создаёт и удаляет файл автозапуска.
type Manager struct {
	path string
	args []string
}

// New создаёт Manager для текущего пользователя и бинарника.
func New() (*Manager, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("не удалось определить домашнюю директорию: %w", err)
	}

	path := entryPath(home)
	if path == "" {
		return nil, ErrUnsupported
	}

	args, err := programArgs()
	if err != nil {
		return nil, err
	}

	return NewWithPath(path, args), nil
}

// NewWithPath создаёт Manager с явным путём файла и командой запуска.
func NewWithPath(path string, args []string) *Manager {
	return &Manager{path: path, args: args}
}

// Path возвращает путь к файлу автозапуска.
func (m *Manager) Path() string {
	return m.path
}

// Enabled возвращает true если файл автозапуска существует.
func (m *Manager) Enabled() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

// Enable записывает файл автозапуска.
func (m *Manager) Enable() error {
	data, err := render(m.args)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("не удалось создать директорию автозапуска: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("не удалось записать %s: %w", m.path, err)
	}
	return nil
}

// Disable удаляет файл автозапуска. Отсутствие файла не ошибка.
func (m *Manager) Disable() error {
	if err := os.Remove(m.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("не удалось удалить %s: %w", m.path, err)
	}
	return nil
}

// Toggle переключает автозапуск и возвращает новое состояние.
func (m *Manager) Toggle() (bool, error) {
	if m.Enabled() {
		if err := m.Disable(); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := m.Enable(); err != nil {
		return false, err
	}
	return true, nil
}

// programArgs возвращает команду запуска текущего бинарника.
func programArgs() ([]string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("не удалось определить путь к бинарнику: %w", err)
	}

	// Резолвим симлинки
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, fmt.Errorf("не удалось разрешить симлинки: %w", err)
	}
	return []string{execPath}, nil
}
