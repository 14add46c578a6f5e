// Package config загружает параметры запуска из config.json рядом с бинарником.
//
// Файл только читается: состояние Active и уровень чувствительности
// не сохраняются между запусками.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName - имя файла конфигурации.
const FileName = "config.json"

// DefaultLogName - имя диагностического лога в домашней директории.
const DefaultLogName = "rdp_scroll_fixer.log"

// Modifier представляет модификатор клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
)

// Key представляет клавишу.
type Key string

// HotkeyConfig хранит настройки горячей клавиши переключения Active.
type HotkeyConfig struct {
	Modifiers []Modifier `json:"modifiers"`
	Key       Key        `json:"key"`
}

// Enabled возвращает false если клавиша не задана.
func (h HotkeyConfig) Enabled() bool {
	return h.Key != ""
}

// String возвращает строковое представление горячей клавиши.
func (h HotkeyConfig) String() string {
	parts := make([]string, 0, len(h.Modifiers)+1)
	for _, m := range h.Modifiers {
		parts = append(parts, string(m))
	}
	parts = append(parts, string(h.Key))
	return strings.Join(parts, "+")
}

// configData структура для сериализации.
type configData struct {
	UILanguage    string        `json:"ui_language,omitempty"`
	Notifications *bool         `json:"notifications,omitempty"`
	Hotkey        *HotkeyConfig `json:"hotkey,omitempty"`
	LogFile       string        `json:"log_file,omitempty"`
	Diagnostics   *bool         `json:"diagnostics,omitempty"`
}

// Config хранит параметры запуска. После загрузки не изменяется.
type Config struct {
	UILanguage    string
	Notifications bool
	Hotkey        HotkeyConfig
	LogFile       string
	Diagnostics   bool
	path          string
}

// Default возвращает параметры по умолчанию.
func Default() *Config {
	logFile := DefaultLogName
	if home, err := os.UserHomeDir(); err == nil {
		logFile = filepath.Join(home, DefaultLogName)
	}

	return &Config{
		UILanguage:    "en",
		Notifications: true,
		Hotkey: HotkeyConfig{
			Modifiers: []Modifier{ModCtrl, ModAlt},
			Key:       "s",
		},
		LogFile:     logFile,
		Diagnostics: true,
	}
}

// New загружает config.json рядом с бинарником, при отсутствии файла
// возвращает значения по умолчанию.
func New() (*Config, error) {
	execPath, err := os.Executable()
	if err != nil {
		return Default(), nil
	}
	// Резолвим симлинки
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(filepath.Dir(execPath), FileName))
}

// Load читает конфигурацию из path поверх значений по умолчанию.
// Отсутствующий файл не ошибка.
func Load(path string) (*Config, error) {
	c := Default()
	c.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("чтение %s: %w", path, err)
	}

	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		return c, fmt.Errorf("разбор %s: %w", path, err)
	}

	if cfg.UILanguage != "" {
		c.UILanguage = cfg.UILanguage
	}
	if cfg.Notifications != nil {
		c.Notifications = *cfg.Notifications
	}
	if cfg.Hotkey != nil {
		c.Hotkey = *cfg.Hotkey
	}
	if cfg.LogFile != "" {
		c.LogFile = expandHome(cfg.LogFile)
	}
	if cfg.Diagnostics != nil {
		c.Diagnostics = *cfg.Diagnostics
	}
	return c, nil
}

// Path возвращает путь, из которого загружалась конфигурация.
func (c *Config) Path() string {
	return c.path
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
