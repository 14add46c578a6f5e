package scroll

import "sync"

// Settings - переключатели пользователя, читаемые движком на каждом событии.
// Запись идёт из горутин трея и горячей клавиши, чтение - из потока перехвата.
type Settings struct {
	mu     sync.RWMutex
	active bool
	level  Level
}

// NewSettings возвращает состояние при запуске: активно, максимальная чувствительность.
func NewSettings() *Settings {
	return &Settings{
		active: true,
		level:  DefaultLevel,
	}
}

// Active сообщает, включено ли преобразование.
func (s *Settings) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActive включает или выключает преобразование.
func (s *Settings) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

// ToggleActive переключает флаг и возвращает новое значение.
func (s *Settings) ToggleActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = !s.active
	return s.active
}

// Level возвращает текущий уровень чувствительности.
func (s *Settings) Level() Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.level
}

// SetLevel меняет уровень. Недопустимый уровень игнорируется, возвращается false.
func (s *Settings) SetLevel(level Level) bool {
	if !level.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
	return true
}

func (s *Settings) snapshot() (bool, Level) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.level
}
