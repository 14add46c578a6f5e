// Package target определяет, является ли активное приложение поддерживаемым
// клиентом удалённого рабочего стола.
package target

import (
	"log"
	"strings"
	"sync"
)

// App описывает приложение на переднем плане.
type App struct {
	BundleID string
	Name     string
}

// KnownBundleIDs - сборки Microsoft Remote Desktop, для которых выполняется
// преобразование прокрутки.
var KnownBundleIDs = []string{
	"com.microsoft.rdc.macos",      // старая версия
	"com.microsoft.rdc.macos.beta", // beta
	"com.microsoft.rdc.mac",        // App Store
}

// Observer получает приложения, не прошедшие фильтр.
// Не влияет на решение фильтра.
type Observer interface {
	Unmatched(app App)
}

// Filter сопоставляет приложение со списком разрешённых идентификаторов.
type Filter struct {
	allowed   map[string]struct{}
	observers []Observer
}

// NewFilter создаёт фильтр по списку идентификаторов.
func NewFilter(bundleIDs []string, observers ...Observer) *Filter {
	allowed := make(map[string]struct{}, len(bundleIDs))
	for _, id := range bundleIDs {
		allowed[id] = struct{}{}
	}
	return &Filter{
		allowed:   allowed,
		observers: observers,
	}
}

// NewDefaultFilter создаёт фильтр по KnownBundleIDs.
func NewDefaultFilter(observers ...Observer) *Filter {
	return NewFilter(KnownBundleIDs, observers...)
}

// Match возвращает true если приложение входит в список.
func (f *Filter) Match(app App) bool {
	if _, ok := f.allowed[app.BundleID]; ok {
		return true
	}
	for _, o := range f.observers {
		o.Unmatched(app)
	}
	return false
}

// familyKeywords - слова в названии, по которым угадывается неизвестная
// сборка клиента.
var familyKeywords = []string{"Microsoft", "Remote"}

// FamilyDetector пишет в лог приложения, похожие на неизвестную сборку
// клиента, чтобы список можно было расширить.
// Каждый идентификатор логируется один раз.
type FamilyDetector struct {
	logger *log.Logger
	mu     sync.Mutex
	seen   map[string]struct{}
}

// NewFamilyDetector создаёт детектор, пишущий в logger.
func NewFamilyDetector(logger *log.Logger) *FamilyDetector {
	return &FamilyDetector{
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

// Unmatched реализует Observer.
func (d *FamilyDetector) Unmatched(app App) {
	if !LooksLikeClient(app.Name) {
		return
	}

	d.mu.Lock()
	_, dup := d.seen[app.BundleID]
	if !dup {
		d.seen[app.BundleID] = struct{}{}
	}
	d.mu.Unlock()

	if dup || d.logger == nil {
		return
	}
	d.logger.Printf("Potentially unsupported RDP app detected: %s (%s)", app.BundleID, app.Name)
}

// LooksLikeClient проверяет название приложения на ключевые слова.
func LooksLikeClient(name string) bool {
	for _, kw := range familyKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
