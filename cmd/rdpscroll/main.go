// RDP Scroll Fixer - преобразует плавную прокрутку трекпада в построчную
// для клиентов Microsoft Remote Desktop.
//
// Работает в строке меню, настройки не сохраняются между запусками.
package main

import (
	"log"
	"os"

	"rdpscroll/internal/app"
	"rdpscroll/internal/config"
	"rdpscroll/internal/hotkey"
	"rdpscroll/internal/i18n"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("RDP Scroll Fixer %s запускается...", Version)

	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(run)
}

func run() {
	cfg, err := config.New()
	if err != nil {
		log.Printf("Ошибка чтения конфигурации, используем значения по умолчанию: %v", err)
	}
	if p := cfg.Path(); p != "" {
		log.Printf("Конфигурация: %s", p)
	}

	if !i18n.SetLanguage(i18n.Language(cfg.UILanguage)) {
		log.Printf("Неизвестный язык интерфейса %q", cfg.UILanguage)
	}

	application, err := app.New(cfg, Version)
	if err != nil {
		log.Printf("Ошибка инициализации: %v", err)
		os.Exit(1)
	}

	log.Println("Приложение запущено.")
	application.Run()
}
