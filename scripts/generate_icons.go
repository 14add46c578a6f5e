//go:build ignore

// Скрипт для генерации иконок трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		color color.RGBA
	}{
		{"icon_active.png", color.RGBA{40, 140, 230, 255}}, // Синий
		{"icon_paused.png", color.RGBA{128, 128, 128, 255}}, // Серый
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.color); err != nil {
			log.Fatalf("Ошибка генерации %s: %v", icon.name, err)
		}
		log.Printf("Создан: %s", path)
	}
}

// generateIcon рисует двойную стрелку прокрутки вверх/вниз.
func generateIcon(path string, c color.RGBA) error {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := size / 2

	// Стержень
	for y := 14; y < size-14; y++ {
		for x := center - 3; x <= center+3; x++ {
			img.Set(x, y, c)
		}
	}

	// Наконечники стрелок
	for i := 0; i < 14; i++ {
		for x := center - i; x <= center+i; x++ {
			img.Set(x, 4+i, c)
			img.Set(x, size-5-i, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
