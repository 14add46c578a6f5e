package scroll

import "math"

// Accumulator хранит вертикальное смещение, ещё не превращённое в целые шаги.
// После каждого Add модуль значения меньше переданного порога.
type Accumulator struct {
	value float64
}

// Add добавляет delta и извлекает целые шаги по threshold.
// Шаги округляются к нулю, поэтому отрицательное направление симметрично положительному.
func (a *Accumulator) Add(delta, threshold float64) int64 {
	a.value += delta
	if threshold <= 0 || math.Abs(a.value) < threshold {
		return 0
	}

	steps := math.Trunc(a.value / threshold)
	a.value -= steps * threshold
	return int64(steps)
}

// carry возвращает в аккумулятор расстояние, которое не удалось отправить.
func (a *Accumulator) carry(distance float64) {
	a.value += distance
}

// Value возвращает неразрешённое смещение.
func (a *Accumulator) Value() float64 {
	return a.value
}
