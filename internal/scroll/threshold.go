package scroll

// Level - чувствительность, выбираемая пользователем: 1 (медленно, точно) .. 5 (быстро).
type Level int

const (
	MinLevel     Level = 1
	MaxLevel     Level = 5
	DefaultLevel Level = MaxLevel
)

// fallbackThreshold - порог для уровней вне MinLevel..MaxLevel.
const fallbackThreshold = 20

var thresholds = map[Level]float64{
	1: 50,
	2: 30,
	3: 20,
	4: 10,
	5: 5,
}

// Threshold возвращает расстояние в точках, которое нужно накопить для
// одного шага прокрутки. Чем выше уровень, тем меньше движения нужно.
func Threshold(level Level) float64 {
	if t, ok := thresholds[level]; ok {
		return t
	}
	return fallbackThreshold
}

// Valid проверяет, что уровень в диапазоне MinLevel..MaxLevel.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Levels возвращает все допустимые уровни по возрастанию.
func Levels() []Level {
	levels := make([]Level, 0, MaxLevel-MinLevel+1)
	for l := MinLevel; l <= MaxLevel; l++ {
		levels = append(levels, l)
	}
	return levels
}
