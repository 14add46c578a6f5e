package scroll

// Kind - тип события, полученного от перехватчика.
type Kind int

const (
	KindOther Kind = iota
	KindScrollWheel
	// KindTapDisabled - уведомление о том, что система отключила перехват,
	// например по таймауту обработчика.
	KindTapDisabled
)

// Point - координаты в глобальной системе дисплеев.
type Point struct {
	X, Y float64
}

// Event - часть перехваченного события колеса, которую читает движок.
// Axis1 - вертикальное смещение в точках; некоторые устройства присылают
// вертикаль в Axis2.
type Event struct {
	Kind       Kind
	Continuous bool
	Axis1      int64
	Axis2      int64
	Location   Point
	Flags      uint64
}

// Unit - единица прокрутки синтезированного события.
type Unit int

const (
	UnitLine Unit = iota
	UnitPixel
)

// Synthesized описывает дискретное событие колеса, заменяющее накопленное
// непрерывное движение. Источник события берётся из исходного при отправке.
type Synthesized struct {
	Unit       Unit
	Wheels     int
	Steps      int32
	Location   Point
	Flags      uint64
	Continuous bool
}

// Action - что перехватчик делает с исходным событием.
type Action int

const (
	PassThrough Action = iota
	Suppress
	Emit
)

func (a Action) String() string {
	switch a {
	case PassThrough:
		return "pass-through"
	case Suppress:
		return "suppress"
	case Emit:
		return "emit"
	default:
		return "unknown"
	}
}

// Decision - решение движка по одному событию. Synthesized заполнен только
// для Emit; при Suppress и Emit исходное событие отбрасывается.
type Decision struct {
	Action      Action
	Synthesized Synthesized
}

func newSynthesized(ev Event, steps int32) Synthesized {
	return Synthesized{
		Unit:       UnitLine,
		Wheels:     1,
		Steps:      steps,
		Location:   ev.Location,
		Flags:      ev.Flags,
		Continuous: false,
	}
}
