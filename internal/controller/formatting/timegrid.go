package formatting

import "fmt"

// DefaultInterval шаг сетки в минутах если у преподавателя не задан
const DefaultInterval = 10

// Границы рабочей сетки: первый слот 16:00, последний начинается в 17:50
const (
	GridStartMinutes     = 16 * 60
	GridLastStartMinutes = 17*60 + 50
)

// TimeGrid строит метки слотов от start до last включительно с шагом
// interval минут. Чисто форматирующая функция, состояния не трогает.
func TimeGrid(startMinutes, lastStartMinutes, interval int) []string {
	if interval <= 0 {
		interval = DefaultInterval
	}

	var slots []string
	for mins := startMinutes; mins <= lastStartMinutes; mins += interval {
		slots = append(slots, fmt.Sprintf("%d:%02d", mins/60, mins%60))
	}
	return slots
}

// DefaultTimeGrid сетка рабочего дня для преподавателя с шагом interval
func DefaultTimeGrid(interval int) []string {
	return TimeGrid(GridStartMinutes, GridLastStartMinutes, interval)
}
