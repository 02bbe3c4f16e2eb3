package domain

import "fmt"

const summaryTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Summary is the computed result of a single workout.
type Summary struct {
	Kind     Kind
	Duration float64
	Distance float64
	Speed    float64
	Calories float64
}

// Message renders the summary as a single report line.
func (s Summary) Message() string {
	return fmt.Sprintf(summaryTemplate, s.Kind, s.Duration, s.Distance, s.Speed, s.Calories)
}
