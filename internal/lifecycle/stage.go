// Package lifecycle описывает стадии заявки на обслуживание.
package lifecycle

import (
	"fmt"

	apperrors "gearguard/pkg/errors"
)

type Stage string

const (
	StageNew        Stage = "New"
	StageInProgress Stage = "In Progress"
	StageRepaired   Stage = "Repaired"
	StageScrap      Stage = "Scrap"
)

// Stages - все стадии в порядке движения по доске.
var Stages = []Stage{StageNew, StageInProgress, StageRepaired, StageScrap}

// Initial - стадия новой заявки.
const Initial = StageNew

var labels = map[Stage]string{
	StageNew:        "New Request",
	StageInProgress: "In Progress",
	StageRepaired:   "Repaired",
	StageScrap:      "Scrap",
}

func (s Stage) String() string { return string(s) }

func (s Stage) Valid() bool {
	_, ok := labels[s]
	return ok
}

// IsTerminal: Repaired и Scrap.
func (s Stage) IsTerminal() bool {
	return s == StageRepaired || s == StageScrap
}

// IsActive - заявка ещё в работе и учитывается в нагрузке техника.
// Стадии вне списка, в том числе пустая, тоже активны.
func (s Stage) IsActive() bool {
	return !s.IsTerminal()
}

// Label - подпись колонки на доске.
func (s Stage) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

func (s Stage) index() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

func Parse(raw string) (Stage, error) {
	s := Stage(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidStage, raw)
	}
	return s, nil
}

// Direction - шаг по доске на одну колонку.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

func ParseDirection(raw string) (Direction, error) {
	switch d := Direction(raw); d {
	case Forward, Backward:
		return d, nil
	}
	return "", apperrors.NewInvalidInputError("неизвестное направление %q", raw)
}

// Step возвращает соседнюю стадию. За пределами списка - ErrStageBoundary.
// Само хранилище допускает любой переход; Step нужен только для кнопок доски.
func Step(from Stage, dir Direction) (Stage, error) {
	i := from.index()
	if i < 0 {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidStage, from)
	}
	switch dir {
	case Forward:
		i++
	case Backward:
		i--
	default:
		return "", apperrors.NewInvalidInputError("неизвестное направление %q", dir)
	}
	if i < 0 || i >= len(Stages) {
		return "", fmt.Errorf("%w: %s, направление %s", apperrors.ErrStageBoundary, from, dir)
	}
	return Stages[i], nil
}

// CanStep подсказывает UI, активна ли кнопка.
func CanStep(from Stage, dir Direction) bool {
	_, err := Step(from, dir)
	return err == nil
}
