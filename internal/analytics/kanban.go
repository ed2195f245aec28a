package analytics

import (
	"sort"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type SortOrder string

const (
	SortByDate     SortOrder = "date"
	SortByPriority SortOrder = "priority"
	SortNone       SortOrder = "none"
)

func ParseSortOrder(raw string) (SortOrder, error) {
	switch o := SortOrder(raw); o {
	case "":
		return SortByDate, nil
	case SortByDate, SortByPriority, SortNone:
		return o, nil
	}
	return "", apperrors.NewInvalidInputError("неизвестная сортировка %q", raw)
}

// Kanban раскладывает заявки по колонкам стадий. Колонки всегда все четыре.
func Kanban(s *entities.Snapshot, order SortOrder, now time.Time) []dto.KanbanColumnDTO {
	columns := make([]dto.KanbanColumnDTO, 0, len(lifecycle.Stages))
	for _, stage := range lifecycle.Stages {
		var inStage []entities.MaintenanceRequest
		for _, r := range s.Requests {
			if r.Stage == stage {
				inStage = append(inStage, r)
			}
		}
		sortRequests(inStage, order)
		columns = append(columns, dto.KanbanColumnDTO{
			Stage: stage.String(),
			Label: stage.Label(),
			Cards: RequestCards(s, inStage, now),
		})
	}
	return columns
}

func sortRequests(requests []entities.MaintenanceRequest, order SortOrder) {
	switch order {
	case SortByDate:
		// Заявки с нераспознанной датой уходят в конец колонки.
		sort.SliceStable(requests, func(i, j int) bool {
			a, aok := scheduledAt(requests[i])
			b, bok := scheduledAt(requests[j])
			if aok != bok {
				return aok
			}
			return aok && a.Before(b)
		})
	case SortByPriority:
		sort.SliceStable(requests, func(i, j int) bool {
			return priorityRank(requests[i].Priority) < priorityRank(requests[j].Priority)
		})
	}
}

func priorityRank(p string) int {
	if rank, ok := constants.PriorityRank[p]; ok {
		return rank
	}
	return len(constants.PriorityRank)
}

func scheduledAt(r entities.MaintenanceRequest) (time.Time, bool) {
	return utils.ParseDate(r.ScheduledDate)
}
