package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/integrations"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/metrics"
	"gearguard/pkg/utils"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
	opStage  = "stage"
)

// SnapshotLoader - то, что сервису нужно от хранилища снимка.
type SnapshotLoader interface {
	Load(ctx context.Context) error
	Current() *entities.Snapshot
}

type MaintenanceServiceInterface interface {
	AddEquipment(ctx context.Context, payload dto.EquipmentPayloadDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, payload dto.EquipmentPayloadDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) error

	AddTeam(ctx context.Context, payload dto.TeamPayloadDTO) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id int64, payload dto.TeamPayloadDTO) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) error

	AddTechnician(ctx context.Context, payload dto.TechnicianPayloadDTO) (*entities.Technician, error)
	UpdateTechnician(ctx context.Context, id int64, payload dto.TechnicianPayloadDTO) (*entities.Technician, error)
	DeleteTechnician(ctx context.Context, id int64) error

	AddRequest(ctx context.Context, payload dto.MaintenanceRequestPayloadDTO) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id int64, payload dto.MaintenanceRequestPayloadDTO) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id int64) error
	UpdateRequestStage(ctx context.Context, id int64, stage lifecycle.Stage) (*entities.MaintenanceRequest, error)
	StepRequestStage(ctx context.Context, id int64, dir lifecycle.Direction) (*entities.MaintenanceRequest, error)

	AddWorkCenter(ctx context.Context, payload dto.WorkCenterPayloadDTO) (*entities.WorkCenter, error)
	UpdateWorkCenter(ctx context.Context, id int64, payload dto.WorkCenterPayloadDTO) (*entities.WorkCenter, error)
	DeleteWorkCenter(ctx context.Context, id int64) error

	AddEquipmentCategory(ctx context.Context, payload dto.EquipmentCategoryPayloadDTO) (*entities.EquipmentCategory, error)
	UpdateEquipmentCategory(ctx context.Context, id int64, payload dto.EquipmentCategoryPayloadDTO) (*entities.EquipmentCategory, error)
	DeleteEquipmentCategory(ctx context.Context, id int64) error

	Refresh(ctx context.Context) error
}

// MaintenanceService - единственный писатель. После успешной записи
// перечитывает снимок целиком, после ошибки снимок не трогает.
type MaintenanceService struct {
	writer   integrations.Writer
	store    SnapshotLoader
	validate *validator.Validate
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewMaintenanceService(
	writer integrations.Writer,
	store SnapshotLoader,
	validate *validator.Validate,
	m *metrics.Metrics,
	logger *zap.Logger,
) MaintenanceServiceInterface {
	return &MaintenanceService{
		writer:   writer,
		store:    store,
		validate: validate,
		metrics:  m,
		logger:   logger.Named("maintenance"),
	}
}

// mutate выполняет запись и при успехе перезагружает снимок. Ошибка
// перезагрузки только логируется: устаревшие данные допустимы.
func (s *MaintenanceService) mutate(ctx context.Context, resource constants.Resource, op string, write func() error) error {
	err := write()
	s.metrics.Mutation(resource.String(), op, err)
	if err != nil {
		s.logger.Warn("Запись в API не выполнена, снимок не перезагружается",
			zap.String("resource", resource.String()),
			zap.String("operation", op),
			zap.String("request_id", utils.RequestIDFromCtx(ctx)),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Запись выполнена",
		zap.String("resource", resource.String()),
		zap.String("operation", op),
	)
	if err := s.store.Load(ctx); err != nil {
		s.logger.Error("Перезагрузка после записи не удалась", zap.Error(err))
	}
	return nil
}

func (s *MaintenanceService) check(payload interface{}) error {
	if s.validate == nil {
		return nil
	}
	return s.validate.Struct(payload)
}

func (s *MaintenanceService) Refresh(ctx context.Context) error {
	return s.store.Load(ctx)
}

// ----- ОБОРУДОВАНИЕ -----

func withEquipmentDefaults(p dto.EquipmentPayloadDTO) dto.EquipmentPayloadDTO {
	if p.Status == "" {
		p.Status = constants.EquipmentOperational
	}
	if p.Health == nil {
		p.Health = utils.ToPtr(constants.DefaultHealth)
	}
	return p
}

func (s *MaintenanceService) AddEquipment(ctx context.Context, payload dto.EquipmentPayloadDTO) (*entities.Equipment, error) {
	payload = withEquipmentDefaults(payload)
	if err := s.check(payload); err != nil {
		return nil, err
	}
	var out entities.Equipment
	err := s.mutate(ctx, constants.ResourceEquipment, opCreate, func() error {
		return s.writer.Create(ctx, constants.ResourceEquipment, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEquipment не подставляет умолчаний: без status и health сервер
// сохраняет прежние значения.
func (s *MaintenanceService) UpdateEquipment(ctx context.Context, id int64, payload dto.EquipmentPayloadDTO) (*entities.Equipment, error) {
	if err := s.check(payload); err != nil {
		return nil, err
	}
	var out entities.Equipment
	err := s.mutate(ctx, constants.ResourceEquipment, opUpdate, func() error {
		return s.writer.Update(ctx, constants.ResourceEquipment, id, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MaintenanceService) DeleteEquipment(ctx context.Context, id int64) error {
	return s.mutate(ctx, constants.ResourceEquipment, opDelete, func() error {
		return s.writer.Delete(ctx, constants.ResourceEquipment, id)
	})
}

// ----- КОМАНДЫ -----

func (s *MaintenanceService) AddTeam(ctx context.Context, payload dto.TeamPayloadDTO) (*entities.Team, error) {
	if err := s.check(payload); err != nil {
		return nil, err
	}
	var out entities.Team
	err := s.mutate(ctx, constants.ResourceTeams, opCreate, func() error {
		return s.writer.Create(ctx, constants.ResourceTeams, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MaintenanceService) UpdateTeam(ctx context.Context, id int64, payload dto.TeamPayloadDTO) (*entities.Team, error) {
	if err := s.check(payload); err != nil {
		return nil, err
	}
	var out entities.Team
	err := s.mutate(ctx, constants.ResourceTeams, opUpdate, func() error {
		return s.writer.Update(ctx, constants.ResourceTeams, id, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MaintenanceService) DeleteTeam(ctx context.Context, id int64) error {
	return s.mutate(ctx, constants.ResourceTeams, opDelete, func() error {
		return s.writer.Delete(ctx, constants.ResourceTeams, id)
	})
}

// ----- ТЕХНИКИ -----

func (s *MaintenanceService) AddTechnician(ctx context.Context, payload dto.TechnicianPayloadDTO) (*entities.Technician, error) {
	if err := s.check(payload); err != nil {
		return nil, err
	}
	var out entities.Technician
	err := s.mutate(ctx, constants.ResourceTechnicians, opCreate, func() error {
		return s.writer.Create(ctx, constants.ResourceTechnicians, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MaintenanceService) UpdateTechnician(ctx context.Context, id int64, payload dto.TechnicianPayloadDTO) (*entities.Technician, error) {
	if err := s.check(payload); err != nil {
		return nil, err
	}
	var out entities.Technician
	err := s.mutate(ctx, constants.ResourceTechnicians, opUpdate, func() error {
		return s.writer.Update(ctx, constants.ResourceTechnicians, id, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MaintenanceService) DeleteTechnician(ctx context.Context, id int64) error {
	return s.mutate(ctx, constants.ResourceTechnicians, opDelete, func() error {
		return s.writer.Delete(ctx, constants.ResourceTechnicians, id)
	})
}

// ----- РАБОЧИЕ ЦЕНТРЫ -----

func withWorkCenterDefaults(p dto.WorkCenterPayloadDTO) dto.WorkCenterPayloadDTO {
	if p.CapacityTime == 0 {
		p.CapacityTime = constants.DefaultCapacityTime
	}
	if p.TimeEfficiency == 0 {
		p.TimeEfficiency = constants.DefaultTimeEfficiency
	}
	if p.OEETarget == 0 {
		p.OEETarget = constants.DefaultOEETarget
	}
	return p
}

func (s *MaintenanceService) AddWorkCenter(ctx context.Context, payload dto.WorkCenterPayloadDTO) (*entities.WorkCenter, error) {
	payload = withWorkCenterDefaults(payload)
	if err := s.check(payload); err != nil {
		return nil, err
	}
	var out entities.WorkCenter
	err := s.mutate(ctx, constants.ResourceWorkCenters, opCreate, func() error {
		return s.writer.Create(ctx, constants.ResourceWorkCenters, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MaintenanceService) UpdateWorkCenter(ctx context.Context, id int64, payload dto.WorkCenterPayloadDTO) (*entities.WorkCenter, error) {
	if err := s.check(payload); err != nil {
		return nil, err
	}
	var out entities.WorkCenter
	err := s.mutate(ctx, constants.ResourceWorkCenters, opUpdate, func() error {
		return s.writer.Update(ctx, constants.ResourceWorkCenters, id, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MaintenanceService) DeleteWorkCenter(ctx context.Context, id int64) error {
	return s.mutate(ctx, constants.ResourceWorkCenters, opDelete, func() error {
		return s.writer.Delete(ctx, constants.ResourceWorkCenters, id)
	})
}

// ----- КАТЕГОРИИ -----

func (s *MaintenanceService) AddEquipmentCategory(ctx context.Context, payload dto.EquipmentCategoryPayloadDTO) (*entities.EquipmentCategory, error) {
	if err := s.check(payload); err != nil {
		return nil, err
	}
	var out entities.EquipmentCategory
	err := s.mutate(ctx, constants.ResourceEquipmentCategories, opCreate, func() error {
		return s.writer.Create(ctx, constants.ResourceEquipmentCategories, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MaintenanceService) UpdateEquipmentCategory(ctx context.Context, id int64, payload dto.EquipmentCategoryPayloadDTO) (*entities.EquipmentCategory, error) {
	if err := s.check(payload); err != nil {
		return nil, err
	}
	var out entities.EquipmentCategory
	err := s.mutate(ctx, constants.ResourceEquipmentCategories, opUpdate, func() error {
		return s.writer.Update(ctx, constants.ResourceEquipmentCategories, id, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MaintenanceService) DeleteEquipmentCategory(ctx context.Context, id int64) error {
	return s.mutate(ctx, constants.ResourceEquipmentCategories, opDelete, func() error {
		return s.writer.Delete(ctx, constants.ResourceEquipmentCategories, id)
	})
}

// ----- ЗАЯВКИ -----

// prepareRequest проверяет цель и подставляет значения по умолчанию.
// Команда и техник берутся из оборудования. Стадия и приоритет по умолчанию
// подставляются только при создании.
func (s *MaintenanceService) prepareRequest(p dto.MaintenanceRequestPayloadDTO, create bool) (dto.MaintenanceRequestPayloadDTO, error) {
	if !p.HasSingleTarget() {
		return p, fmt.Errorf("%w: указаны и оборудование, и рабочий центр", apperrors.ErrAmbiguousTarget)
	}
	if create && p.Stage == "" {
		p.Stage = lifecycle.Initial
	}
	if create && p.Priority == "" {
		p.Priority = constants.DefaultPriority
	}
	if p.EquipmentID.Valid {
		if eq, ok := s.store.Current().EquipmentByID(p.EquipmentID.Int64); ok {
			if !p.TeamID.Valid {
				p.TeamID = eq.TeamID
			}
			if !p.TechnicianID.Valid {
				p.TechnicianID = eq.TechnicianID
			}
		}
	}
	return p, s.check(p)
}

func (s *MaintenanceService) AddRequest(ctx context.Context, payload dto.MaintenanceRequestPayloadDTO) (*entities.MaintenanceRequest, error) {
	payload, err := s.prepareRequest(payload, true)
	if err != nil {
		return nil, err
	}
	var out entities.MaintenanceRequest
	err = s.mutate(ctx, constants.ResourceRequests, opCreate, func() error {
		return s.writer.Create(ctx, constants.ResourceRequests, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRequest: пустые стадия и приоритет не отправляются, сервер оставляет
// сохранённые.
func (s *MaintenanceService) UpdateRequest(ctx context.Context, id int64, payload dto.MaintenanceRequestPayloadDTO) (*entities.MaintenanceRequest, error) {
	payload, err := s.prepareRequest(payload, false)
	if err != nil {
		return nil, err
	}
	var out entities.MaintenanceRequest
	err = s.mutate(ctx, constants.ResourceRequests, opUpdate, func() error {
		return s.writer.Update(ctx, constants.ResourceRequests, id, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MaintenanceService) DeleteRequest(ctx context.Context, id int64) error {
	return s.mutate(ctx, constants.ResourceRequests, opDelete, func() error {
		return s.writer.Delete(ctx, constants.ResourceRequests, id)
	})
}

// UpdateRequestStage выставляет любую допустимую стадию, смежность не проверяется.
func (s *MaintenanceService) UpdateRequestStage(ctx context.Context, id int64, stage lifecycle.Stage) (*entities.MaintenanceRequest, error) {
	if _, err := lifecycle.Parse(stage.String()); err != nil {
		return nil, err
	}
	var out *entities.MaintenanceRequest
	err := s.mutate(ctx, constants.ResourceRequests, opStage, func() error {
		var err error
		out, err = s.writer.UpdateRequestStage(ctx, id, stage)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StepRequestStage сдвигает заявку на соседнюю колонку доски.
func (s *MaintenanceService) StepRequestStage(ctx context.Context, id int64, dir lifecycle.Direction) (*entities.MaintenanceRequest, error) {
	current, ok := s.store.Current().RequestByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: заявка %d", apperrors.ErrNotFound, id)
	}
	next, err := lifecycle.Step(current.Stage, dir)
	if err != nil {
		return nil, err
	}
	return s.UpdateRequestStage(ctx, id, next)
}
