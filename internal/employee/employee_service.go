package employee

import (
	"context"
	"time"

	employeeerrors "go-directory/internal/employee/errors"
	"go-directory/internal/events"
	"go-directory/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewService builds the employee service. A nil publisher disables lifecycle events.
func NewService(repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	empl := fromRequest(req)
	empl.EmployeeID = uuid.NewString()

	log.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID),
		zap.Int("direct_reports", len(empl.DirectReports)),
	)

	if err := s.repo.Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.publish(ctx, events.EmployeeCreated, empl.EmployeeID)

	log.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get employee by id requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl == nil {
		log.Warn("get employee by id not found", zap.String("employee_id", id))
		return EmployeeResponse{}, employeeerrors.InvalidEmployeeID(id)
	}

	return mapToResponse(*empl), nil
}

// Update replaces the stored record wholesale: whatever was at id is removed and
// req is written in its place. Fields missing from req are not carried over.
func (s *service) Update(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	empl := fromRequest(req)
	empl.EmployeeID = id

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("update employee delete existing failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.repo.Save(ctx, empl); err != nil {
		log.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.publish(ctx, events.EmployeeUpdated, id)

	log.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

// publish is best effort; the write has already happened.
func (s *service) publish(ctx context.Context, eventType, employeeID string) {
	event := events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishEmployeeEvent(ctx, event); err != nil {
		s.logger.Error("publish employee event failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
}

func fromRequest(req EmployeeRequest) *Employee {
	var reports []DirectReport
	if len(req.DirectReports) > 0 {
		reports = make([]DirectReport, len(req.DirectReports))
		for i, r := range req.DirectReports {
			reports[i] = DirectReport{EmployeeID: r.EmployeeID}
		}
	}

	return &Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Position:      req.Position,
		Department:    req.Department,
		DirectReports: reports,
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID: empl.EmployeeID,
		FirstName:  empl.FirstName,
		LastName:   empl.LastName,
		Position:   empl.Position,
		Department: empl.Department,
	}
	if len(empl.DirectReports) > 0 {
		resp.DirectReports = make([]EmployeeResponse, len(empl.DirectReports))
		for i, r := range empl.DirectReports {
			resp.DirectReports[i] = EmployeeResponse{EmployeeID: r.EmployeeID}
		}
	}
	return resp
}
