package compensation

import (
	"context"
	"time"

	compensationerrors "go-directory/internal/compensation/errors"
	"go-directory/internal/employee"
	employeeerrors "go-directory/internal/employee/errors"
	"go-directory/internal/events"
	"go-directory/internal/shared/contextutil"

	"go.uber.org/zap"
)

// EmployeeFinder checks that the owning employee exists. employee.Repository
// satisfies it.
type EmployeeFinder interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitCompensationRequest) (CompensationResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (CompensationResponse, error)
}

type service struct {
	repo      Repository
	employees EmployeeFinder
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	employees EmployeeFinder,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("compensation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compensation.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{
		repo:      repo,
		employees: employees,
		publisher: publisher,
		logger:    l,
	}
}

// Submit stores req as the only compensation of employeeID. An existing record
// is deleted and replaced wholesale.
func (s *service) Submit(
	ctx context.Context,
	employeeID string,
	req SubmitCompensationRequest,
) (CompensationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit compensation requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return CompensationResponse{}, err
	}

	comp, err := fromRequest(employeeID, req)
	if err != nil {
		return CompensationResponse{}, err
	}

	existing, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		log.Error("submit compensation lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return CompensationResponse{}, mapRepositoryError(err)
	}

	replaced := existing != nil
	if replaced {
		if err := s.repo.Delete(ctx, employeeID); err != nil {
			log.Error("submit compensation delete existing failed", zap.String("employee_id", employeeID), zap.Error(err))
			return CompensationResponse{}, mapRepositoryError(err)
		}
		err = s.repo.Save(ctx, comp)
	} else {
		err = s.repo.Create(ctx, comp)
	}
	if err != nil {
		log.Error("submit compensation persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return CompensationResponse{}, mapRepositoryError(err)
	}

	resp := mapToResponse(*comp)
	s.publish(ctx, resp, replaced)

	log.Info("submit compensation success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Bool("replaced", replaced),
	)

	return resp, nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (CompensationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get compensation requested", zap.String("employee_id", employeeID))

	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return CompensationResponse{}, err
	}

	comp, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		log.Error("get compensation failed", zap.String("employee_id", employeeID), zap.Error(err))
		return CompensationResponse{}, mapRepositoryError(err)
	}
	if comp == nil {
		return CompensationResponse{}, compensationerrors.NoCompensationFor(employeeID)
	}

	return mapToResponse(*comp), nil
}

func (s *service) ensureEmployee(ctx context.Context, employeeID string) error {
	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		s.logger.Error("employee lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return err
	}
	if empl == nil {
		return employeeerrors.InvalidEmployeeID(employeeID)
	}
	return nil
}

func (s *service) publish(ctx context.Context, resp CompensationResponse, replaced bool) {
	event := events.CompensationSubmittedEvent{
		EventType:     events.CompensationSubmitted,
		RequestID:     contextutil.GetRequestID(ctx),
		EmployeeID:    resp.EmployeeCompensationID,
		Salary:        resp.Salary,
		EffectiveDate: resp.EffectiveDate,
		Replaced:      replaced,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.publisher.PublishCompensationEvent(ctx, event); err != nil {
		s.logger.Error("publish compensation event failed",
			zap.String("employee_id", resp.EmployeeCompensationID),
			zap.Error(err),
		)
	}
}

func fromRequest(employeeID string, req SubmitCompensationRequest) (*Compensation, error) {
	comp := &Compensation{EmployeeCompensationID: employeeID}

	if req.Salary != nil {
		formatted, err := FormatSalary(*req.Salary)
		if err != nil {
			return nil, err
		}
		comp.Salary = formatted
	}

	if req.EffectiveDate != "" {
		d, err := time.Parse(dateLayout, req.EffectiveDate)
		if err != nil {
			return nil, compensationerrors.ErrInvalidEffectiveDate
		}
		comp.EffectiveDate = &d
	}

	return comp, nil
}

func mapToResponse(comp Compensation) CompensationResponse {
	resp := CompensationResponse{
		EmployeeCompensationID: comp.EmployeeCompensationID,
		Salary:                 comp.Salary,
	}
	if comp.EffectiveDate != nil {
		resp.EffectiveDate = comp.EffectiveDate.Format(dateLayout)
	}
	return resp
}
