package reporting

import (
	"context"
	"time"

	"go-directory/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// resolveTimeout bounds a shared traversal once it no longer follows any
// single caller's context.
const resolveTimeout = 30 * time.Second

type Service interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Structure, error)
}

type service struct {
	resolver *Resolver
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(resolver *Resolver, logger ...*zap.Logger) Service {
	l := zap.L().Named("reporting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.service")
	}
	return &service{
		resolver: resolver,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

// GetByEmployeeID resolves the structure under employeeID. Identical requests
// already in flight share one traversal; nothing is kept once it returns.
// The traversal runs detached from the caller that started it, so one caller
// going away does not fail the others. Each caller still stops waiting when
// its own ctx is done.
func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (Structure, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get reporting structure requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", employeeID),
	)

	ch := s.sf.DoChan("reporting:"+employeeID, func() (interface{}, error) {
		resolveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), resolveTimeout)
		defer cancel()
		return s.resolver.Resolve(resolveCtx, employeeID)
	})

	select {
	case <-ctx.Done():
		log.Warn("get reporting structure abandoned", zap.String("employee_id", employeeID), zap.Error(ctx.Err()))
		return Structure{}, ctx.Err()

	case res := <-ch:
		if res.Err != nil {
			log.Warn("get reporting structure failed", zap.String("employee_id", employeeID), zap.Error(res.Err))
			return Structure{}, res.Err
		}
		if res.Shared {
			log.Debug("reporting structure shared with concurrent request", zap.String("employee_id", employeeID))
		}
		return res.Val.(Structure), nil
	}
}
