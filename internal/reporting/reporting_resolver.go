package reporting

import (
	"context"

	"go-directory/internal/employee"
	employeeerrors "go-directory/internal/employee/errors"
	reportingerrors "go-directory/internal/reporting/errors"

	"go.uber.org/zap"
)

// Finder looks up a single employee. Absence is reported as (nil, nil).
// employee.Repository satisfies it.
type Finder interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

type Resolver struct {
	finder Finder
	logger *zap.Logger
}

func NewResolver(finder Finder, logger ...*zap.Logger) *Resolver {
	l := zap.L().Named("reporting.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.resolver")
	}
	return &Resolver{finder: finder, logger: l}
}

// Resolve hydrates the report tree under rootID and counts every descendant.
// It performs one lookup per visited node and reads nothing concurrently.
// A diamond is counted once per path that reaches it; a cycle is an error.
func (r *Resolver) Resolve(ctx context.Context, rootID string) (Structure, error) {
	root, err := r.find(ctx, rootID)
	if err != nil {
		return Structure{}, err
	}

	w := walk{
		resolver: r,
		path:     map[string]struct{}{root.EmployeeID: {}},
	}

	node := toNode(root)
	count, err := w.hydrate(ctx, &node, root.ReportIDs())
	if err != nil {
		return Structure{}, err
	}

	r.logger.Debug("reporting structure resolved",
		zap.String("employee_id", rootID),
		zap.Int("number_of_reports", count),
		zap.Int("lookups", w.lookups+1),
	)

	return Structure{Employee: node, NumberOfReports: count}, nil
}

func (r *Resolver) find(ctx context.Context, id string) (*employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	empl, err := r.finder.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empl == nil {
		return nil, employeeerrors.InvalidEmployeeID(id)
	}
	return empl, nil
}

// walk carries the state of a single traversal. path holds the ids on the
// way from the root to the node being hydrated.
type walk struct {
	resolver *Resolver
	path     map[string]struct{}
	lookups  int
}

func (w *walk) hydrate(ctx context.Context, node *Node, reportIDs []string) (int, error) {
	if len(reportIDs) == 0 {
		return 0, nil
	}

	count := 0
	node.DirectReports = make([]Node, 0, len(reportIDs))

	for _, id := range reportIDs {
		if _, onPath := w.path[id]; onPath {
			w.resolver.logger.Warn("reporting cycle detected",
				zap.String("employee_id", id),
				zap.String("manager_id", node.EmployeeID),
			)
			return 0, reportingerrors.CycleDetected(id)
		}

		child, err := w.resolver.find(ctx, id)
		w.lookups++
		if err != nil {
			return 0, err
		}

		childNode := toNode(child)

		w.path[id] = struct{}{}
		sub, err := w.hydrate(ctx, &childNode, child.ReportIDs())
		delete(w.path, id)
		if err != nil {
			return 0, err
		}

		count += 1 + sub
		node.DirectReports = append(node.DirectReports, childNode)
	}

	return count, nil
}

func toNode(empl *employee.Employee) Node {
	return Node{
		EmployeeID: empl.EmployeeID,
		FirstName:  empl.FirstName,
		LastName:   empl.LastName,
		Position:   empl.Position,
		Department: empl.Department,
	}
}
