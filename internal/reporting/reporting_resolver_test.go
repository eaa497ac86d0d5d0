package reporting_test

import (
	"context"
	"errors"
	"testing"

	"go-directory/internal/employee"
	employeeerrors "go-directory/internal/employee/errors"
	"go-directory/internal/reporting"
	reportingerrors "go-directory/internal/reporting/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFinder serves employees from a map and counts lookups.
type fakeFinder struct {
	employees map[string]*employee.Employee
	lookups   int
	err       error
}

func (f *fakeFinder) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	empl, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *empl
	return &cp, nil
}

func newFinder(records ...*employee.Employee) *fakeFinder {
	f := &fakeFinder{employees: map[string]*employee.Employee{}}
	for _, r := range records {
		f.employees[r.EmployeeID] = r
	}
	return f
}

func empl(id string, reports ...string) *employee.Employee {
	e := &employee.Employee{
		EmployeeID: id,
		FirstName:  "first-" + id,
		LastName:   "last-" + id,
		Position:   "position-" + id,
		Department: "Engineering",
	}
	for _, r := range reports {
		e.DirectReports = append(e.DirectReports, employee.DirectReport{EmployeeID: r})
	}
	return e
}

func countNodes(n reporting.Node) int {
	total := 1
	for _, c := range n.DirectReports {
		total += countNodes(c)
	}
	return total
}

// beatles is the sample directory: John manages Paul and Ringo, Ringo manages
// Pete and George.
func beatles() *fakeFinder {
	return newFinder(
		empl("john", "paul", "ringo"),
		empl("paul"),
		empl("ringo", "pete", "george"),
		empl("pete"),
		empl("george"),
	)
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("hydrates the whole tree", func(t *testing.T) {
		finder := beatles()
		r := reporting.NewResolver(finder)

		got, err := r.Resolve(ctx, "john")

		require.NoError(t, err)
		assert.Equal(t, 4, got.NumberOfReports)
		assert.Equal(t, "first-john", got.Employee.FirstName)
		require.Len(t, got.Employee.DirectReports, 2)

		paul := got.Employee.DirectReports[0]
		ringo := got.Employee.DirectReports[1]
		assert.Equal(t, "paul", paul.EmployeeID)
		assert.Equal(t, "first-paul", paul.FirstName)
		assert.Empty(t, paul.DirectReports)
		assert.Equal(t, "ringo", ringo.EmployeeID)
		assert.Equal(t, "position-ringo", ringo.Position)
		require.Len(t, ringo.DirectReports, 2)
		assert.Equal(t, "pete", ringo.DirectReports[0].EmployeeID)
		assert.Equal(t, "last-george", ringo.DirectReports[1].LastName)
	})

	t.Run("count equals nodes minus one", func(t *testing.T) {
		r := reporting.NewResolver(beatles())

		got, err := r.Resolve(ctx, "john")

		require.NoError(t, err)
		assert.Equal(t, countNodes(got.Employee)-1, got.NumberOfReports)
	})

	t.Run("one lookup per visited node", func(t *testing.T) {
		finder := beatles()
		r := reporting.NewResolver(finder)

		got, err := r.Resolve(ctx, "john")

		require.NoError(t, err)
		assert.Equal(t, 1+got.NumberOfReports, finder.lookups)
	})

	t.Run("no direct reports", func(t *testing.T) {
		r := reporting.NewResolver(beatles())

		got, err := r.Resolve(ctx, "paul")

		require.NoError(t, err)
		assert.Equal(t, 0, got.NumberOfReports)
		assert.Nil(t, got.Employee.DirectReports)
	})

	t.Run("empty and absent direct reports are the same", func(t *testing.T) {
		withEmpty := empl("a")
		withEmpty.DirectReports = []employee.DirectReport{}
		r := reporting.NewResolver(newFinder(withEmpty, empl("b")))

		a, err := r.Resolve(ctx, "a")
		require.NoError(t, err)
		b, err := r.Resolve(ctx, "b")
		require.NoError(t, err)

		assert.Equal(t, 0, a.NumberOfReports)
		assert.Equal(t, 0, b.NumberOfReports)
		assert.Nil(t, a.Employee.DirectReports)
	})

	t.Run("linear chain", func(t *testing.T) {
		r := reporting.NewResolver(newFinder(empl("root", "a"), empl("a", "b"), empl("b")))

		got, err := r.Resolve(ctx, "root")

		require.NoError(t, err)
		assert.Equal(t, 2, got.NumberOfReports)
		assert.Equal(t, "b", got.Employee.DirectReports[0].DirectReports[0].EmployeeID)
	})

	t.Run("idempotent on stable data", func(t *testing.T) {
		r := reporting.NewResolver(beatles())

		first, err := r.Resolve(ctx, "john")
		require.NoError(t, err)
		second, err := r.Resolve(ctx, "john")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("does not touch stored stubs", func(t *testing.T) {
		finder := beatles()
		r := reporting.NewResolver(finder)

		_, err := r.Resolve(ctx, "john")
		require.NoError(t, err)

		stored := finder.employees["john"]
		assert.Equal(t, []employee.DirectReport{{EmployeeID: "paul"}, {EmployeeID: "ringo"}}, stored.DirectReports)
	})

	t.Run("diamond counted once per path", func(t *testing.T) {
		r := reporting.NewResolver(newFinder(
			empl("root", "a", "b"),
			empl("a", "c"),
			empl("b", "c"),
			empl("c"),
		))

		got, err := r.Resolve(ctx, "root")

		require.NoError(t, err)
		assert.Equal(t, 4, got.NumberOfReports)
	})

	t.Run("unknown root", func(t *testing.T) {
		r := reporting.NewResolver(beatles())

		_, err := r.Resolve(ctx, "nobody")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.EqualError(t, err, "Invalid employeeId: nobody: Employee not found")
	})

	t.Run("dangling stub", func(t *testing.T) {
		r := reporting.NewResolver(newFinder(empl("root", "a", "gone"), empl("a")))

		_, err := r.Resolve(ctx, "root")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Contains(t, err.Error(), "gone")
	})

	t.Run("cycle", func(t *testing.T) {
		r := reporting.NewResolver(newFinder(empl("a", "b"), empl("b", "a")))

		_, err := r.Resolve(ctx, "a")

		assert.ErrorIs(t, err, reportingerrors.ErrReportingCycle)
		assert.Contains(t, err.Error(), "employeeId: a")
	})

	t.Run("self report", func(t *testing.T) {
		r := reporting.NewResolver(newFinder(empl("a", "a")))

		_, err := r.Resolve(ctx, "a")

		assert.ErrorIs(t, err, reportingerrors.ErrReportingCycle)
	})

	t.Run("store error", func(t *testing.T) {
		finder := beatles()
		finder.err = errors.New("db down")
		r := reporting.NewResolver(finder)

		_, err := r.Resolve(ctx, "john")

		assert.EqualError(t, err, "db down")
	})

	t.Run("cancelled context stops before lookup", func(t *testing.T) {
		finder := beatles()
		r := reporting.NewResolver(finder)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := r.Resolve(cctx, "john")

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, finder.lookups)
	})
}
