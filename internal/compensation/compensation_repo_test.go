package compensation_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-directory/internal/compensation"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) (compensation.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return compensation.NewRepository(gdb), mock, db
}

func TestRepository_FindByEmployeeID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		effective := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"employee_compensation_id", "salary", "effective_date"}).
			AddRow("16a596ae", "$123,456.30", effective)
		mock.ExpectQuery(`SELECT \* FROM "compensations" WHERE employee_compensation_id = \$1`).
			WillReturnRows(rows)

		comp, err := repo.FindByEmployeeID(ctx, "16a596ae")

		require.NoError(t, err)
		require.NotNil(t, comp)
		assert.Equal(t, "$123,456.30", comp.Salary)
		require.NotNil(t, comp.EffectiveDate)
		assert.True(t, effective.Equal(*comp.EffectiveDate))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT \* FROM "compensations"`).
			WillReturnRows(sqlmock.NewRows([]string{"employee_compensation_id"}))

		comp, err := repo.FindByEmployeeID(ctx, "x")

		assert.NoError(t, err)
		assert.Nil(t, comp)
	})
}

func TestRepository_Writes(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO "compensations"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, &compensation.Compensation{EmployeeCompensationID: "a", Salary: "$1.00"}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("save", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO "compensations" .* ON CONFLICT`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Save(ctx, &compensation.Compensation{EmployeeCompensationID: "a", Salary: "$2.00"}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM "compensations" WHERE employee_compensation_id = \$1`).
			WithArgs("a").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "a"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
