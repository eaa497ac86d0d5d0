package compensation_test

import (
	"context"
	"testing"

	"go-directory/internal/compensation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find", func(mt *mtest.T) {
		repo := compensation.NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "directory.compensations", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "16a596ae"},
			{Key: "salary", Value: "$123,456.30"},
		}))

		comp, err := repo.FindByEmployeeID(ctx, "16a596ae")

		require.NoError(t, err)
		require.NotNil(t, comp)
		assert.Equal(t, "$123,456.30", comp.Salary)
		assert.Nil(t, comp.EffectiveDate)
	})

	mt.Run("find absent", func(mt *mtest.T) {
		repo := compensation.NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "directory.compensations", mtest.FirstBatch))

		comp, err := repo.FindByEmployeeID(ctx, "x")

		assert.NoError(t, err)
		assert.Nil(t, comp)
	})

	mt.Run("create save delete", func(mt *mtest.T) {
		repo := compensation.NewMongoRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		comp := &compensation.Compensation{EmployeeCompensationID: "a", Salary: "$1.00"}
		assert.NoError(t, repo.Create(ctx, comp))
		assert.False(t, comp.CreatedAt.IsZero())
		assert.NoError(t, repo.Save(ctx, comp))
		assert.NoError(t, repo.Delete(ctx, "a"))
	})
}
