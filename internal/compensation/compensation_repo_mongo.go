package compensation

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "compensations"

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(CollectionName)}
}

func (r *mongoRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*Compensation, error) {
	var comp Compensation
	if err := r.coll.FindOne(ctx, bson.M{"_id": employeeID}).Decode(&comp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &comp, nil
}

func (r *mongoRepository) Create(ctx context.Context, comp *Compensation) error {
	touch(comp)
	_, err := r.coll.InsertOne(ctx, comp)
	return err
}

func (r *mongoRepository) Save(ctx context.Context, comp *Compensation) error {
	touch(comp)
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": comp.EmployeeCompensationID},
		comp,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *mongoRepository) Delete(ctx context.Context, employeeID string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": employeeID})
	return err
}

func touch(comp *Compensation) {
	now := time.Now().UTC()
	if comp.CreatedAt.IsZero() {
		comp.CreatedAt = now
	}
	comp.UpdatedAt = now
}
