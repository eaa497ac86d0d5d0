package employee

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "employees"

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(CollectionName)}
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&empl)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &empl, nil
}

func (r *mongoRepository) Create(ctx context.Context, empl *Employee) error {
	now := time.Now().UTC()
	if empl.CreatedAt.IsZero() {
		empl.CreatedAt = now
	}
	empl.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, empl)
	return err
}

func (r *mongoRepository) Save(ctx context.Context, empl *Employee) error {
	now := time.Now().UTC()
	if empl.CreatedAt.IsZero() {
		empl.CreatedAt = now
	}
	empl.UpdatedAt = now

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": empl.EmployeeID},
		empl,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
