// File: database/repository/holiday/crud.go
package holidayRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phucnvzeud/center-x-sub000/models"
)

func (r *mongoHolidayRepo) Create(ctx context.Context, holiday *models.Holiday) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, holiday)
	return err
}

func (r *mongoHolidayRepo) GetByID(ctx context.Context, id string) (*models.Holiday, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var holiday models.Holiday
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&holiday); err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (r *mongoHolidayRepo) List(ctx context.Context) ([]models.Holiday, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var holidays []models.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *mongoHolidayRepo) FindInRange(ctx context.Context, start, end time.Time) ([]models.Holiday, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var holidays []models.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *mongoHolidayRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
