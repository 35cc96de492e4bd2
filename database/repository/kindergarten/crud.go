// File: database/repository/kindergarten/crud.go
package kindergartenRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phucnvzeud/center-x-sub000/database/repository"
	"github.com/phucnvzeud/center-x-sub000/models"
)

func (r *mongoKindergartenRepo) Create(ctx context.Context, class *models.KindergartenClass) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, class)
	return err
}

func (r *mongoKindergartenRepo) GetByID(ctx context.Context, id string) (*models.KindergartenClass, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var class models.KindergartenClass
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&class); err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *mongoKindergartenRepo) List(ctx context.Context, schoolID string) ([]models.KindergartenClass, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if schoolID != "" {
		filter["schoolId"] = schoolID
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []models.KindergartenClass
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *mongoKindergartenRepo) UpdateMeta(ctx context.Context, class *models.KindergartenClass) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        class.Name,
		"schoolId":    class.SchoolID,
		"room":        class.Room,
		"teacherName": class.TeacherName,
		"updatedAt":   time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": class.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoKindergartenRepo) ReplaceSessions(ctx context.Context, id string, sessions []models.Session, exceptions []time.Time, version int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "version": version}
	update := bson.M{
		"$set": bson.M{
			"sessions":          sessions,
			"holidayExceptions": exceptions,
			"updatedAt":         time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
		if err != nil {
			return err
		}
		if count == 0 {
			return mongo.ErrNoDocuments
		}
		return repository.ErrVersionConflict
	}
	return nil
}

func (r *mongoKindergartenRepo) Delete(ctx context.Context, id string) error {
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
