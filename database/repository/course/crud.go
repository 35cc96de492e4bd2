// File: database/repository/course/crud.go
package courseRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phucnvzeud/center-x-sub000/database/repository"
	"github.com/phucnvzeud/center-x-sub000/models"
)

func (r *mongoCourseRepo) Create(ctx context.Context, course *models.Course) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, course)
	return err
}

func (r *mongoCourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var course models.Course
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *mongoCourseRepo) List(ctx context.Context, branchID string) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if branchID != "" {
		filter["branchId"] = branchID
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *mongoCourseRepo) UpdateMeta(ctx context.Context, course *models.Course) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        course.Name,
		"language":    course.Language,
		"level":       course.Level,
		"teacherName": course.TeacherName,
		"branchId":    course.BranchID,
		"updatedAt":   time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": course.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCourseRepo) ReplaceSessions(ctx context.Context, id string, sessions []models.Session, exceptions []time.Time, version int) error {
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
		// Distinguish a stale version from a missing document.
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

func (r *mongoCourseRepo) Delete(ctx context.Context, id string) error {
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
