// File: database/repository/directory/crud.go
package directoryRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phucnvzeud/center-x-sub000/models"
)

func (r *mongoDirectoryRepo) CreateRegion(ctx context.Context, region *models.Region) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.regions.InsertOne(ctx, region)
	return err
}

func (r *mongoDirectoryRepo) ListRegions(ctx context.Context) ([]models.Region, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.regions.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var regions []models.Region
	if err := cursor.All(ctx, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *mongoDirectoryRepo) GetRegion(ctx context.Context, id string) (*models.Region, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var region models.Region
	if err := r.regions.FindOne(ctx, bson.M{"id": id}).Decode(&region); err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *mongoDirectoryRepo) DeleteRegion(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.regions.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoDirectoryRepo) CreateBranch(ctx context.Context, branch *models.Branch) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.branches.InsertOne(ctx, branch)
	return err
}

func (r *mongoDirectoryRepo) ListBranches(ctx context.Context, regionID string) ([]models.Branch, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if regionID != "" {
		filter["regionId"] = regionID
	}
	cursor, err := r.branches.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var branches []models.Branch
	if err := cursor.All(ctx, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *mongoDirectoryRepo) GetBranch(ctx context.Context, id string) (*models.Branch, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var branch models.Branch
	if err := r.branches.FindOne(ctx, bson.M{"id": id}).Decode(&branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *mongoDirectoryRepo) DeleteBranch(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.branches.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoDirectoryRepo) CreateSchool(ctx context.Context, school *models.School) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.schools.InsertOne(ctx, school)
	return err
}

func (r *mongoDirectoryRepo) ListSchools(ctx context.Context, regionID string) ([]models.School, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if regionID != "" {
		filter["regionId"] = regionID
	}
	cursor, err := r.schools.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schools []models.School
	if err := cursor.All(ctx, &schools); err != nil {
		return nil, err
	}
	return schools, nil
}

func (r *mongoDirectoryRepo) GetSchool(ctx context.Context, id string) (*models.School, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var school models.School
	if err := r.schools.FindOne(ctx, bson.M{"id": id}).Decode(&school); err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *mongoDirectoryRepo) DeleteSchool(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.schools.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
