// File: database/repository/directory/interface.go
package directoryRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phucnvzeud/center-x-sub000/database"
	"github.com/phucnvzeud/center-x-sub000/models"
)

// DirectoryRepository stores the organisational tree: regions own branches,
// regions own schools.
type DirectoryRepository interface {
	CreateRegion(ctx context.Context, region *models.Region) error
	ListRegions(ctx context.Context) ([]models.Region, error)
	GetRegion(ctx context.Context, id string) (*models.Region, error)
	DeleteRegion(ctx context.Context, id string) error

	CreateBranch(ctx context.Context, branch *models.Branch) error
	ListBranches(ctx context.Context, regionID string) ([]models.Branch, error)
	GetBranch(ctx context.Context, id string) (*models.Branch, error)
	DeleteBranch(ctx context.Context, id string) error

	CreateSchool(ctx context.Context, school *models.School) error
	ListSchools(ctx context.Context, regionID string) ([]models.School, error)
	GetSchool(ctx context.Context, id string) (*models.School, error)
	DeleteSchool(ctx context.Context, id string) error
}

type mongoDirectoryRepo struct {
	regions  *mongo.Collection
	branches *mongo.Collection
	schools  *mongo.Collection
}

// NewMongoDirectoryRepo constructs a new MongoDB DirectoryRepository.
func NewMongoDirectoryRepo() DirectoryRepository {
	db := database.GetDatabase()
	return &mongoDirectoryRepo{
		regions:  db.Collection("regions"),
		branches: db.Collection("branches"),
		schools:  db.Collection("schools"),
	}
}
