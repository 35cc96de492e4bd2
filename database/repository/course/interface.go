// File: database/repository/course/interface.go
package courseRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phucnvzeud/center-x-sub000/database"
	"github.com/phucnvzeud/center-x-sub000/models"
)

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context, branchID string) ([]models.Course, error)
	UpdateMeta(ctx context.Context, course *models.Course) error
	// ReplaceSessions writes the in-memory session list and exception set back
	// as one atomic update, guarded by the aggregate version.
	ReplaceSessions(ctx context.Context, id string, sessions []models.Session, exceptions []time.Time, version int) error
	Delete(ctx context.Context, id string) error
}

type mongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo constructs a new MongoDB CourseRepository.
func NewMongoCourseRepo() CourseRepository {
	return &mongoCourseRepo{
		coll: database.GetDatabase().Collection("courses"),
	}
}
