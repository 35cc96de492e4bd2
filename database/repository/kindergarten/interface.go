// File: database/repository/kindergarten/interface.go
package kindergartenRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phucnvzeud/center-x-sub000/database"
	"github.com/phucnvzeud/center-x-sub000/models"
)

type KindergartenRepository interface {
	Create(ctx context.Context, class *models.KindergartenClass) error
	GetByID(ctx context.Context, id string) (*models.KindergartenClass, error)
	List(ctx context.Context, schoolID string) ([]models.KindergartenClass, error)
	UpdateMeta(ctx context.Context, class *models.KindergartenClass) error
	// ReplaceSessions writes the in-memory session list and exception set back
	// as one atomic update, guarded by the aggregate version.
	ReplaceSessions(ctx context.Context, id string, sessions []models.Session, exceptions []time.Time, version int) error
	Delete(ctx context.Context, id string) error
}

type mongoKindergartenRepo struct {
	coll *mongo.Collection
}

// NewMongoKindergartenRepo constructs a new MongoDB KindergartenRepository.
func NewMongoKindergartenRepo() KindergartenRepository {
	return &mongoKindergartenRepo{
		coll: database.GetDatabase().Collection("kindergarten_classes"),
	}
}
