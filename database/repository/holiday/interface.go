// File: database/repository/holiday/interface.go
package holidayRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phucnvzeud/center-x-sub000/database"
	"github.com/phucnvzeud/center-x-sub000/models"
)

type HolidayRepository interface {
	Create(ctx context.Context, holiday *models.Holiday) error
	GetByID(ctx context.Context, id string) (*models.Holiday, error)
	List(ctx context.Context) ([]models.Holiday, error)
	// FindInRange returns holidays within the inclusive [start, end] range,
	// ordered by date.
	FindInRange(ctx context.Context, start, end time.Time) ([]models.Holiday, error)
	Delete(ctx context.Context, id string) error
}

type mongoHolidayRepo struct {
	coll *mongo.Collection
}

// NewMongoHolidayRepo constructs a new MongoDB HolidayRepository.
func NewMongoHolidayRepo() HolidayRepository {
	return &mongoHolidayRepo{
		coll: database.GetDatabase().Collection("holidays"),
	}
}
