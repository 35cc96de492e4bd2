// File: services/directory/directoryService.go
package directory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	directoryRepo "github.com/phucnvzeud/center-x-sub000/database/repository/directory"
	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
)

// DirectoryService manages the organisational tree of regions, branches and
// schools that courses and kindergarten classes hang off.
type DirectoryService interface {
	CreateRegion(ctx context.Context, name string) (*models.Region, error)
	ListRegions(ctx context.Context) ([]models.Region, error)
	DeleteRegion(ctx context.Context, id string) error

	CreateBranch(ctx context.Context, regionID, name, address string) (*models.Branch, error)
	ListBranches(ctx context.Context, regionID string) ([]models.Branch, error)
	DeleteBranch(ctx context.Context, id string) error

	CreateSchool(ctx context.Context, regionID, name, address, phone string) (*models.School, error)
	ListSchools(ctx context.Context, regionID string) ([]models.School, error)
	DeleteSchool(ctx context.Context, id string) error
}

// DefaultDirectoryService is the production DirectoryService implementation.
type DefaultDirectoryService struct {
	Repo directoryRepo.DirectoryRepository
}

// NewDefaultDirectoryService constructs a DirectoryService backed by MongoDB.
func NewDefaultDirectoryService(repo directoryRepo.DirectoryRepository) *DefaultDirectoryService {
	return &DefaultDirectoryService{Repo: repo}
}

func (s *DefaultDirectoryService) CreateRegion(ctx context.Context, name string) (*models.Region, error) {
	if name == "" {
		return nil, &scheduling.ValidationError{Message: "region name is required"}
	}
	region := &models.Region{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateRegion(ctx, region); err != nil {
		return nil, err
	}
	return region, nil
}

func (s *DefaultDirectoryService) ListRegions(ctx context.Context) ([]models.Region, error) {
	return s.Repo.ListRegions(ctx)
}

func (s *DefaultDirectoryService) DeleteRegion(ctx context.Context, id string) error {
	if err := s.Repo.DeleteRegion(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &scheduling.NotFoundError{Kind: "region", ID: id}
		}
		return err
	}
	return nil
}

// CreateBranch requires an existing parent region.
func (s *DefaultDirectoryService) CreateBranch(ctx context.Context, regionID, name, address string) (*models.Branch, error) {
	if name == "" {
		return nil, &scheduling.ValidationError{Message: "branch name is required"}
	}
	if _, err := s.Repo.GetRegion(ctx, regionID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &scheduling.NotFoundError{Kind: "region", ID: regionID}
		}
		return nil, err
	}
	branch := &models.Branch{
		ID:        uuid.New().String(),
		RegionID:  regionID,
		Name:      name,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateBranch(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func (s *DefaultDirectoryService) ListBranches(ctx context.Context, regionID string) ([]models.Branch, error) {
	return s.Repo.ListBranches(ctx, regionID)
}

func (s *DefaultDirectoryService) DeleteBranch(ctx context.Context, id string) error {
	if err := s.Repo.DeleteBranch(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &scheduling.NotFoundError{Kind: "branch", ID: id}
		}
		return err
	}
	return nil
}

// CreateSchool requires an existing parent region.
func (s *DefaultDirectoryService) CreateSchool(ctx context.Context, regionID, name, address, phone string) (*models.School, error) {
	if name == "" {
		return nil, &scheduling.ValidationError{Message: "school name is required"}
	}
	if _, err := s.Repo.GetRegion(ctx, regionID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &scheduling.NotFoundError{Kind: "region", ID: regionID}
		}
		return nil, err
	}
	school := &models.School{
		ID:        uuid.New().String(),
		RegionID:  regionID,
		Name:      name,
		Address:   address,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateSchool(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}

func (s *DefaultDirectoryService) ListSchools(ctx context.Context, regionID string) ([]models.School, error) {
	return s.Repo.ListSchools(ctx, regionID)
}

func (s *DefaultDirectoryService) DeleteSchool(ctx context.Context, id string) error {
	if err := s.Repo.DeleteSchool(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &scheduling.NotFoundError{Kind: "school", ID: id}
		}
		return err
	}
	return nil
}
