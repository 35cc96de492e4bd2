// File: services/holidays/cache.go
package holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/phucnvzeud/center-x-sub000/models"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
)

// Apply results stay retrievable for a day, long enough for an operator to
// review an overnight batch.
const applyResultsTTL = 24 * time.Hour

func applyResultsKey(holidayID string) string {
	return "holiday:apply:" + holidayID
}

func (s *DefaultHolidayService) storeApplyResults(ctx context.Context, holidayID string, results []models.ApplyResult) error {
	if s.Cache == nil {
		return nil
	}
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return s.Cache.Set(ctx, applyResultsKey(holidayID), data, applyResultsTTL).Err()
}

// ApplyResults returns the per-owner outcomes of the most recent application
// batch for the holiday. A missing entry means no batch ran recently.
func (s *DefaultHolidayService) ApplyResults(ctx context.Context, holidayID string) ([]models.ApplyResult, error) {
	if s.Cache == nil {
		return nil, fmt.Errorf("holiday result cache is not configured")
	}
	data, err := s.Cache.Get(ctx, applyResultsKey(holidayID)).Result()
	if err != nil {
		return nil, &scheduling.NotFoundError{Kind: "holiday apply results", ID: holidayID}
	}
	var results []models.ApplyResult
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return nil, err
	}
	return results, nil
}
