package user

import (
	"context"
	"sort"
	"strings"
	"time"

	"marketly/models"
	"marketly/utils"

	"github.com/google/uuid"
)

// ListHistory returns the user's history, most recent date first.
func (s *DefaultUserService) ListHistory(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	history := append([]models.HistoryEntry{}, user.History...)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})
	return history, nil
}

// AddHistory records a use of a service. Status defaults to pending and the
// date to now.
func (s *DefaultUserService) AddHistory(ctx context.Context, userID string, req models.AddHistoryRequest) (*models.HistoryEntry, error) {
	serviceID := strings.TrimSpace(req.ServiceID)
	if serviceID == "" {
		return nil, utils.NewValidationError("serviceId is required")
	}

	status := models.HistoryPending
	if req.Status != "" {
		status = models.HistoryStatus(strings.ToLower(strings.TrimSpace(req.Status)))
		if !status.Valid() {
			return nil, utils.NewValidationError("status must be one of pending, completed, cancelled")
		}
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	if err := s.requireService(ctx, serviceID); err != nil {
		return nil, err
	}

	entry := models.HistoryEntry{
		ID:        uuid.New().String(),
		ServiceID: serviceID,
		Date:      date,
		Status:    status,
	}
	if err := s.Repo.AddHistory(ctx, userID, entry); err != nil {
		return nil, s.userError("AddHistory", err)
	}
	return &entry, nil
}
