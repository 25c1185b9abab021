package service

import (
	"context"
	"log/slog"

	"github.com/securepass/securepass-go/internal/history"
	"github.com/securepass/securepass-go/internal/model"
)

// HistoryService records masked passwords per user.
type HistoryService struct {
	store    history.Store
	capacity int
}

func NewHistoryService(store history.Store, capacity int) *HistoryService {
	if capacity <= 0 {
		capacity = history.DefaultCapacity
	}
	return &HistoryService{store: store, capacity: capacity}
}

// Record stores a masked entry for userID. Failures are logged, not returned.
func (s *HistoryService) Record(ctx context.Context, userID int64, password string, kind history.Kind, tier string) {
	if err := s.store.Push(ctx, userID, history.NewEntry(password, kind, tier)); err != nil {
		slog.Warn("history record failed", "user_id", userID, "kind", kind, "error", err)
	}
}

func (s *HistoryService) List(ctx context.Context, userID int64) (model.HistoryResponse, error) {
	entries, err := s.store.List(ctx, userID)
	if err != nil {
		return model.HistoryResponse{}, err
	}
	return model.HistoryResponse{Entries: entries, Capacity: s.capacity}, nil
}

func (s *HistoryService) Clear(ctx context.Context, userID int64) error {
	return s.store.Clear(ctx, userID)
}
