package service

import (
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/pkg/snowflake"
	"Nexus/types"
	"context"
	"fmt"
)

var _ IBrowsingService = (*BrowsingService)(nil)

type IBrowsingService interface {
	Record(ctx context.Context, memberID uint64, req *types.RecordHistoryReq) error
	List(ctx context.Context, memberID uint64, req *types.ListHistoryReq) ([]models.BrowsingHistory, error)
	Remove(ctx context.Context, memberID, id uint64) error
	Clear(ctx context.Context, memberID uint64) (int64, error)
}

type BrowsingService struct {
	History HistoryStore
}

func (s *BrowsingService) Record(ctx context.Context, memberID uint64, req *types.RecordHistoryReq) error {
	if memberID == 0 {
		return ErrLoginRequired
	}
	item := &models.BrowsingHistory{
		ID:           snowflake.GenID(),
		MemberID:     memberID,
		ContentType:  req.ContentType,
		ContentID:    req.ContentID,
		ContentTitle: req.ContentTitle,
	}
	if err := s.History.Record(ctx, item); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

func (s *BrowsingService) List(ctx context.Context, memberID uint64, req *types.ListHistoryReq) ([]models.BrowsingHistory, error) {
	page, size := req.Page, req.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	return s.History.List(ctx, memberID, req.ContentType, size, (page-1)*size)
}

func (s *BrowsingService) Remove(ctx context.Context, memberID, id uint64) error {
	n, err := s.History.Remove(ctx, memberID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return &reputation.ValidationError{Field: "id", Reason: "history record not found"}
	}
	return nil
}

func (s *BrowsingService) Clear(ctx context.Context, memberID uint64) (int64, error) {
	return s.History.Clear(ctx, memberID)
}
