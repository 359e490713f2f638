package service

import (
	"context"
	"time"

	"imagine-algorithm/internal/dto"
	"imagine-algorithm/internal/metrics"
	"imagine-algorithm/pkg/board"
	"imagine-algorithm/pkg/events"
	"imagine-algorithm/pkg/store"
)

type IBoardService interface {
	Get(ctx context.Context, sessionId string) *dto.BoardResponse
	AddColumn(ctx context.Context, sessionId string) (*dto.BoardResponse, error)
	RenameColumn(ctx context.Context, sessionId, column string, req *dto.RenameColumnRequest) (*dto.BoardResponse, error)
	AddItem(ctx context.Context, sessionId, column string) (*dto.BoardResponse, error)
	UpdateItem(ctx context.Context, sessionId, itemId string, req *dto.UpdateItemRequest) (*dto.BoardResponse, error)
	CycleColor(ctx context.Context, sessionId, itemId string, req *dto.ItemColumnRequest) (*dto.BoardResponse, error)
	DeleteItem(ctx context.Context, sessionId, itemId string, req *dto.ItemColumnRequest) (*dto.BoardResponse, error)
	Move(ctx context.Context, sessionId string, req *dto.MoveItemRequest) (*dto.BoardResponse, error)
}

type boardService struct {
	sessions  ISessionService
	analytics IAnalyticsService
	metrics   *metrics.Metrics
}

func NewBoardService(sessions ISessionService, analytics IAnalyticsService, m *metrics.Metrics) IBoardService {
	return &boardService{sessions: sessions, analytics: analytics, metrics: m}
}

func (s *boardService) Get(ctx context.Context, sessionId string) *dto.BoardResponse {
	var res *dto.BoardResponse
	s.sessions.Acquire(sessionId).Do(func(st store.State) {
		res = &dto.BoardResponse{Columns: st.Board.Columns()}
	})
	return res
}

// apply runs op against the session board and returns the board afterwards.
func (s *boardService) apply(ctx context.Context, sessionId, operation string, op func(b *board.Board) error) (*dto.BoardResponse, error) {
	var res *dto.BoardResponse
	var err error
	s.sessions.Acquire(sessionId).Do(func(st store.State) {
		if err = op(st.Board); err != nil {
			return
		}
		res = &dto.BoardResponse{Columns: st.Board.Columns()}
	})

	s.metrics.RecordBoardOperation(operation, err == nil)
	if err != nil {
		return nil, err
	}
	s.analytics.Track(ctx, events.BoardChanged(sessionId, operation, time.Now()))
	return res, nil
}

func (s *boardService) AddColumn(ctx context.Context, sessionId string) (*dto.BoardResponse, error) {
	return s.apply(ctx, sessionId, "add_column", func(b *board.Board) error {
		b.AddColumn()
		return nil
	})
}

func (s *boardService) RenameColumn(ctx context.Context, sessionId, column string, req *dto.RenameColumnRequest) (*dto.BoardResponse, error) {
	return s.apply(ctx, sessionId, "rename_column", func(b *board.Board) error {
		return b.RenameColumn(column, req.Name)
	})
}

func (s *boardService) AddItem(ctx context.Context, sessionId, column string) (*dto.BoardResponse, error) {
	return s.apply(ctx, sessionId, "add_item", func(b *board.Board) error {
		_, err := b.AddItem(column)
		return err
	})
}

func (s *boardService) UpdateItem(ctx context.Context, sessionId, itemId string, req *dto.UpdateItemRequest) (*dto.BoardResponse, error) {
	return s.apply(ctx, sessionId, "rename_item", func(b *board.Board) error {
		_, err := b.RenameItem(req.Column, itemId, req.Name)
		return err
	})
}

func (s *boardService) CycleColor(ctx context.Context, sessionId, itemId string, req *dto.ItemColumnRequest) (*dto.BoardResponse, error) {
	return s.apply(ctx, sessionId, "cycle_color", func(b *board.Board) error {
		_, err := b.CycleColor(req.Column, itemId)
		return err
	})
}

func (s *boardService) DeleteItem(ctx context.Context, sessionId, itemId string, req *dto.ItemColumnRequest) (*dto.BoardResponse, error) {
	return s.apply(ctx, sessionId, "delete_item", func(b *board.Board) error {
		return b.DeleteItem(req.Column, itemId)
	})
}

func (s *boardService) Move(ctx context.Context, sessionId string, req *dto.MoveItemRequest) (*dto.BoardResponse, error) {
	return s.apply(ctx, sessionId, "move", func(b *board.Board) error {
		return b.Move(req.SourceColumn, req.SourceIndex, req.DestColumn, req.DestIndex)
	})
}
