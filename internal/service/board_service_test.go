package service

import (
	"context"
	"testing"
	"time"

	"imagine-algorithm/internal/dto"
	"imagine-algorithm/pkg/board"
	"imagine-algorithm/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardService_Operations(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	sid := uuid.NewString()

	initial := f.board.Get(ctx, sid)
	require.Len(t, initial.Columns, 3)
	first := initial.Columns[0].Items[0]

	res, err := f.board.Move(ctx, sid, &dto.MoveItemRequest{
		SourceColumn: "Behavioral Tracking", SourceIndex: 0,
		DestColumn: "Content Analysis", DestIndex: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, res.Columns[2].Items[0].ID)

	res, err = f.board.CycleColor(ctx, sid, first.ID, &dto.ItemColumnRequest{Column: "Content Analysis"})
	require.NoError(t, err)
	assert.Equal(t, board.ColorOrange, res.Columns[2].Items[0].Color)

	res, err = f.board.AddColumn(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "Category 4", res.Columns[3].Name)

	res, err = f.board.AddItem(ctx, sid, "Category 4")
	require.NoError(t, err)
	require.Len(t, res.Columns[3].Items, 1)
	added := res.Columns[3].Items[0]

	res, err = f.board.UpdateItem(ctx, sid, added.ID, &dto.UpdateItemRequest{Column: "Category 4", Name: "Sleep data"})
	require.NoError(t, err)
	assert.Equal(t, "Sleep data", res.Columns[3].Items[0].Name)

	res, err = f.board.DeleteItem(ctx, sid, added.ID, &dto.ItemColumnRequest{Column: "Category 4"})
	require.NoError(t, err)
	assert.Empty(t, res.Columns[3].Items)

	assert.Len(t, f.events.ofType(events.TypeBoardChanged), 6)
}

func TestBoardService_Errors(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	sid := uuid.NewString()

	_, err := f.board.Move(ctx, sid, &dto.MoveItemRequest{SourceColumn: "Behavioral Tracking", SourceIndex: 99, DestColumn: "Content Analysis"})
	assert.ErrorIs(t, err, board.ErrIndexOutOfRange)

	_, err = f.board.AddItem(ctx, sid, "Missing")
	assert.ErrorIs(t, err, board.ErrColumnNotFound)

	_, err = f.board.RenameColumn(ctx, sid, "Behavioral Tracking", &dto.RenameColumnRequest{Name: "Content Analysis"})
	assert.ErrorIs(t, err, board.ErrDuplicateColumn)

	_, err = f.board.DeleteItem(ctx, sid, "nope", &dto.ItemColumnRequest{Column: "Content Analysis"})
	assert.ErrorIs(t, err, board.ErrItemNotFound)

	assert.Empty(t, f.events.ofType(events.TypeBoardChanged))
}
