package dto

import "imagine-algorithm/pkg/board"

type BoardResponse struct {
	Columns []board.Column `json:"columns"`
}

type RenameColumnRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

type UpdateItemRequest struct {
	Column string `json:"column" validate:"required"`
	Name   string `json:"name" validate:"required,max=80"`
}

type ItemColumnRequest struct {
	Column string `json:"column" validate:"required"`
}

type MoveItemRequest struct {
	SourceColumn string `json:"source_column" validate:"required"`
	SourceIndex  int    `json:"source_index" validate:"gte=0"`
	DestColumn   string `json:"dest_column" validate:"required"`
	DestIndex    int    `json:"dest_index" validate:"gte=0"`
}
