package service

import (
	"context"

	"imagine-algorithm/pkg/workshop"
)

type CardView struct {
	workshop.Card
	HoverColor string `json:"hover_color"`
	Sides      int    `json:"sides"`
}

type HomeView struct {
	Title string     `json:"title"`
	Intro string     `json:"intro"`
	Cards []CardView `json:"cards"`
}

type IWorkshopService interface {
	Home(ctx context.Context) HomeView
	Show(ctx context.Context, slug string) (*workshop.Detail, error)
}

type workshopService struct{}

func NewWorkshopService() IWorkshopService {
	return &workshopService{}
}

func (s *workshopService) Home(ctx context.Context) HomeView {
	cards := make([]CardView, len(workshop.Cards))
	for i, c := range workshop.Cards {
		cards[i] = CardView{Card: c, HoverColor: c.HoverColor(), Sides: c.Shape.Sides()}
	}
	return HomeView{Title: workshop.Title, Intro: workshop.Intro, Cards: cards}
}

func (s *workshopService) Show(ctx context.Context, slug string) (*workshop.Detail, error) {
	d, err := workshop.Lookup(slug)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
