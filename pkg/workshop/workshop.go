// Package workshop holds the static catalog behind the homepage and the
// workshop detail pages.
package workshop

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotFound = errors.New("workshop not found")

const (
	Title = "Imagine Algorithm"
	Intro = "This is a framework of 6 workshops designed to help youth understand the steps involved " +
		"in the making of a machine learning algorithm - from data collection to implementation. " +
		"Through a creative interrogation of these steps, we are going to identify and expose " +
		"issues of exploitation and control, and the impact these algorithms have on our " +
		"collective civic-autonomy. We are going think about the development and implementation " +
		"of a better and more inclusive alternative, and how we might participate in high level " +
		"policy conversations."
)

// Shape is the polygon a workshop card is cut into.
type Shape string

const (
	Pentagon   Shape = "pentagon"
	Hexagon    Shape = "hexagon"
	Octagon    Shape = "octagon"
	Nonagon    Shape = "nonagon"
	Decagon    Shape = "decagon"
	Hendecagon Shape = "hendecagon"
)

// Sides returns the vertex count, falling back to a hexagon.
func (s Shape) Sides() int {
	switch s {
	case Pentagon:
		return 5
	case Octagon:
		return 8
	case Nonagon:
		return 9
	case Decagon:
		return 10
	case Hendecagon:
		return 11
	default:
		return 6
	}
}

type Card struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Title  string `json:"title"`
	Shape  Shape  `json:"shape"`
	Slug   string `json:"slug"`
	Color  string `json:"color"`
}

// HoverColor is the card colour darkened by 10%.
func (c Card) HoverColor() string {
	return Darken(c.Color)
}

// Cards are shown on the homepage in order. Every card currently leads to
// the data collection workshop.
var Cards = []Card{
	{ID: "1", Number: "001", Title: "Data Collection", Shape: Pentagon, Slug: "data-collection", Color: "#BFE752"},
	{ID: "2", Number: "002", Title: "Data Labelling", Shape: Hexagon, Slug: "data-collection", Color: "#DBC6FE"},
	{ID: "3", Number: "003", Title: "Data Training", Shape: Octagon, Slug: "data-collection", Color: "#F6AC68"},
	{ID: "4", Number: "004", Title: "Algorithm Choice", Shape: Nonagon, Slug: "data-collection", Color: "#B0E5FF"},
	{ID: "5", Number: "005", Title: "Algorithmic Model", Shape: Decagon, Slug: "data-collection", Color: "#FFA0D4"},
	{ID: "6", Number: "006", Title: "Interace Implementation", Shape: Hendecagon, Slug: "data-collection", Color: "#FF9696"},
}

// Darken scales each channel of a #rrggbb colour by 0.9, rounding down.
// Malformed input is returned unchanged.
func Darken(hex string) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return hex
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return hex
	}
	r := (v >> 16 & 0xff) * 9 / 10
	g := (v >> 8 & 0xff) * 9 / 10
	b := (v & 0xff) * 9 / 10
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
