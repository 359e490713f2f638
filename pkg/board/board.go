// Package board implements the data-set categorization board: ordered
// columns of colour-coded items that can be dragged between columns,
// renamed, recoloured and deleted.
package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDuplicateColumn = errors.New("column already exists")
)

// Color marks how sensitive an item is judged to be.
type Color string

const (
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

var colorCycle = []Color{ColorGreen, ColorOrange, ColorRed}

// Next returns the colour after c in the green, orange, red cycle.
func (c Color) Next() Color {
	for i, cc := range colorCycle {
		if cc == c {
			return colorCycle[(i+1)%len(colorCycle)]
		}
	}
	return colorCycle[0]
}

const newItemName = "New Item"

type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

type Column struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// IDGenerator returns a fresh item id.
type IDGenerator func() string

// Board is not safe for concurrent use.
type Board struct {
	columns []*Column
	newID   IDGenerator
}

// New returns a board holding a deep copy of seed.
func New(seed []Column, newID IDGenerator) *Board {
	b := &Board{newID: newID}
	for _, c := range seed {
		items := make([]Item, len(c.Items))
		copy(items, c.Items)
		b.columns = append(b.columns, &Column{Name: c.Name, Items: items})
	}
	return b
}

func (b *Board) column(name string) (*Column, error) {
	for _, c := range b.columns {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

func (c *Column) indexOf(id string) (int, error) {
	for i, it := range c.Items {
		if it.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q in %q", ErrItemNotFound, id, c.Name)
}

// Columns returns a deep copy of the board in display order.
func (b *Board) Columns() []Column {
	out := make([]Column, len(b.columns))
	for i, c := range b.columns {
		items := make([]Item, len(c.Items))
		copy(items, c.Items)
		out[i] = Column{Name: c.Name, Items: items}
	}
	return out
}

// Move takes the item at srcIdx of src and inserts it at dstIdx of dst.
// dstIdx is clamped to the destination length.
func (b *Board) Move(src string, srcIdx int, dst string, dstIdx int) error {
	from, err := b.column(src)
	if err != nil {
		return err
	}
	to, err := b.column(dst)
	if err != nil {
		return err
	}
	if srcIdx < 0 || srcIdx >= len(from.Items) {
		return fmt.Errorf("%w: source index %d", ErrIndexOutOfRange, srcIdx)
	}

	moved := from.Items[srcIdx]
	from.Items = append(from.Items[:srcIdx], from.Items[srcIdx+1:]...)

	dstIdx = max(0, min(dstIdx, len(to.Items)))
	to.Items = append(to.Items, Item{})
	copy(to.Items[dstIdx+1:], to.Items[dstIdx:])
	to.Items[dstIdx] = moved
	return nil
}

// CycleColor advances the colour of item id in column col.
func (b *Board) CycleColor(col, id string) (Item, error) {
	c, err := b.column(col)
	if err != nil {
		return Item{}, err
	}
	i, err := c.indexOf(id)
	if err != nil {
		return Item{}, err
	}
	c.Items[i].Color = c.Items[i].Color.Next()
	return c.Items[i], nil
}

func (b *Board) DeleteItem(col, id string) error {
	c, err := b.column(col)
	if err != nil {
		return err
	}
	i, err := c.indexOf(id)
	if err != nil {
		return err
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return nil
}

// RenameItem sets the item's name. A blank name leaves it unchanged.
func (b *Board) RenameItem(col, id, name string) (Item, error) {
	c, err := b.column(col)
	if err != nil {
		return Item{}, err
	}
	i, err := c.indexOf(id)
	if err != nil {
		return Item{}, err
	}
	if name = strings.TrimSpace(name); name != "" {
		c.Items[i].Name = name
	}
	return c.Items[i], nil
}

// AddColumn appends an empty column named "Category N".
func (b *Board) AddColumn() string {
	for n := len(b.columns) + 1; ; n++ {
		name := fmt.Sprintf("Category %d", n)
		if _, err := b.column(name); err != nil {
			b.columns = append(b.columns, &Column{Name: name, Items: []Item{}})
			return name
		}
	}
}

// AddItem appends a green "New Item" to col.
func (b *Board) AddItem(col string) (Item, error) {
	c, err := b.column(col)
	if err != nil {
		return Item{}, err
	}
	it := Item{ID: b.newID(), Name: newItemName, Color: ColorGreen}
	c.Items = append(c.Items, it)
	return it, nil
}

// RenameColumn renames old to name in place. Renaming to the same or a
// blank name is a no-op.
func (b *Board) RenameColumn(old, name string) error {
	c, err := b.column(old)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" || name == old {
		return nil
	}
	if _, err := b.column(name); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	c.Name = name
	return nil
}
