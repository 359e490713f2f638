package board

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func newTestBoard() *Board {
	return New(SeedColumns, sequentialIDs())
}

func names(c Column) []string {
	out := make([]string, len(c.Items))
	for i, it := range c.Items {
		out[i] = it.Name
	}
	return out
}

func TestNew_CopiesSeed(t *testing.T) {
	b := newTestBoard()
	require.NoError(t, b.DeleteItem("Behavioral Tracking", "1"))

	assert.Len(t, SeedColumns[0].Items, 8)
	assert.Len(t, b.Columns()[0].Items, 7)
	assert.Equal(t, "19", b.Columns()[2].Items[0].ID)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name             string
		src, dst         string
		srcIdx, dstIdx   int
		wantSrc, wantDst int
		wantErr          error
		wantAtDst        string
	}{
		{name: "across columns", src: "Behavioral Tracking", srcIdx: 0, dst: "Content Analysis", dstIdx: 1, wantSrc: 7, wantDst: 9, wantAtDst: "Mouse Movement Patterns"},
		{name: "clamped destination", src: "Behavioral Tracking", srcIdx: 1, dst: "Personal Information", dstIdx: 99, wantSrc: 7, wantDst: 9, wantAtDst: "Scroll Behavior"},
		{name: "bad source index", src: "Behavioral Tracking", srcIdx: 8, dst: "Content Analysis", wantErr: ErrIndexOutOfRange},
		{name: "unknown column", src: "Nope", dst: "Content Analysis", wantErr: ErrColumnNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard()
			err := b.Move(tt.src, tt.srcIdx, tt.dst, tt.dstIdx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			cols := map[string]Column{}
			for _, c := range b.Columns() {
				cols[c.Name] = c
			}
			assert.Len(t, cols[tt.src].Items, tt.wantSrc)
			assert.Len(t, cols[tt.dst].Items, tt.wantDst)
			assert.Contains(t, names(cols[tt.dst]), tt.wantAtDst)
		})
	}
}

func TestMove_WithinColumnReorders(t *testing.T) {
	b := newTestBoard()
	require.NoError(t, b.Move("Content Analysis", 0, "Content Analysis", 2))

	got := names(b.Columns()[2])[:3]
	assert.Equal(t, []string{"Photo Content", "Shared Links", "Message Sentiment"}, got)
}

func TestCycleColor(t *testing.T) {
	b := newTestBoard()
	var got []Color
	for i := 0; i < 3; i++ {
		it, err := b.CycleColor("Personal Information", "15")
		require.NoError(t, err)
		got = append(got, it.Color)
	}
	assert.Equal(t, []Color{ColorOrange, ColorRed, ColorGreen}, got)

	_, err := b.CycleColor("Personal Information", "1")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRenameItem(t *testing.T) {
	b := newTestBoard()
	it, err := b.RenameItem("Content Analysis", "20", "Selfies")
	require.NoError(t, err)
	assert.Equal(t, "Selfies", it.Name)

	it, err = b.RenameItem("Content Analysis", "20", "  ")
	require.NoError(t, err)
	assert.Equal(t, "Selfies", it.Name)
}

func TestAddColumnAndItem(t *testing.T) {
	b := newTestBoard()
	name := b.AddColumn()
	assert.Equal(t, "Category 4", name)

	it, err := b.AddItem(name)
	require.NoError(t, err)
	assert.Equal(t, Item{ID: "new-1", Name: "New Item", Color: ColorGreen}, it)

	require.NoError(t, b.RenameColumn(name, "Category 5"))
	assert.Equal(t, "Category 6", b.AddColumn(), "taken names are skipped")
}

func TestRenameColumn(t *testing.T) {
	b := newTestBoard()

	require.NoError(t, b.RenameColumn("Content Analysis", "Content Analysis"))
	require.NoError(t, b.RenameColumn("Content Analysis", " "))
	assert.ErrorIs(t, b.RenameColumn("Content Analysis", "Personal Information"), ErrDuplicateColumn)
	assert.ErrorIs(t, b.RenameColumn("Missing", "x"), ErrColumnNotFound)

	require.NoError(t, b.RenameColumn("Personal Information", "Identity"))
	cols := b.Columns()
	assert.Equal(t, "Identity", cols[1].Name, "rename keeps position")
	assert.Len(t, cols[1].Items, 8)
}
