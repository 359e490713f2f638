package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_WalkThrough(t *testing.T) {
	s := New(Questions)
	for i, q := range Questions {
		assert.Equal(t, i+1, s.View().Step)
		assert.ErrorIs(t, s.Next(), ErrNoSelection)
		require.NoError(t, s.Choose(q.Choices[i%len(q.Choices)]))
		require.NoError(t, s.Next())
	}

	require.True(t, s.Finished())
	summary := s.View().Summary
	require.Len(t, summary, 10)
	assert.Equal(t, "Only those who speak dominant languages", summary[0].Response)
	assert.Equal(t, "Provide monetary compensation", summary[9].Response)
	assert.ErrorIs(t, s.Next(), ErrFinished)
}

func TestSession_PreviousRestoresAnswer(t *testing.T) {
	s := New(Questions)
	s.Previous()
	assert.Equal(t, 1, s.View().Step, "no-op on the first question")

	require.NoError(t, s.Choose("Those with formal education"))
	require.NoError(t, s.Next())
	assert.Empty(t, s.View().Selected)

	s.Previous()
	v := s.View()
	assert.Equal(t, 1, v.Step)
	assert.Equal(t, "Those with formal education", v.Selected)
	assert.True(t, v.CanNext)
	assert.False(t, v.CanBack)
}

func TestSession_ChooseRejectsUnknown(t *testing.T) {
	s := New(Questions)
	assert.ErrorIs(t, s.Choose("Translate everything to English"), ErrUnknownChoice)
}

func TestSession_Reset(t *testing.T) {
	s := New(Questions)
	require.NoError(t, s.Choose(Questions[0].Choices[3]))
	require.NoError(t, s.Next())

	s.Reset()
	v := s.View()
	assert.Equal(t, 1, v.Step)
	assert.Empty(t, v.Selected)
	assert.Empty(t, s.Summary()[0].Response)
}

func TestShapeFor(t *testing.T) {
	assert.Equal(t, "◆", ShapeFor(0))
	assert.Equal(t, "▲", ShapeFor(3))
	assert.Equal(t, "◆", ShapeFor(4))
}
