// Package questionnaire walks a participant through the data-ethics
// questions one step at a time and summarises their answers.
package questionnaire

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownChoice = errors.New("choice is not offered for this question")
	ErrNoSelection   = errors.New("no choice selected")
	ErrFinished      = errors.New("questionnaire already finished")
)

var shapes = []string{"◆", "■", "●", "▲"}

// ShapeFor returns the glyph shown next to the choice at index.
func ShapeFor(index int) string {
	return shapes[index%len(shapes)]
}

// Session is one participant's progress. It is not safe for concurrent use.
type Session struct {
	questions []Question
	step      int
	responses map[int]string
	selected  string
	finished  bool
}

func New(questions []Question) *Session {
	return &Session{questions: questions, responses: make(map[int]string)}
}

// Choose records choice as the answer to the current question.
func (s *Session) Choose(choice string) error {
	if s.finished {
		return ErrFinished
	}
	if !slices.Contains(s.questions[s.step].Choices, choice) {
		return fmt.Errorf("%w: %q", ErrUnknownChoice, choice)
	}
	s.selected = choice
	s.responses[s.step] = choice
	return nil
}

// Previous steps back, restoring the earlier answer. It is a no-op on the
// first question.
func (s *Session) Previous() {
	if s.finished || s.step == 0 {
		return
	}
	s.step--
	s.selected = s.responses[s.step]
}

// Next advances to the following question, or to the summary after the
// last one. A choice must be selected first.
func (s *Session) Next() error {
	if s.finished {
		return ErrFinished
	}
	if s.selected == "" {
		return ErrNoSelection
	}
	if s.step == len(s.questions)-1 {
		s.finished = true
		return nil
	}
	s.step++
	s.selected = s.responses[s.step]
	return nil
}

// Reset clears all answers and returns to the first question.
func (s *Session) Reset() {
	s.step = 0
	s.selected = ""
	s.finished = false
	s.responses = make(map[int]string)
}

func (s *Session) Finished() bool { return s.finished }

// Answer pairs a question with the participant's response.
type Answer struct {
	Number   int    `json:"number"`
	Question string `json:"question"`
	Response string `json:"response"`
	Impact   string `json:"impact"`
}

func (s *Session) Summary() []Answer {
	out := make([]Answer, len(s.questions))
	for i, q := range s.questions {
		out[i] = Answer{Number: i + 1, Question: q.Question, Response: s.responses[i], Impact: q.Impact}
	}
	return out
}

// View is the state needed to render the current step.
type View struct {
	Step     int      `json:"step"`
	Total    int      `json:"total"`
	Question Question `json:"question"`
	Selected string   `json:"selected"`
	CanBack  bool     `json:"can_back"`
	CanNext  bool     `json:"can_next"`
	Finished bool     `json:"finished"`
	Summary  []Answer `json:"summary,omitempty"`
}

func (s *Session) View() View {
	v := View{
		Step:     s.step + 1,
		Total:    len(s.questions),
		Question: s.questions[s.step],
		Selected: s.selected,
		CanBack:  s.step > 0 && !s.finished,
		CanNext:  s.selected != "" && !s.finished,
		Finished: s.finished,
	}
	if s.finished {
		v.Summary = s.Summary()
	}
	return v
}
