package service

import (
	"context"
	"time"

	"imagine-algorithm/internal/metrics"
	"imagine-algorithm/pkg/events"
	"imagine-algorithm/pkg/questionnaire"
	"imagine-algorithm/pkg/store"
)

type IQuestionnaireService interface {
	Get(ctx context.Context, sessionId string) questionnaire.View
	Choose(ctx context.Context, sessionId, choice string) (questionnaire.View, error)
	Next(ctx context.Context, sessionId string) (questionnaire.View, error)
	Previous(ctx context.Context, sessionId string) questionnaire.View
	Reset(ctx context.Context, sessionId string) questionnaire.View
}

type questionnaireService struct {
	sessions  ISessionService
	analytics IAnalyticsService
	metrics   *metrics.Metrics
}

func NewQuestionnaireService(sessions ISessionService, analytics IAnalyticsService, m *metrics.Metrics) IQuestionnaireService {
	return &questionnaireService{sessions: sessions, analytics: analytics, metrics: m}
}

func (s *questionnaireService) with(sessionId string, fn func(q *questionnaire.Session) error) (questionnaire.View, error) {
	var view questionnaire.View
	var err error
	s.sessions.Acquire(sessionId).Do(func(st store.State) {
		err = fn(st.Questionnaire)
		view = st.Questionnaire.View()
	})
	return view, err
}

func (s *questionnaireService) Get(ctx context.Context, sessionId string) questionnaire.View {
	view, _ := s.with(sessionId, func(*questionnaire.Session) error { return nil })
	return view
}

func (s *questionnaireService) Choose(ctx context.Context, sessionId, choice string) (questionnaire.View, error) {
	return s.with(sessionId, func(q *questionnaire.Session) error {
		return q.Choose(choice)
	})
}

func (s *questionnaireService) Next(ctx context.Context, sessionId string) (questionnaire.View, error) {
	view, err := s.with(sessionId, func(q *questionnaire.Session) error {
		return q.Next()
	})
	if err != nil {
		return view, err
	}

	if view.Finished {
		s.metrics.QuestionnaireCompletions.Inc()
		responses := make(map[string]string, len(view.Summary))
		for _, a := range view.Summary {
			responses[a.Question] = a.Response
		}
		s.analytics.Track(ctx, events.QuestionnaireCompleted(sessionId, responses, time.Now()))
	}
	return view, nil
}

func (s *questionnaireService) Previous(ctx context.Context, sessionId string) questionnaire.View {
	view, _ := s.with(sessionId, func(q *questionnaire.Session) error {
		q.Previous()
		return nil
	})
	return view
}

func (s *questionnaireService) Reset(ctx context.Context, sessionId string) questionnaire.View {
	view, _ := s.with(sessionId, func(q *questionnaire.Session) error {
		q.Reset()
		return nil
	})
	return view
}
