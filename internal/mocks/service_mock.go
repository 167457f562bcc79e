package mocks

import (
	"context"

	"alltopia/internal/domain"
	"alltopia/internal/prompt"
	"alltopia/internal/service"
	"alltopia/internal/session"

	"github.com/stretchr/testify/mock"
)

// MockUtopiaService is a mock type for the service.UtopiaService type
type MockUtopiaService struct {
	mock.Mock
}

func (_m *MockUtopiaService) Evaluate(set domain.CharacteristicSet) domain.ScoreResult {
	ret := _m.Called(set)
	return ret.Get(0).(domain.ScoreResult)
}

func (_m *MockUtopiaService) Prompts(set domain.CharacteristicSet, locale prompt.Locale) service.PromptBundle {
	ret := _m.Called(set, locale)
	return ret.Get(0).(service.PromptBundle)
}

func (_m *MockUtopiaService) Analyze(ctx context.Context, sessionID string, set domain.CharacteristicSet, locale prompt.Locale) (*service.TextReport, error) {
	ret := _m.Called(ctx, sessionID, set, locale)
	r0, _ := ret.Get(0).(*service.TextReport)
	return r0, ret.Error(1)
}

func (_m *MockUtopiaService) Compare(ctx context.Context, sessionID string, set domain.CharacteristicSet, locale prompt.Locale) (*service.TextReport, error) {
	ret := _m.Called(ctx, sessionID, set, locale)
	r0, _ := ret.Get(0).(*service.TextReport)
	return r0, ret.Error(1)
}

func (_m *MockUtopiaService) Imagine(ctx context.Context, sessionID string, set domain.CharacteristicSet, locale prompt.Locale) (*service.ImageReport, error) {
	ret := _m.Called(ctx, sessionID, set, locale)
	r0, _ := ret.Get(0).(*service.ImageReport)
	return r0, ret.Error(1)
}

func (_m *MockUtopiaService) Session(ctx context.Context, sessionID string) (session.State, error) {
	ret := _m.Called(ctx, sessionID)

	var r0 session.State
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(session.State)
	}
	return r0, ret.Error(1)
}

func (_m *MockUtopiaService) ClearSession(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)
	return ret.Error(0)
}

// NewMockUtopiaService creates a new instance of MockUtopiaService and registers t on it.
func NewMockUtopiaService(t interface {
	mock.TestingT
	Helper()
}) *MockUtopiaService {
	m := &MockUtopiaService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.UtopiaService = (*MockUtopiaService)(nil)
