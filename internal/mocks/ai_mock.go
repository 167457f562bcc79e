package mocks

import (
	"context"

	"alltopia/internal/ai"

	"github.com/stretchr/testify/mock"
)

// MockTextGenerator is a mock type for the ai.TextGenerator type
type MockTextGenerator struct {
	mock.Mock
}

func (_m *MockTextGenerator) Available() error {
	ret := _m.Called()
	return ret.Error(0)
}

// GenerateText provides a mock function with given fields: ctx, sessionID, systemPrompt, userInput, params
func (_m *MockTextGenerator) GenerateText(ctx context.Context, sessionID string, systemPrompt string, userInput string, params ai.GenerationParams) (string, ai.UsageInfo, error) {
	ret := _m.Called(ctx, sessionID, systemPrompt, userInput, params)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string, ai.GenerationParams) string); ok {
		r0 = rf(ctx, sessionID, systemPrompt, userInput, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 ai.UsageInfo
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(ai.UsageInfo)
	}

	return r0, r1, ret.Error(2)
}

func (_m *MockTextGenerator) Provider() string {
	ret := _m.Called()
	return ret.String(0)
}

func (_m *MockTextGenerator) Model() string {
	ret := _m.Called()
	return ret.String(0)
}

// NewMockTextGenerator creates a new instance of MockTextGenerator and registers t on it.
func NewMockTextGenerator(t interface {
	mock.TestingT
	Helper()
}) *MockTextGenerator {
	m := &MockTextGenerator{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.TextGenerator = (*MockTextGenerator)(nil)

// MockImageGenerator is a mock type for the ai.ImageGenerator type
type MockImageGenerator struct {
	mock.Mock
}

func (_m *MockImageGenerator) Available() error {
	ret := _m.Called()
	return ret.Error(0)
}

// GenerateImage provides a mock function with given fields: ctx, sessionID, prompt
func (_m *MockImageGenerator) GenerateImage(ctx context.Context, sessionID string, prompt string) (ai.ImageResult, error) {
	ret := _m.Called(ctx, sessionID, prompt)

	var r0 ai.ImageResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(ai.ImageResult)
	}
	return r0, ret.Error(1)
}

func (_m *MockImageGenerator) Provider() string {
	ret := _m.Called()
	return ret.String(0)
}

func (_m *MockImageGenerator) Model() string {
	ret := _m.Called()
	return ret.String(0)
}

// NewMockImageGenerator creates a new instance of MockImageGenerator and registers t on it.
func NewMockImageGenerator(t interface {
	mock.TestingT
	Helper()
}) *MockImageGenerator {
	m := &MockImageGenerator{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.ImageGenerator = (*MockImageGenerator)(nil)
