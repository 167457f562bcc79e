package mocks

import (
	"context"

	"alltopia/internal/session"

	"github.com/stretchr/testify/mock"
)

// MockSessionStore is a mock type for the session.Store type
type MockSessionStore struct {
	mock.Mock
}

func (_m *MockSessionStore) Get(ctx context.Context, sessionID string) (session.State, error) {
	ret := _m.Called(ctx, sessionID)

	var r0 session.State
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(session.State)
	}
	return r0, ret.Error(1)
}

func (_m *MockSessionStore) Put(ctx context.Context, sessionID string, key session.Key, value string) error {
	ret := _m.Called(ctx, sessionID, key, value)
	return ret.Error(0)
}

func (_m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)
	return ret.Error(0)
}

// NewMockSessionStore creates a new instance of MockSessionStore and registers t on it.
func NewMockSessionStore(t interface {
	mock.TestingT
	Helper()
}) *MockSessionStore {
	m := &MockSessionStore{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ session.Store = (*MockSessionStore)(nil)
