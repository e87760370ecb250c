package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/luikyv/go-authres/pkg/authres"
)

type ErrorContextManager struct {
	ErrorContexts map[string]authres.ErrorContext
	mu            sync.RWMutex
	maxSize       int
}

func NewErrorContextManager(maxSize int) *ErrorContextManager {
	return &ErrorContextManager{
		ErrorContexts: make(map[string]authres.ErrorContext),
		maxSize:       maxSize,
	}
}

func (m *ErrorContextManager) Save(
	_ context.Context,
	ec authres.ErrorContext,
) (
	string,
	error,
) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ec.ID == "" {
		ec.ID = uuid.NewString()
	}

	if len(m.ErrorContexts) >= m.maxSize {
		removeOldest(m.ErrorContexts, func(e authres.ErrorContext) int {
			return e.CreatedAtTimestamp
		})
	}

	m.ErrorContexts[ec.ID] = ec
	return ec.ID, nil
}

func (m *ErrorContextManager) ErrorContextByID(
	_ context.Context,
	id string,
) (
	authres.ErrorContext,
	error,
) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ec, exists := m.ErrorContexts[id]
	if !exists {
		return authres.ErrorContext{}, errors.New("entity not found")
	}

	return ec, nil
}

func (m *ErrorContextManager) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.ErrorContexts, id)
	return nil
}

var _ authres.ErrorContextManager = NewErrorContextManager(0)
