package services

import (
	"context"

	"github.com/nexoteam/directorio-api/internal/events"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type MockStore struct {
	mock.Mock
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockStore) InsertUsuario(ctx context.Context, doc bson.M) (bson.M, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockStore) GetUsuarios(ctx context.Context) ([]bson.M, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockStore) GetUsuario(ctx context.Context, id string) (bson.M, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockStore) UpdateUsuario(ctx context.Context, id string, campos bson.M) (bson.M, error) {
	args := m.Called(ctx, id, campos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockStore) DeleteUsuario(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) InsertGrupo(ctx context.Context, doc bson.M) (bson.M, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockStore) GetGrupos(ctx context.Context) ([]bson.M, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockStore) GetGrupo(ctx context.Context, id string) (bson.M, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockStore) DeleteGrupo(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) AddIntegrante(ctx context.Context, grupoID, usuarioID string) error {
	args := m.Called(ctx, grupoID, usuarioID)
	return args.Error(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotifier) Notify(payload events.EventPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockNotifier) Close() {
	m.Called()
}
