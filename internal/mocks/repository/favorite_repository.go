package repository

import (
	"context"

	"hazardmap/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockFavoriteRepository is a testify mock of the FavoriteRepository interface.
type MockFavoriteRepository struct {
	mock.Mock
}

type MockFavoriteRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFavoriteRepository) EXPECT() *MockFavoriteRepository_Expecter {
	return &MockFavoriteRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function for the given fields.
func (_m *MockFavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	ret := _m.Called(ctx, favorite)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Favorite) error); ok {
		r0 = rf(ctx, favorite)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockFavoriteRepository_Create_Call wraps *mock.Call with typed Run and Return helpers.
type MockFavoriteRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) Create(ctx any, favorite any) *MockFavoriteRepository_Create_Call {
	return &MockFavoriteRepository_Create_Call{Call: _e.mock.On("Create", ctx, favorite)}
}

func (_c *MockFavoriteRepository_Create_Call) Run(run func(ctx context.Context, favorite *entity.Favorite)) *MockFavoriteRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Favorite))
	})

	return _c
}

func (_c *MockFavoriteRepository_Create_Call) Return(_a0 error) *MockFavoriteRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockFavoriteRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Favorite) error) *MockFavoriteRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// ListByScope provides a mock function for the given fields.
func (_m *MockFavoriteRepository) ListByScope(ctx context.Context, scope entity.OwnerScope) ([]*entity.Favorite, error) {
	ret := _m.Called(ctx, scope)

	if len(ret) == 0 {
		panic("no return value specified for ListByScope")
	}

	var r0 []*entity.Favorite
	if rf, ok := ret.Get(0).(func(context.Context, entity.OwnerScope) []*entity.Favorite); ok {
		r0 = rf(ctx, scope)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Favorite)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.OwnerScope) error); ok {
		r1 = rf(ctx, scope)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFavoriteRepository_ListByScope_Call wraps *mock.Call with typed Run and Return helpers.
type MockFavoriteRepository_ListByScope_Call struct {
	*mock.Call
}

// ListByScope is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) ListByScope(ctx any, scope any) *MockFavoriteRepository_ListByScope_Call {
	return &MockFavoriteRepository_ListByScope_Call{Call: _e.mock.On("ListByScope", ctx, scope)}
}

func (_c *MockFavoriteRepository_ListByScope_Call) Run(run func(ctx context.Context, scope entity.OwnerScope)) *MockFavoriteRepository_ListByScope_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.OwnerScope))
	})

	return _c
}

func (_c *MockFavoriteRepository_ListByScope_Call) Return(_a0 []*entity.Favorite, _a1 error) *MockFavoriteRepository_ListByScope_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFavoriteRepository_ListByScope_Call) RunAndReturn(run func(context.Context, entity.OwnerScope) ([]*entity.Favorite, error)) *MockFavoriteRepository_ListByScope_Call {
	_c.Call.Return(run)

	return _c
}

// DeleteByScope provides a mock function for the given fields.
func (_m *MockFavoriteRepository) DeleteByScope(ctx context.Context, id int64, scope entity.OwnerScope) error {
	ret := _m.Called(ctx, id, scope)

	if len(ret) == 0 {
		panic("no return value specified for DeleteByScope")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, entity.OwnerScope) error); ok {
		r0 = rf(ctx, id, scope)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockFavoriteRepository_DeleteByScope_Call wraps *mock.Call with typed Run and Return helpers.
type MockFavoriteRepository_DeleteByScope_Call struct {
	*mock.Call
}

// DeleteByScope is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) DeleteByScope(ctx any, id any, scope any) *MockFavoriteRepository_DeleteByScope_Call {
	return &MockFavoriteRepository_DeleteByScope_Call{Call: _e.mock.On("DeleteByScope", ctx, id, scope)}
}

func (_c *MockFavoriteRepository_DeleteByScope_Call) Run(run func(ctx context.Context, id int64, scope entity.OwnerScope)) *MockFavoriteRepository_DeleteByScope_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(entity.OwnerScope))
	})

	return _c
}

func (_c *MockFavoriteRepository_DeleteByScope_Call) Return(_a0 error) *MockFavoriteRepository_DeleteByScope_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockFavoriteRepository_DeleteByScope_Call) RunAndReturn(run func(context.Context, int64, entity.OwnerScope) error) *MockFavoriteRepository_DeleteByScope_Call {
	_c.Call.Return(run)

	return _c
}

// TransferOrphaned provides a mock function for the given fields.
func (_m *MockFavoriteRepository) TransferOrphaned(ctx context.Context, deviceID string, userID int64) (int64, error) {
	ret := _m.Called(ctx, deviceID, userID)

	if len(ret) == 0 {
		panic("no return value specified for TransferOrphaned")
	}

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) int64); ok {
		r0 = rf(ctx, deviceID, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int64) error); ok {
		r1 = rf(ctx, deviceID, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFavoriteRepository_TransferOrphaned_Call wraps *mock.Call with typed Run and Return helpers.
type MockFavoriteRepository_TransferOrphaned_Call struct {
	*mock.Call
}

// TransferOrphaned is a helper method to define mock.On call
func (_e *MockFavoriteRepository_Expecter) TransferOrphaned(ctx any, deviceID any, userID any) *MockFavoriteRepository_TransferOrphaned_Call {
	return &MockFavoriteRepository_TransferOrphaned_Call{Call: _e.mock.On("TransferOrphaned", ctx, deviceID, userID)}
}

func (_c *MockFavoriteRepository_TransferOrphaned_Call) Run(run func(ctx context.Context, deviceID string, userID int64)) *MockFavoriteRepository_TransferOrphaned_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})

	return _c
}

func (_c *MockFavoriteRepository_TransferOrphaned_Call) Return(_a0 int64, _a1 error) *MockFavoriteRepository_TransferOrphaned_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFavoriteRepository_TransferOrphaned_Call) RunAndReturn(run func(context.Context, string, int64) (int64, error)) *MockFavoriteRepository_TransferOrphaned_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockFavoriteRepository creates a new instance of MockFavoriteRepository and asserts its expectations when the test ends.
func NewMockFavoriteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFavoriteRepository {
	m := &MockFavoriteRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
