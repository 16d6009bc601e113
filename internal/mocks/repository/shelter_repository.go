package repository

import (
	"context"

	"hazardmap/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockShelterRepository is a testify mock of the ShelterRepository interface.
type MockShelterRepository struct {
	mock.Mock
}

type MockShelterRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockShelterRepository) EXPECT() *MockShelterRepository_Expecter {
	return &MockShelterRepository_Expecter{mock: &_m.Mock}
}

// ListAll provides a mock function for the given fields.
func (_m *MockShelterRepository) ListAll(ctx context.Context) ([]*entity.Shelter, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListAll")
	}

	var r0 []*entity.Shelter
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Shelter); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Shelter)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShelterRepository_ListAll_Call wraps *mock.Call with typed Run and Return helpers.
type MockShelterRepository_ListAll_Call struct {
	*mock.Call
}

// ListAll is a helper method to define mock.On call
func (_e *MockShelterRepository_Expecter) ListAll(ctx any) *MockShelterRepository_ListAll_Call {
	return &MockShelterRepository_ListAll_Call{Call: _e.mock.On("ListAll", ctx)}
}

func (_c *MockShelterRepository_ListAll_Call) Run(run func(ctx context.Context)) *MockShelterRepository_ListAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockShelterRepository_ListAll_Call) Return(_a0 []*entity.Shelter, _a1 error) *MockShelterRepository_ListAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockShelterRepository_ListAll_Call) RunAndReturn(run func(context.Context) ([]*entity.Shelter, error)) *MockShelterRepository_ListAll_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function for the given fields.
func (_m *MockShelterRepository) Create(ctx context.Context, shelter *entity.Shelter) error {
	ret := _m.Called(ctx, shelter)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Shelter) error); ok {
		r0 = rf(ctx, shelter)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockShelterRepository_Create_Call wraps *mock.Call with typed Run and Return helpers.
type MockShelterRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockShelterRepository_Expecter) Create(ctx any, shelter any) *MockShelterRepository_Create_Call {
	return &MockShelterRepository_Create_Call{Call: _e.mock.On("Create", ctx, shelter)}
}

func (_c *MockShelterRepository_Create_Call) Run(run func(ctx context.Context, shelter *entity.Shelter)) *MockShelterRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Shelter))
	})

	return _c
}

func (_c *MockShelterRepository_Create_Call) Return(_a0 error) *MockShelterRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockShelterRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Shelter) error) *MockShelterRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Exists provides a mock function for the given fields.
func (_m *MockShelterRepository) Exists(ctx context.Context, name string, lat float64, lon float64) (bool, error) {
	ret := _m.Called(ctx, name, lat, lon)

	if len(ret) == 0 {
		panic("no return value specified for Exists")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string, float64, float64) bool); ok {
		r0 = rf(ctx, name, lat, lon)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, float64, float64) error); ok {
		r1 = rf(ctx, name, lat, lon)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockShelterRepository_Exists_Call wraps *mock.Call with typed Run and Return helpers.
type MockShelterRepository_Exists_Call struct {
	*mock.Call
}

// Exists is a helper method to define mock.On call
func (_e *MockShelterRepository_Expecter) Exists(ctx any, name any, lat any, lon any) *MockShelterRepository_Exists_Call {
	return &MockShelterRepository_Exists_Call{Call: _e.mock.On("Exists", ctx, name, lat, lon)}
}

func (_c *MockShelterRepository_Exists_Call) Run(run func(ctx context.Context, name string, lat float64, lon float64)) *MockShelterRepository_Exists_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(float64), args[3].(float64))
	})

	return _c
}

func (_c *MockShelterRepository_Exists_Call) Return(_a0 bool, _a1 error) *MockShelterRepository_Exists_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockShelterRepository_Exists_Call) RunAndReturn(run func(context.Context, string, float64, float64) (bool, error)) *MockShelterRepository_Exists_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockShelterRepository creates a new instance of MockShelterRepository and asserts its expectations when the test ends.
func NewMockShelterRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockShelterRepository {
	m := &MockShelterRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
