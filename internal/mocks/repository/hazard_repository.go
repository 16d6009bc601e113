package repository

import (
	"context"

	"hazardmap/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockHazardRepository is a testify mock of the HazardRepository interface.
type MockHazardRepository struct {
	mock.Mock
}

type MockHazardRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHazardRepository) EXPECT() *MockHazardRepository_Expecter {
	return &MockHazardRepository_Expecter{mock: &_m.Mock}
}

// ListAll provides a mock function for the given fields.
func (_m *MockHazardRepository) ListAll(ctx context.Context) ([]*entity.HazardRecord, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListAll")
	}

	var r0 []*entity.HazardRecord
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.HazardRecord); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.HazardRecord)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHazardRepository_ListAll_Call wraps *mock.Call with typed Run and Return helpers.
type MockHazardRepository_ListAll_Call struct {
	*mock.Call
}

// ListAll is a helper method to define mock.On call
func (_e *MockHazardRepository_Expecter) ListAll(ctx any) *MockHazardRepository_ListAll_Call {
	return &MockHazardRepository_ListAll_Call{Call: _e.mock.On("ListAll", ctx)}
}

func (_c *MockHazardRepository_ListAll_Call) Run(run func(ctx context.Context)) *MockHazardRepository_ListAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockHazardRepository_ListAll_Call) Return(_a0 []*entity.HazardRecord, _a1 error) *MockHazardRepository_ListAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockHazardRepository_ListAll_Call) RunAndReturn(run func(context.Context) ([]*entity.HazardRecord, error)) *MockHazardRepository_ListAll_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function for the given fields.
func (_m *MockHazardRepository) Create(ctx context.Context, record *entity.HazardRecord) error {
	ret := _m.Called(ctx, record)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.HazardRecord) error); ok {
		r0 = rf(ctx, record)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockHazardRepository_Create_Call wraps *mock.Call with typed Run and Return helpers.
type MockHazardRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockHazardRepository_Expecter) Create(ctx any, record any) *MockHazardRepository_Create_Call {
	return &MockHazardRepository_Create_Call{Call: _e.mock.On("Create", ctx, record)}
}

func (_c *MockHazardRepository_Create_Call) Run(run func(ctx context.Context, record *entity.HazardRecord)) *MockHazardRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.HazardRecord))
	})

	return _c
}

func (_c *MockHazardRepository_Create_Call) Return(_a0 error) *MockHazardRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockHazardRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.HazardRecord) error) *MockHazardRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// ExistsAt provides a mock function for the given fields.
func (_m *MockHazardRepository) ExistsAt(ctx context.Context, lat float64, lon float64) (bool, error) {
	ret := _m.Called(ctx, lat, lon)

	if len(ret) == 0 {
		panic("no return value specified for ExistsAt")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, float64, float64) bool); ok {
		r0 = rf(ctx, lat, lon)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, float64, float64) error); ok {
		r1 = rf(ctx, lat, lon)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHazardRepository_ExistsAt_Call wraps *mock.Call with typed Run and Return helpers.
type MockHazardRepository_ExistsAt_Call struct {
	*mock.Call
}

// ExistsAt is a helper method to define mock.On call
func (_e *MockHazardRepository_Expecter) ExistsAt(ctx any, lat any, lon any) *MockHazardRepository_ExistsAt_Call {
	return &MockHazardRepository_ExistsAt_Call{Call: _e.mock.On("ExistsAt", ctx, lat, lon)}
}

func (_c *MockHazardRepository_ExistsAt_Call) Run(run func(ctx context.Context, lat float64, lon float64)) *MockHazardRepository_ExistsAt_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(float64), args[2].(float64))
	})

	return _c
}

func (_c *MockHazardRepository_ExistsAt_Call) Return(_a0 bool, _a1 error) *MockHazardRepository_ExistsAt_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockHazardRepository_ExistsAt_Call) RunAndReturn(run func(context.Context, float64, float64) (bool, error)) *MockHazardRepository_ExistsAt_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockHazardRepository creates a new instance of MockHazardRepository and asserts its expectations when the test ends.
func NewMockHazardRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHazardRepository {
	m := &MockHazardRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
