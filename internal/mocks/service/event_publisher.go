package service

import (
	"context"

	"hazardmap/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a testify mock of the EventPublisher interface.
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// PublishDeviceClaimed provides a mock function for the given fields.
func (_m *MockEventPublisher) PublishDeviceClaimed(ctx context.Context, event *service.DeviceClaimedEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for PublishDeviceClaimed")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *service.DeviceClaimedEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventPublisher_PublishDeviceClaimed_Call wraps *mock.Call with typed Run and Return helpers.
type MockEventPublisher_PublishDeviceClaimed_Call struct {
	*mock.Call
}

// PublishDeviceClaimed is a helper method to define mock.On call
func (_e *MockEventPublisher_Expecter) PublishDeviceClaimed(ctx any, event any) *MockEventPublisher_PublishDeviceClaimed_Call {
	return &MockEventPublisher_PublishDeviceClaimed_Call{Call: _e.mock.On("PublishDeviceClaimed", ctx, event)}
}

func (_c *MockEventPublisher_PublishDeviceClaimed_Call) Run(run func(ctx context.Context, event *service.DeviceClaimedEvent)) *MockEventPublisher_PublishDeviceClaimed_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.DeviceClaimedEvent))
	})

	return _c
}

func (_c *MockEventPublisher_PublishDeviceClaimed_Call) Return(_a0 error) *MockEventPublisher_PublishDeviceClaimed_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockEventPublisher_PublishDeviceClaimed_Call) RunAndReturn(run func(context.Context, *service.DeviceClaimedEvent) error) *MockEventPublisher_PublishDeviceClaimed_Call {
	_c.Call.Return(run)

	return _c
}

// Close provides a mock function for the given fields.
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventPublisher_Close_Call wraps *mock.Call with typed Run and Return helpers.
type MockEventPublisher_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockEventPublisher_Expecter) Close() *MockEventPublisher_Close_Call {
	return &MockEventPublisher_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEventPublisher_Close_Call) Run(run func()) *MockEventPublisher_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockEventPublisher_Close_Call) Return(_a0 error) *MockEventPublisher_Close_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockEventPublisher_Close_Call) RunAndReturn(run func() error) *MockEventPublisher_Close_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockEventPublisher creates a new instance of MockEventPublisher and asserts its expectations when the test ends.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
