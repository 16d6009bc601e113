package repository

import (
	"context"
	"time"

	"hazardmap/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock of the AccountRepository interface.
type MockAccountRepository struct {
	mock.Mock
}

type MockAccountRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountRepository) EXPECT() *MockAccountRepository_Expecter {
	return &MockAccountRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function for the given fields.
func (_m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	ret := _m.Called(ctx, account)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Account) error); ok {
		r0 = rf(ctx, account)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockAccountRepository_Create_Call wraps *mock.Call with typed Run and Return helpers.
type MockAccountRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockAccountRepository_Expecter) Create(ctx any, account any) *MockAccountRepository_Create_Call {
	return &MockAccountRepository_Create_Call{Call: _e.mock.On("Create", ctx, account)}
}

func (_c *MockAccountRepository_Create_Call) Run(run func(ctx context.Context, account *entity.Account)) *MockAccountRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Account))
	})

	return _c
}

func (_c *MockAccountRepository_Create_Call) Return(_a0 error) *MockAccountRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockAccountRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Account) error) *MockAccountRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// FindByEmail provides a mock function for the given fields.
func (_m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	ret := _m.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for FindByEmail")
	}

	var r0 *entity.Account
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Account); ok {
		r0 = rf(ctx, email)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Account)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, email)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountRepository_FindByEmail_Call wraps *mock.Call with typed Run and Return helpers.
type MockAccountRepository_FindByEmail_Call struct {
	*mock.Call
}

// FindByEmail is a helper method to define mock.On call
func (_e *MockAccountRepository_Expecter) FindByEmail(ctx any, email any) *MockAccountRepository_FindByEmail_Call {
	return &MockAccountRepository_FindByEmail_Call{Call: _e.mock.On("FindByEmail", ctx, email)}
}

func (_c *MockAccountRepository_FindByEmail_Call) Run(run func(ctx context.Context, email string)) *MockAccountRepository_FindByEmail_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockAccountRepository_FindByEmail_Call) Return(_a0 *entity.Account, _a1 error) *MockAccountRepository_FindByEmail_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAccountRepository_FindByEmail_Call) RunAndReturn(run func(context.Context, string) (*entity.Account, error)) *MockAccountRepository_FindByEmail_Call {
	_c.Call.Return(run)

	return _c
}

// FindByID provides a mock function for the given fields.
func (_m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Account
	if rf, ok := ret.Get(0).(func(context.Context, int64) *entity.Account); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Account)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountRepository_FindByID_Call wraps *mock.Call with typed Run and Return helpers.
type MockAccountRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
func (_e *MockAccountRepository_Expecter) FindByID(ctx any, id any) *MockAccountRepository_FindByID_Call {
	return &MockAccountRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockAccountRepository_FindByID_Call) Run(run func(ctx context.Context, id int64)) *MockAccountRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})

	return _c
}

func (_c *MockAccountRepository_FindByID_Call) Return(_a0 *entity.Account, _a1 error) *MockAccountRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAccountRepository_FindByID_Call) RunAndReturn(run func(context.Context, int64) (*entity.Account, error)) *MockAccountRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// FindByDeviceID provides a mock function for the given fields.
func (_m *MockAccountRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error) {
	ret := _m.Called(ctx, deviceID)

	if len(ret) == 0 {
		panic("no return value specified for FindByDeviceID")
	}

	var r0 *entity.Account
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Account); ok {
		r0 = rf(ctx, deviceID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Account)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, deviceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountRepository_FindByDeviceID_Call wraps *mock.Call with typed Run and Return helpers.
type MockAccountRepository_FindByDeviceID_Call struct {
	*mock.Call
}

// FindByDeviceID is a helper method to define mock.On call
func (_e *MockAccountRepository_Expecter) FindByDeviceID(ctx any, deviceID any) *MockAccountRepository_FindByDeviceID_Call {
	return &MockAccountRepository_FindByDeviceID_Call{Call: _e.mock.On("FindByDeviceID", ctx, deviceID)}
}

func (_c *MockAccountRepository_FindByDeviceID_Call) Run(run func(ctx context.Context, deviceID string)) *MockAccountRepository_FindByDeviceID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockAccountRepository_FindByDeviceID_Call) Return(_a0 *entity.Account, _a1 error) *MockAccountRepository_FindByDeviceID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAccountRepository_FindByDeviceID_Call) RunAndReturn(run func(context.Context, string) (*entity.Account, error)) *MockAccountRepository_FindByDeviceID_Call {
	_c.Call.Return(run)

	return _c
}

// SetCredentials provides a mock function for the given fields.
func (_m *MockAccountRepository) SetCredentials(ctx context.Context, account *entity.Account) error {
	ret := _m.Called(ctx, account)

	if len(ret) == 0 {
		panic("no return value specified for SetCredentials")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Account) error); ok {
		r0 = rf(ctx, account)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockAccountRepository_SetCredentials_Call wraps *mock.Call with typed Run and Return helpers.
type MockAccountRepository_SetCredentials_Call struct {
	*mock.Call
}

// SetCredentials is a helper method to define mock.On call
func (_e *MockAccountRepository_Expecter) SetCredentials(ctx any, account any) *MockAccountRepository_SetCredentials_Call {
	return &MockAccountRepository_SetCredentials_Call{Call: _e.mock.On("SetCredentials", ctx, account)}
}

func (_c *MockAccountRepository_SetCredentials_Call) Run(run func(ctx context.Context, account *entity.Account)) *MockAccountRepository_SetCredentials_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Account))
	})

	return _c
}

func (_c *MockAccountRepository_SetCredentials_Call) Return(_a0 error) *MockAccountRepository_SetCredentials_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockAccountRepository_SetCredentials_Call) RunAndReturn(run func(context.Context, *entity.Account) error) *MockAccountRepository_SetCredentials_Call {
	_c.Call.Return(run)

	return _c
}

// UpdateNickname provides a mock function for the given fields.
func (_m *MockAccountRepository) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	ret := _m.Called(ctx, id, nickname)

	if len(ret) == 0 {
		panic("no return value specified for UpdateNickname")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) error); ok {
		r0 = rf(ctx, id, nickname)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockAccountRepository_UpdateNickname_Call wraps *mock.Call with typed Run and Return helpers.
type MockAccountRepository_UpdateNickname_Call struct {
	*mock.Call
}

// UpdateNickname is a helper method to define mock.On call
func (_e *MockAccountRepository_Expecter) UpdateNickname(ctx any, id any, nickname any) *MockAccountRepository_UpdateNickname_Call {
	return &MockAccountRepository_UpdateNickname_Call{Call: _e.mock.On("UpdateNickname", ctx, id, nickname)}
}

func (_c *MockAccountRepository_UpdateNickname_Call) Run(run func(ctx context.Context, id int64, nickname string)) *MockAccountRepository_UpdateNickname_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(string))
	})

	return _c
}

func (_c *MockAccountRepository_UpdateNickname_Call) Return(_a0 error) *MockAccountRepository_UpdateNickname_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockAccountRepository_UpdateNickname_Call) RunAndReturn(run func(context.Context, int64, string) error) *MockAccountRepository_UpdateNickname_Call {
	_c.Call.Return(run)

	return _c
}

// TouchLastSeen provides a mock function for the given fields.
func (_m *MockAccountRepository) TouchLastSeen(ctx context.Context, id int64, at time.Time) error {
	ret := _m.Called(ctx, id, at)

	if len(ret) == 0 {
		panic("no return value specified for TouchLastSeen")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, time.Time) error); ok {
		r0 = rf(ctx, id, at)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockAccountRepository_TouchLastSeen_Call wraps *mock.Call with typed Run and Return helpers.
type MockAccountRepository_TouchLastSeen_Call struct {
	*mock.Call
}

// TouchLastSeen is a helper method to define mock.On call
func (_e *MockAccountRepository_Expecter) TouchLastSeen(ctx any, id any, at any) *MockAccountRepository_TouchLastSeen_Call {
	return &MockAccountRepository_TouchLastSeen_Call{Call: _e.mock.On("TouchLastSeen", ctx, id, at)}
}

func (_c *MockAccountRepository_TouchLastSeen_Call) Run(run func(ctx context.Context, id int64, at time.Time)) *MockAccountRepository_TouchLastSeen_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(time.Time))
	})

	return _c
}

func (_c *MockAccountRepository_TouchLastSeen_Call) Return(_a0 error) *MockAccountRepository_TouchLastSeen_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockAccountRepository_TouchLastSeen_Call) RunAndReturn(run func(context.Context, int64, time.Time) error) *MockAccountRepository_TouchLastSeen_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockAccountRepository creates a new instance of MockAccountRepository and asserts its expectations when the test ends.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
