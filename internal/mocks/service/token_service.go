package service

import (
	"time"

	"hazardmap/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of the TokenService interface.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// GenerateAccessToken provides a mock function for the given fields.
func (_m *MockTokenService) GenerateAccessToken(userID int64) (string, error) {
	ret := _m.Called(userID)

	if len(ret) == 0 {
		panic("no return value specified for GenerateAccessToken")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func(int64) string); ok {
		r0 = rf(userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(int64) error); ok {
		r1 = rf(userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_GenerateAccessToken_Call wraps *mock.Call with typed Run and Return helpers.
type MockTokenService_GenerateAccessToken_Call struct {
	*mock.Call
}

// GenerateAccessToken is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) GenerateAccessToken(userID any) *MockTokenService_GenerateAccessToken_Call {
	return &MockTokenService_GenerateAccessToken_Call{Call: _e.mock.On("GenerateAccessToken", userID)}
}

func (_c *MockTokenService_GenerateAccessToken_Call) Run(run func(userID int64)) *MockTokenService_GenerateAccessToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(int64))
	})

	return _c
}

func (_c *MockTokenService_GenerateAccessToken_Call) Return(_a0 string, _a1 error) *MockTokenService_GenerateAccessToken_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_GenerateAccessToken_Call) RunAndReturn(run func(int64) (string, error)) *MockTokenService_GenerateAccessToken_Call {
	_c.Call.Return(run)

	return _c
}

// Authenticate provides a mock function for the given fields.
func (_m *MockTokenService) Authenticate(token string) service.AuthResult {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 service.AuthResult
	if rf, ok := ret.Get(0).(func(string) service.AuthResult); ok {
		r0 = rf(token)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(service.AuthResult)
	}

	return r0
}

// MockTokenService_Authenticate_Call wraps *mock.Call with typed Run and Return helpers.
type MockTokenService_Authenticate_Call struct {
	*mock.Call
}

// Authenticate is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) Authenticate(token any) *MockTokenService_Authenticate_Call {
	return &MockTokenService_Authenticate_Call{Call: _e.mock.On("Authenticate", token)}
}

func (_c *MockTokenService_Authenticate_Call) Run(run func(token string)) *MockTokenService_Authenticate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockTokenService_Authenticate_Call) Return(_a0 service.AuthResult) *MockTokenService_Authenticate_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockTokenService_Authenticate_Call) RunAndReturn(run func(string) service.AuthResult) *MockTokenService_Authenticate_Call {
	_c.Call.Return(run)

	return _c
}

// AccessTokenTTL provides a mock function for the given fields.
func (_m *MockTokenService) AccessTokenTTL() time.Duration {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for AccessTokenTTL")
	}

	var r0 time.Duration
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(time.Duration)
	}

	return r0
}

// MockTokenService_AccessTokenTTL_Call wraps *mock.Call with typed Run and Return helpers.
type MockTokenService_AccessTokenTTL_Call struct {
	*mock.Call
}

// AccessTokenTTL is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) AccessTokenTTL() *MockTokenService_AccessTokenTTL_Call {
	return &MockTokenService_AccessTokenTTL_Call{Call: _e.mock.On("AccessTokenTTL")}
}

func (_c *MockTokenService_AccessTokenTTL_Call) Run(run func()) *MockTokenService_AccessTokenTTL_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockTokenService_AccessTokenTTL_Call) Return(_a0 time.Duration) *MockTokenService_AccessTokenTTL_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockTokenService_AccessTokenTTL_Call) RunAndReturn(run func() time.Duration) *MockTokenService_AccessTokenTTL_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockTokenService creates a new instance of MockTokenService and asserts its expectations when the test ends.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
