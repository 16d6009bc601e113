package repository

import (
	"hazardmap/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a testify mock of the RepositoryFactory interface.
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// AccountRepo provides a mock function for the given fields.
func (_m *MockRepositoryFactory) AccountRepo() repository.AccountRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for AccountRepo")
	}

	var r0 repository.AccountRepository
	if rf, ok := ret.Get(0).(func() repository.AccountRepository); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.AccountRepository)
	}

	return r0
}

// MockRepositoryFactory_AccountRepo_Call wraps *mock.Call with typed Run and Return helpers.
type MockRepositoryFactory_AccountRepo_Call struct {
	*mock.Call
}

// AccountRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) AccountRepo() *MockRepositoryFactory_AccountRepo_Call {
	return &MockRepositoryFactory_AccountRepo_Call{Call: _e.mock.On("AccountRepo")}
}

func (_c *MockRepositoryFactory_AccountRepo_Call) Run(run func()) *MockRepositoryFactory_AccountRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockRepositoryFactory_AccountRepo_Call) Return(_a0 repository.AccountRepository) *MockRepositoryFactory_AccountRepo_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRepositoryFactory_AccountRepo_Call) RunAndReturn(run func() repository.AccountRepository) *MockRepositoryFactory_AccountRepo_Call {
	_c.Call.Return(run)

	return _c
}

// FavoriteRepo provides a mock function for the given fields.
func (_m *MockRepositoryFactory) FavoriteRepo() repository.FavoriteRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for FavoriteRepo")
	}

	var r0 repository.FavoriteRepository
	if rf, ok := ret.Get(0).(func() repository.FavoriteRepository); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.FavoriteRepository)
	}

	return r0
}

// MockRepositoryFactory_FavoriteRepo_Call wraps *mock.Call with typed Run and Return helpers.
type MockRepositoryFactory_FavoriteRepo_Call struct {
	*mock.Call
}

// FavoriteRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) FavoriteRepo() *MockRepositoryFactory_FavoriteRepo_Call {
	return &MockRepositoryFactory_FavoriteRepo_Call{Call: _e.mock.On("FavoriteRepo")}
}

func (_c *MockRepositoryFactory_FavoriteRepo_Call) Run(run func()) *MockRepositoryFactory_FavoriteRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockRepositoryFactory_FavoriteRepo_Call) Return(_a0 repository.FavoriteRepository) *MockRepositoryFactory_FavoriteRepo_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRepositoryFactory_FavoriteRepo_Call) RunAndReturn(run func() repository.FavoriteRepository) *MockRepositoryFactory_FavoriteRepo_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory and asserts its expectations when the test ends.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
