package resolver

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmoreaux/storyforge-backend/internal/domain"
	"github.com/nmoreaux/storyforge-backend/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	MeFunc             func(ctx context.Context) (*domain.User, error)
	GetUserFunc        func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetUserByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	ListUsersFunc      func(ctx context.Context) ([]domain.User, error)
	CreateUserFunc     func(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateUserFunc     func(ctx context.Context, input user.UpdateUserInput) (*domain.User, error)
	DeleteUserFunc     func(ctx context.Context, id primitive.ObjectID) error

	calls struct {
		Me []struct {
			Ctx context.Context
		}
		GetUser []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
		GetUserByEmail []struct {
			Ctx   context.Context
			Email string
		}
		ListUsers []struct {
			Ctx context.Context
		}
		CreateUser []struct {
			Ctx   context.Context
			Input user.CreateUserInput
		}
		UpdateUser []struct {
			Ctx   context.Context
			Input user.UpdateUserInput
		}
		DeleteUser []struct {
			Ctx context.Context
			ID  primitive.ObjectID
		}
	}
	lockMe             sync.RWMutex
	lockGetUser        sync.RWMutex
	lockGetUserByEmail sync.RWMutex
	lockListUsers      sync.RWMutex
	lockCreateUser     sync.RWMutex
	lockUpdateUser     sync.RWMutex
	lockDeleteUser     sync.RWMutex
}

func (mock *userServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("userServiceMock.MeFunc: method is nil but userService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *userServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *userServiceMock) GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if mock.GetUserFunc == nil {
		panic("userServiceMock.GetUserFunc: method is nil but userService.GetUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, id)
}

func (mock *userServiceMock) GetUserCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockGetUser.RLock()
	calls := mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *userServiceMock) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetUserByEmailFunc == nil {
		panic("userServiceMock.GetUserByEmailFunc: method is nil but userService.GetUserByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetUserByEmail.Lock()
	mock.calls.GetUserByEmail = append(mock.calls.GetUserByEmail, callInfo)
	mock.lockGetUserByEmail.Unlock()
	return mock.GetUserByEmailFunc(ctx, email)
}

func (mock *userServiceMock) GetUserByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetUserByEmail.RLock()
	calls := mock.calls.GetUserByEmail
	mock.lockGetUserByEmail.RUnlock()
	return calls
}

func (mock *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but userService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *userServiceMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userServiceMock) CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error) {
	if mock.CreateUserFunc == nil {
		panic("userServiceMock.CreateUserFunc: method is nil but userService.CreateUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.CreateUserInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, input)
}

func (mock *userServiceMock) CreateUserCalls() []struct {
	Ctx   context.Context
	Input user.CreateUserInput
} {
	mock.lockCreateUser.RLock()
	calls := mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateUser(ctx context.Context, input user.UpdateUserInput) (*domain.User, error) {
	if mock.UpdateUserFunc == nil {
		panic("userServiceMock.UpdateUserFunc: method is nil but userService.UpdateUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateUserInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateUser.Lock()
	mock.calls.UpdateUser = append(mock.calls.UpdateUser, callInfo)
	mock.lockUpdateUser.Unlock()
	return mock.UpdateUserFunc(ctx, input)
}

func (mock *userServiceMock) UpdateUserCalls() []struct {
	Ctx   context.Context
	Input user.UpdateUserInput
} {
	mock.lockUpdateUser.RLock()
	calls := mock.calls.UpdateUser
	mock.lockUpdateUser.RUnlock()
	return calls
}

func (mock *userServiceMock) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if mock.DeleteUserFunc == nil {
		panic("userServiceMock.DeleteUserFunc: method is nil but userService.DeleteUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  primitive.ObjectID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteUser.Lock()
	mock.calls.DeleteUser = append(mock.calls.DeleteUser, callInfo)
	mock.lockDeleteUser.Unlock()
	return mock.DeleteUserFunc(ctx, id)
}

func (mock *userServiceMock) DeleteUserCalls() []struct {
	Ctx context.Context
	ID  primitive.ObjectID
} {
	mock.lockDeleteUser.RLock()
	calls := mock.calls.DeleteUser
	mock.lockDeleteUser.RUnlock()
	return calls
}
