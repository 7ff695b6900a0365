package user

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ tokenRevoker = &tokenRevokerMock{}

type tokenRevokerMock struct {
	RevokeAllForUserFunc func(ctx context.Context, userID primitive.ObjectID) error

	calls struct {
		RevokeAllForUser []struct {
			Ctx    context.Context
			UserID primitive.ObjectID
		}
	}
	lockRevokeAllForUser sync.RWMutex
}

func (mock *tokenRevokerMock) RevokeAllForUser(ctx context.Context, userID primitive.ObjectID) error {
	if mock.RevokeAllForUserFunc == nil {
		panic("tokenRevokerMock.RevokeAllForUserFunc: method is nil but tokenRevoker.RevokeAllForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID primitive.ObjectID
	}{Ctx: ctx, UserID: userID}
	mock.lockRevokeAllForUser.Lock()
	mock.calls.RevokeAllForUser = append(mock.calls.RevokeAllForUser, callInfo)
	mock.lockRevokeAllForUser.Unlock()
	return mock.RevokeAllForUserFunc(ctx, userID)
}

func (mock *tokenRevokerMock) RevokeAllForUserCalls() []struct {
	Ctx    context.Context
	UserID primitive.ObjectID
} {
	mock.lockRevokeAllForUser.RLock()
	calls := mock.calls.RevokeAllForUser
	mock.lockRevokeAllForUser.RUnlock()
	return calls
}
