package context

import (
	"context"

	"github.com/heystay/booking-api/constant"
)

func WithIdentity(ctx context.Context, userID, username string) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, userID)
	return context.WithValue(ctx, constant.UsernameKey, username)
}

func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func GetUsername(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UsernameKey)
	if v == nil {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
