package api

import (
	"context"
	"errors"
)

type keyType string

const (
	userIDKey   keyType = "userID"
	userRoleKey keyType = "userRole"
)

// ctxWithUser adds the authenticated user's id and role to the context
func ctxWithUser(ctx context.Context, userID uint, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}

// ctxGetUserID retrieves the authenticated user's id from the context
func ctxGetUserID(ctx context.Context) (uint, error) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return 0, errors.New("user id not found in context")
	}
	userID, ok := value.(uint)
	if !ok {
		return 0, errors.New("user id is not of type `uint`")
	}
	return userID, nil
}

// ctxGetUserRole retrieves the authenticated user's role from the context
func ctxGetUserRole(ctx context.Context) (string, error) {
	value := ctx.Value(userRoleKey)
	if value == nil {
		return "", errors.New("user role not found in context")
	}
	role, ok := value.(string)
	if !ok {
		return "", errors.New("user role is not of type `string`")
	}
	return role, nil
}
