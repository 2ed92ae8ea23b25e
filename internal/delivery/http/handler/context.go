package handler

import "context"

// contextKey is the type for context keys
type contextKey string

// UserIDContextKey is the key used to store the authenticated user id
// in the request context.
const UserIDContextKey contextKey = "userID"

// GetUserID retrieves the authenticated user id from request context
func GetUserID(ctx context.Context) string {
	id, ok := ctx.Value(UserIDContextKey).(string)
	if !ok {
		return ""
	}
	return id
}
