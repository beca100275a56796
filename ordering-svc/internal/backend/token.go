package backend

import (
	"context"
	"errors"
)

var ErrMissingStaffToken = errors.New("staff admin token required")

type staffTokenKey struct{}

// WithStaffToken attaches the admin token of the staff member making a
// request. Staff calls are sent with this token and never with the
// service's own.
func WithStaffToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, staffTokenKey{}, token)
}

func StaffToken(ctx context.Context) string {
	token, _ := ctx.Value(staffTokenKey{}).(string)
	return token
}

type access int

const (
	accessPublic access = iota
	// accessTotal uses the staff token when present and falls back to the
	// configured service token so customer sessions can poll the total.
	accessTotal
	accessStaff
)

func (c *Client) adminToken(ctx context.Context, level access) (string, error) {
	switch level {
	case accessStaff:
		token := StaffToken(ctx)
		if token == "" {
			return "", ErrMissingStaffToken
		}
		return token, nil
	case accessTotal:
		if token := StaffToken(ctx); token != "" {
			return token, nil
		}
		return c.config.AdminToken, nil
	default:
		return "", nil
	}
}
