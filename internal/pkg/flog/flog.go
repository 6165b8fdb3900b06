// Package flog carries a request scoped zerolog logger through fiber handlers.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type idKey struct{}

// FromFiberCtx returns the logger of the request, or the disabled logger when none was injected.
func FromFiberCtx(c *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(c.UserContext())
}

// NewHandlerMiddleware injects a copy of l into the request context.
func NewHandlerMiddleware(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// copy so that UpdateContext on one request does not race with another
		rl := l.With().Logger()
		c.SetUserContext(rl.WithContext(c.UserContext()))
		return c.Next()
	}
}

// FieldHandler adds the value extracted by f to the request logger under fieldKey.
func FieldHandler(fieldKey string, f func(c *fiber.Ctx) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := f(c)
		zerolog.Ctx(c.UserContext()).UpdateContext(func(lc zerolog.Context) zerolog.Context {
			return lc.Str(fieldKey, v)
		})
		return c.Next()
	}
}

func RemoteAddrHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(c *fiber.Ctx) string { return c.IP() })
}

func MethodHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(c *fiber.Ctx) string { return c.Method() })
}

func URLHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(c *fiber.Ctx) string { return c.Path() })
}

func UserAgentHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(c *fiber.Ctx) string { return c.Get(fiber.HeaderUserAgent) })
}

func IDFromFiberCtx(c *fiber.Ctx) (xid.ID, bool) {
	if c == nil {
		return xid.ID{}, false
	}
	return IDFromCtx(c.UserContext())
}

func IDFromCtx(ctx context.Context) (xid.ID, bool) {
	id, ok := ctx.Value(idKey{}).(xid.ID)
	return id, ok
}

func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// RequestIDHandler assigns every request an xid, logs it under fieldKey and echoes it
// in headerName. Either may be empty to skip it.
func RequestIDHandler(fieldKey, headerName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(c)
		if !ok {
			id = xid.New()
			c.SetUserContext(CtxWithID(c.UserContext(), id))
		}
		if fieldKey != "" {
			FromFiberCtx(c).UpdateContext(func(lc zerolog.Context) zerolog.Context {
				return lc.Str(fieldKey, id.String())
			})
		}
		if headerName != "" {
			c.Set(headerName, id.String())
		}
		return c.Next()
	}
}

// AccessHandler calls f once the rest of the chain returned.
func AccessHandler(f func(c *fiber.Ctx, duration time.Duration)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		f(c, time.Since(start))
		return err
	}
}
