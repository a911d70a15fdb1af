package command

import (
	"github.com/urfave/cli/v2"
)

// optString returns a pointer to the flag value, or nil when the flag was
// not given. Update commands use it to build partial request bodies.
func optString(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	v := c.String(name)
	return &v
}

func optFloat(c *cli.Context, name string) *float64 {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Float64(name)
	return &v
}

func optInt(c *cli.Context, name string) *int {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Int(name)
	return &v
}

func optBool(c *cli.Context, name string) *bool {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Bool(name)
	return &v
}

// optEnum is optString for string-backed enum types.
func optEnum[T ~string](c *cli.Context, name string) *T {
	if !c.IsSet(name) {
		return nil
	}
	v := T(c.String(name))
	return &v
}
