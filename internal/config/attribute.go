package config

import "github.com/sessionkit/noluhn/internal/sessionid"

// Attribute returns the session attribute for key, or defaultValue when it is
// not configured. It lets a Config act as a sessionid.AttributeSource.
func (c *Config) Attribute(key, defaultValue string) string {
	switch key {
	case sessionid.AttributeIDLength:
		if c.Session.IDLength != "" {
			return c.Session.IDLength
		}
	}

	return defaultValue
}
