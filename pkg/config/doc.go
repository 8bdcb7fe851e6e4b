// Package config handles tool settings for stampname.
// Settings are layered from the embedded defaults, an optional TOML file
// in the XDG config home, STAMPNAME_* environment variables and explicit
// overrides, in that order.
package config
