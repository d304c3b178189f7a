// Package noluhn encodes random bytes into URL-safe identifiers whose text avoids
// long runs of digits. It is a base64 variant: the leading character of every
// even block is drawn from an alphabet without digits, and short final blocks
// are filled with an in-alphabet marker instead of '=' padding.
package noluhn
