// Package sessionid issues and checks session identifiers built from
// cryptographically random bytes with the noluhn encoding.
//
// A Provider is safe for concurrent use. Its byte length may be replaced by
// Configure at any time; readers always observe either the old or the new value.
package sessionid
