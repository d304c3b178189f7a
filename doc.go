// Package main provides the entry point of the noluhn session id service.
// It issues random session ids encoded in a base64 variant that keeps long
// digit runs out of the text, serves them over http through fiber, plugs them
// into the fiber session store and checks received ids.
package main
