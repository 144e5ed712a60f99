// Package json encodes and decodes definition documents and CLI output.
//
// On linux, darwin and windows for amd64 and arm64 it is backed by
// [sonic]; elsewhere it falls back to encoding/json with the same API.
package json
