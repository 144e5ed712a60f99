// Package cast converts loosely typed values decoded from definition documents
// into integers.
//
// Integer inputs go through [safemath] so overflows, underflows and sign
// changes are reported instead of silently truncated. Everything else
// (floats, numeric strings, json.Number) goes through [cast].
package cast
