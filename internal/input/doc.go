// Package input reads the files scanned by rex grep.
//
// Files come from an [afero.Fs]. On the OS filesystem, regular files are
// memory-mapped via [mmapfile] when possible so large logs are scanned without
// copying; anything mmap cannot handle (empty files, unsupported platforms,
// non-OS filesystems) falls back to a plain read.
package input
