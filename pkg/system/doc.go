// Package system provides process-wide helpers: logger construction and
// test loggers.
package system
