// Package mail delivers the rendered execution report over SMTP submission,
// including the optional file attachment, and reports delivery as a boolean
// outcome.
package mail
