// Package output prints execution report tables to the console as aligned
// tables, JSON or YAML.
package output
