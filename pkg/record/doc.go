// Package record loads automated UI test results from CSV into records with
// normalized column names and explicit missing values.
package record
