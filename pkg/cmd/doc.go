// Package cmd implements the execreport command line: building the execution
// report from a results file, rendering it and mailing it.
package cmd
