// Package classify assigns test result records to application modules using
// an ordered rule list and normalizes raw status values into report labels.
package classify
