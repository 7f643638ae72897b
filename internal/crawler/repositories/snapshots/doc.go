// Package snapshots stores airport_information rows: immutable captures of
// an airport's attributes, many per airport code.
package snapshots
