// Package charts stores chart metadata rows. Each row belongs to one airport
// snapshot and owns exactly one chart binary.
package charts
