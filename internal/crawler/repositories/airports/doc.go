// Package airports stores the identity row of every airport ever captured
// and its pointer to the snapshot considered current.
package airports
