// Package binaries stores downloaded chart documents.
package binaries
