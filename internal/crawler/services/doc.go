// Package services holds the crawler's application logic.
//
// SnapshotService answers whether an airport was ever captured and writes
// one airport capture (snapshot, charts, binaries) as a single transaction.
// CrawlService drives a whole run: resolve targets, confirm, then for each
// airport skip or fetch, download and persist.
package services
