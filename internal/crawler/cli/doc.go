// Package cli is the interactive front end of the crawler.
//
// App wires configuration, the store, the API client and the crawl service,
// and owns everything the user sees: the target count, the confirmation
// prompt, one-line progress updates and the closing summary. Diagnostics go
// to the structured logger on stderr.
package cli
