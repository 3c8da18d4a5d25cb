// Package github wraps the GitHub REST API surface the status page needs:
// labels, issues and comments, file contents, branch references, and
// collaborator listings. API failures are classified into typed errors so
// callers can branch on not-found (create vs update) and already-exists
// (skip) conditions; transient failures are retried with backoff.
package github
