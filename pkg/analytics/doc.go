// Package analytics defines the outbound event sink the site reports user
// interactions to: named events with a flat parameter map. Sink failures must
// never block or fail the caller, so the Tracker interface returns nothing
// and implementations swallow their own errors.
//
// Included implementations: Noop (discard), LogTracker (structured log
// records, one per event, each with a generated event id) and MemoryTracker
// (in-memory capture for tests).
package analytics
