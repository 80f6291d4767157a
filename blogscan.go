// Package blogscan finds the latest articles on arbitrary blog homepages.
// It renders each homepage, waits for the page to settle, and runs a
// heuristic extraction engine over the resulting DOM to recover up to
// three article entries (title, URL, optional description) without any
// site-specific configuration.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package blogscan
