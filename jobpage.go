// Package jobpage turns a saved job-search result page into a publishable
// static job page. It extracts raw fields from the snapshot HTML, cleans them
// through fixed transform pipelines, derives the page title, slug, meta
// description, hashtags and JSON-LD, and renders the job page together with
// a paginated index of everything already published.
//
// This package contains domain types, interfaces and the pure normalization
// and derivation functions, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, github/).
package jobpage
