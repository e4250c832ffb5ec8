// Package pagecollect provides an offline archiving tool for web pages.
// It walks a supplied list of page URLs, extracts each page's primary
// content while discarding navigation and site chrome, converts the
// result to markdown, and persists one document per page plus a run
// summary.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, http/).
package pagecollect
