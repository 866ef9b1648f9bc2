// Package serpjson turns saved search engine result pages into structured
// JSON records. It extracts organic results, the knowledge panel, related
// questions and searches, top stories, images, and videos.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package serpjson
