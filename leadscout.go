// Package leadscout discovers, scrapes, and qualifies small independent
// service-business websites, producing structured contact records. Candidate
// URLs come from a search backend, each page is fetched and mined for contact
// signals, a language-model pass turns the page into a structured record, and
// a second pass decides whether the business is a small independent service
// provider worth keeping.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, sqlite/, rod/).
package leadscout
