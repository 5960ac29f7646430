// Package clawdoc provides a local documentation learning and retrieval
// engine. It ingests reference pages (man-style), markdown guides, and
// free-form text, extracts structured knowledge, builds a TF-IDF index
// over document sections, and answers natural language questions with
// ranked, cited, extractive answers.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// goldmark/, trafilatura/).
package clawdoc
