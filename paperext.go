// Package paperext extracts the scholarly content of a scientific paper
// (title, abstract, and introductory body text) from the structured text
// blocks produced by a PDF conversion backend, discarding author lists,
// affiliations, journal metadata, and table/figure captions.
//
// This package contains domain types, interfaces, and the heuristic
// extraction pipeline following Ben Johnson's Standard Package Layout.
// Implementations of the surrounding service live in subdirectories named
// after their primary dependency (e.g., sqlite/, docling/, pdfcpu/).
package paperext
