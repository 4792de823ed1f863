// Package model provides the data model for indexed Markdown structure.
//
// This package defines the user-facing types produced by scanning a document.
// All scanning and extraction operations ultimately yield these types, making
// them the primary vocabulary for navigation queries.
//
// # Elements
//
// An [Element] is a categorized, span-located unit of Markdown structure or
// inline formatting. Elements are closed tagged values: the [Category] enum
// is exhaustive and category-specific payload lives in [Meta] rather than in
// a type hierarchy. Once produced by an extraction pass, elements are never
// mutated; a re-scan yields an entirely new set.
//
// # Spans and offsets
//
// A [Span] is a half-open rune-offset range into the document text. All
// offsets in this module are rune offsets, matching hosts that index text by
// character rather than by byte.
//
// # Documents
//
// A [Document] is the working form of a text snapshot: the text, its opaque
// revision token, and precomputed line and UTF-16 offset tables. The UTF-16
// tables exist for hosts (screen readers, Windows text APIs) that address
// text in UTF-16 code units:
//
//	doc := model.NewDocument(text, revision)
//	u16 := doc.UTF16Offset(runeOffset)
//	back := doc.RuneOffsetFromUTF16(u16)
//
// # Parent links
//
// Element nesting is expressed through weak [ElementID] back-references, not
// owning pointers, so element sets can be stored as flat slices. Resolve an
// ID against the index that owns the element set.
package model
