// Package index answers positional queries over an extracted element set.
//
// An [Index] is built once per document revision and is immutable after
// [Build] returns. It partitions elements by category, keeping each
// partition ordered by span start, so directional queries run in
// logarithmic time over the partition.
//
// # Queries
//
// [Index.Query] finds the nearest element of one category in a
// direction: Next is the first element starting strictly after the
// given offset, Previous the last one starting strictly before it. An
// element starting exactly at the offset is never its own answer, so
// repeated Next calls walk forward without sticking.
//
// [Index.QueryHeading] is the same search restricted to headings of one
// level; level 0 lifts the restriction.
//
// # Containment
//
// [Index.EnclosingBlock] returns the innermost block element whose span
// contains an offset. Inline elements never enclose anything. Spans are
// half-open, so an offset sitting exactly at a block's end is outside
// it.
package index
