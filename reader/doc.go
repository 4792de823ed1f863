// Package reader turns source bytes into the engine's input text.
//
// Markdown arrives from hosts in whatever encoding the filesystem had.
// [Decode] sniffs a leading byte order mark and converts UTF-16 of
// either endianness to UTF-8, strips a UTF-8 BOM, and passes everything
// else through unchanged. Invalid byte sequences become U+FFFD rather
// than errors, matching the engine's fail-soft treatment of its input.
//
// # Revisions
//
// [Hash] derives the revision token a Snapshot carries: the hex SHA-256
// of the text. Equal texts hash equal and any edit changes the token.
// Hosts with their own edit counters need not use it.
//
// # Files
//
// [ReadFile] is the one-call path from a filename to decoded text:
//
//	text, err := reader.ReadFile("notes.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
package reader
