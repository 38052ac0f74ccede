/*
Package kvstore implements an in-memory associative store whose values are
either a single string or an ordered list of strings, with a JSON-shaped
textual snapshot format.

We implement:

1. The entry table, a flat map of unique non-empty string keys to values,
together with derived counters (key count, maximum value-list depth, dirty
flag) maintained in the same step as every mutation.

2. A mutation API: Set/SetList, Append/AppendList, Remove, plus accessors
(Has, Get, First, All, Depth, Entry, Tuple, Keys, SortedKeys).

3. A swap engine transposing an entry's key and value, for one entry or the
whole store, restricted to scalar (depth-1) entries.

4. A nearest-key matcher ranking all keys against a query by Levenshtein
edit distance with multi-stage tie-breaking.

5. Snapshot persistence through pluggable storage backends (plain file,
Bolt bucket, in-memory).

# Technical Details

**Values.**
A value is a two-variant sum: Single (one string) or Multi (an ordered list,
length >= 1). The API never produces a Multi of length 1 except when
AppendList creates an entry from a caller-supplied list, which is stored as
given.

**Snapshots.**
The textual form is a flat JSON object whose values are strings or arrays of
strings; nothing else parses. The pretty mode writes indented UTF-8; the
compact mode writes one line with non-ASCII runes escaped as \uXXXX.
Persisting always overwrites the whole snapshot; there are no partial
updates and no WAL.

**Concurrency.**
A Store is single-threaded. Every operation completes synchronously on the
calling goroutine and there is no internal locking; concurrent callers must
serialize access externally.
*/
package kvstore
