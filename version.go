package kvstore

// LibraryVersion is the semantic version of this library.
const LibraryVersion = "1.0.0"

// Version returns LibraryVersion.
func Version() string {
	return LibraryVersion
}
