package internal

// Version of the timeprof tool
const Version = "0.3.0"

// ArchiveVersion is the record format version written to CBOR archives.
const ArchiveVersion = 1
