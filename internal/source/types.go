package source

type (
	// FileID uniquely identifies a buffer within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a buffer was added.
	FileFlags uint8
)

const (
	// FileVirtual indicates the buffer came from memory (CLI argument, REPL line, test).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds the content and derived metadata for one expression buffer.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position, both components 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}
