package sdfat

// A Driver provides the flat, single-level primitives of a mounted FAT
// volume. Each call addresses one fully-qualified path; composing those
// into hierarchical operations is the job of the sd package.
type Driver interface {
	// Mount prepares the filesystem for use. Called once by sd.Volume.Begin
	// after the card reports ready.
	Mount() Result
	Stat(path string) (Info, Result)
	Open(path string, mode Mode) (FileHandle, Result)
	OpenDir(path string) (DirHandle, Result)
	Mkdir(path string) Result
	// Unlink removes a file or an empty directory.
	Unlink(path string) Result
	RootPath() string
}

// FileHandle is an open file stream owned by exactly one sd.File.
type FileHandle interface {
	Read(p []byte) (int, Result)
	Write(p []byte) (int, Result)
	Seek(pos uint32) Result
	Tell() uint32
	Size() uint32
	Sync() Result
	Close() Result
}

// DirHandle iterates the entries of one directory in native order.
// Read reports OK with an empty Name when the entries run out.
type DirHandle interface {
	Read() (Info, Result)
	Close() Result
}

// Card is the physical block device boundary. Init configures the
// card hardware, honoring the detect pin when one is wired.
type Card interface {
	Init(detect DetectPin) bool
}

type DetectPin int

// DetectNone indicates no card-detect pin is wired.
const DetectNone DetectPin = -1
