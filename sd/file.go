package sd

import (
	"io"

	"github.com/rstms/sdfat"
)

type binding uint8

const (
	unbound binding = iota
	fileBound
	dirBound
)

// File represents one resolved path: either an open file stream or an
// open directory iterator, behind a single type so callers need not
// know which they were handed. The zero File is empty; it is invalid,
// reports false from IsDirectory, and is safe to Close.
//
// Invariant: path is set if and only if a native handle is bound, and
// at most one of the file and directory handles is bound at a time.
type File struct {
	vol   *Volume
	path  string
	state binding
	fil   sdfat.FileHandle
	dir   sdfat.DirHandle
	res   sdfat.Result
}

// IsOpen reports whether the File is bound to a live file or
// directory.
func (f *File) IsOpen() bool {
	return f.path != "" && f.state != unbound
}

// LastResult returns the outcome of the most recent native operation
// performed through this File.
func (f *File) LastResult() sdfat.Result {
	return f.res
}

// Name returns the last segment of the resolved path.
func (f *File) Name() string {
	return baseName(f.path)
}

// FullName returns the fully-qualified path this File was opened
// with, or the empty string for an empty File.
func (f *File) FullName() string {
	return f.path
}

// Read implements io.Reader. A read at end of file returns io.EOF.
func (f *File) Read(p []byte) (int, error) {
	if f.state != fileBound {
		f.res = sdfat.ResultInvalidObject
		return 0, Fatal(f.res)
	}
	n, res := f.fil.Read(p)
	f.res = res
	if !res.IsOK() {
		return n, Fatal(res)
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// ReadByte reads a single byte, returning its value or -1 on failure
// or end of file.
func (f *File) ReadByte() int {
	var b [1]byte
	n, err := f.Read(b[:])
	if err != nil || n != 1 {
		return -1
	}
	return int(b[0])
}

// Peek reads the next byte without advancing the position. At end of
// file, or on an empty file, it returns -1 without touching the
// position.
func (f *File) Peek() int {
	if f.state != fileBound || f.Position() >= f.Size() {
		return -1
	}
	data := f.ReadByte()
	if data < 0 {
		return -1
	}
	f.Seek(f.Position() - 1)
	return data
}

// ReadLine reads into p up to and including the next '\n', or until p
// is full. It returns io.EOF when the file is exhausted before any
// byte is read.
func (f *File) ReadLine(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		var b [1]byte
		_, err := f.Read(b[:])
		if err == io.EOF {
			if n == 0 {
				return 0, io.EOF
			}
			break
		}
		if err != nil {
			return n, err
		}
		p[n] = b[0]
		n++
		if b[0] == '\n' {
			break
		}
	}
	return n, nil
}

// Write implements io.Writer. Bytes are not flushed to the card until
// Flush or Close.
func (f *File) Write(p []byte) (int, error) {
	if f.state != fileBound {
		f.res = sdfat.ResultInvalidObject
		return 0, Fatal(f.res)
	}
	n, res := f.fil.Write(p)
	f.res = res
	if !res.IsOK() {
		return n, Fatal(res)
	}
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteByte implements io.ByteWriter.
func (f *File) WriteByte(b byte) error {
	_, err := f.Write([]byte{b})
	return err
}

// WriteString implements io.StringWriter.
func (f *File) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

// WriteLine writes s followed by CRLF.
func (f *File) WriteLine(s string) (int, error) {
	n, err := f.WriteString(s)
	if err != nil {
		return n, err
	}
	m, err := f.WriteString("\r\n")
	return n + m, err
}

// Seek moves the read/write position. Positions beyond the end of
// the file are rejected, leaving the current position unchanged.
func (f *File) Seek(pos uint32) bool {
	if f.state != fileBound {
		return false
	}
	if pos > f.Size() {
		return false
	}
	res := f.fil.Seek(pos)
	f.res = res
	return res.IsOK()
}

// Rewind resets the position to the start of the file.
func (f *File) Rewind() bool {
	return f.Seek(0)
}

// Position returns the current offset, or 0 when unbound.
func (f *File) Position() uint32 {
	if f.state != fileBound {
		return 0
	}
	return f.fil.Tell()
}

// Size returns the file size, or 0 when unbound.
func (f *File) Size() uint32 {
	if f.state != fileBound {
		return 0
	}
	return f.fil.Size()
}

// Available returns the number of bytes left before end of file,
// clamped to 0x7FFF. It never goes negative.
func (f *File) Available() int {
	size, pos := f.Size(), f.Position()
	if pos >= size {
		return 0
	}
	n := size - pos
	if n > 0x7FFF {
		return 0x7FFF
	}
	return int(n)
}

// Flush pushes any written bytes down to the card.
func (f *File) Flush() {
	if f.state == fileBound {
		f.res = f.fil.Sync()
	}
}

// Close syncs and releases the native handle, then frees the resolved
// path, returning the File to the empty state. It is idempotent and
// safe on an empty File.
func (f *File) Close() error {
	if f.path == "" {
		return nil
	}
	res := sdfat.OK
	switch f.state {
	case fileBound:
		f.fil.Sync()
		res = f.fil.Close()
		f.fil = nil
	case dirBound:
		res = f.dir.Close()
		f.dir = nil
	}
	f.state = unbound
	f.path = ""
	f.res = res
	if !res.IsOK() {
		return Fatal(res)
	}
	return nil
}

// IsDirectory reports whether the File refers to a directory. A File
// holding a path but no bound handle falls back to a fresh stat; an
// empty File reports false.
func (f *File) IsDirectory() bool {
	switch f.state {
	case dirBound:
		return true
	case fileBound:
		return false
	}
	if f.path == "" || f.vol == nil {
		return false
	}
	info, res := f.vol.drv.Stat(f.path)
	if !res.IsOK() {
		return false
	}
	return info.Attr.IsDir()
}

// OpenNextFile resolves the next non-dot entry of a directory-bound
// File, exactly as Volume.Open would. When the entries run out it
// returns an invalid File whose LastResult is ResultNoMoreEntries.
func (f *File) OpenNextFile(mode sdfat.Mode) *File {
	if f.state != dirBound {
		panic("not a directory")
	}
	for {
		info, res := f.dir.Read()
		f.res = res
		if !res.IsOK() {
			return &File{vol: f.vol, res: res}
		}
		name := info.DisplayName()
		if name == "" {
			return &File{vol: f.vol, res: sdfat.ResultNoMoreEntries}
		}
		if name[0] == '.' {
			continue
		}
		return f.vol.Open(joinPath(f.path, name), mode)
	}
}

// RewindDirectory resets directory iteration back to the first entry
// by closing and reopening the native iterator at the same path. It
// is a no-op on anything but a directory-bound File.
func (f *File) RewindDirectory() {
	if f.state != dirBound {
		return
	}
	f.dir.Close()
	dir, res := f.vol.drv.OpenDir(f.path)
	f.res = res
	if res.IsOK() {
		f.dir = dir
		return
	}
	// reopen failed: fall back to the empty state rather than keep a
	// dead iterator bound
	f.dir = nil
	f.state = unbound
	f.path = ""
}
