package memdriver

import (
	"io"

	"github.com/spf13/afero"

	"github.com/rstms/sdfat"
)

type fileHandle struct {
	f afero.File
}

var _ sdfat.FileHandle = (*fileHandle)(nil)

func (h *fileHandle) Read(p []byte) (int, sdfat.Result) {
	n, err := h.f.Read(p)
	if err != nil && err != io.EOF {
		return n, sdfat.ResultDiskErr
	}
	// end of file reads zero bytes with an OK result
	return n, sdfat.OK
}

func (h *fileHandle) Write(p []byte) (int, sdfat.Result) {
	n, err := h.f.Write(p)
	if err != nil {
		return n, sdfat.ResultDiskErr
	}
	return n, sdfat.OK
}

func (h *fileHandle) Seek(pos uint32) sdfat.Result {
	if _, err := h.f.Seek(int64(pos), io.SeekStart); err != nil {
		return sdfat.ResultDiskErr
	}
	return sdfat.OK
}

func (h *fileHandle) Tell() uint32 {
	pos, err := h.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0
	}
	return uint32(pos)
}

func (h *fileHandle) Size() uint32 {
	fi, err := h.f.Stat()
	if err != nil {
		return 0
	}
	return uint32(fi.Size())
}

func (h *fileHandle) Sync() sdfat.Result {
	if err := h.f.Sync(); err != nil {
		return sdfat.ResultDiskErr
	}
	return sdfat.OK
}

func (h *fileHandle) Close() sdfat.Result {
	if err := h.f.Close(); err != nil {
		return sdfat.ResultDiskErr
	}
	return sdfat.OK
}

// dirHandle iterates a snapshot of the directory taken at open time,
// matching how a FAT iterator is unaffected by later changes until
// it is reopened.
type dirHandle struct {
	entries []sdfat.Info
	idx     int
}

var _ sdfat.DirHandle = (*dirHandle)(nil)

func (h *dirHandle) Read() (sdfat.Info, sdfat.Result) {
	if h.idx >= len(h.entries) {
		return sdfat.Info{}, sdfat.OK
	}
	info := h.entries[h.idx]
	h.idx++
	return info, sdfat.OK
}

func (h *dirHandle) Close() sdfat.Result {
	return sdfat.OK
}
