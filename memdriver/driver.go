// Package memdriver implements the sdfat driver boundary over an
// in-memory filesystem. It stands in for a real FAT driver in tests
// and examples; names are stored as given, with no 8.3 shortening.
package memdriver

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/rstms/sdfat"
)

type Driver struct {
	fs      afero.Fs
	mounted bool
}

// ensure Driver implements sdfat.Driver
var _ sdfat.Driver = (*Driver)(nil)

func New() *Driver {
	return &Driver{fs: afero.NewMemMapFs()}
}

func (d *Driver) Mount() sdfat.Result {
	d.mounted = true
	return sdfat.OK
}

func (d *Driver) RootPath() string {
	return "/"
}

func (d *Driver) Stat(path string) (sdfat.Info, sdfat.Result) {
	if !d.mounted {
		return sdfat.Info{}, sdfat.ResultNotEnabled
	}
	fi, err := d.fs.Stat(path)
	if err != nil {
		return sdfat.Info{}, mapError(err)
	}
	return infoFor(fi), sdfat.OK
}

func (d *Driver) Open(path string, mode sdfat.Mode) (sdfat.FileHandle, sdfat.Result) {
	if !d.mounted {
		return nil, sdfat.ResultNotEnabled
	}
	if fi, err := d.fs.Stat(path); err == nil && fi.IsDir() {
		// directories do not open as file streams
		return nil, sdfat.ResultDenied
	}
	flag, appendEnd := osFlags(mode)
	f, err := d.fs.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, mapError(err)
	}
	if appendEnd {
		f.Seek(0, io.SeekEnd)
	}
	return &fileHandle{f: f}, sdfat.OK
}

func (d *Driver) OpenDir(path string) (sdfat.DirHandle, sdfat.Result) {
	if !d.mounted {
		return nil, sdfat.ResultNotEnabled
	}
	fi, err := d.fs.Stat(path)
	if err != nil {
		return nil, mapError(err)
	}
	if !fi.IsDir() {
		return nil, sdfat.ResultNoPath
	}
	fis, err := afero.ReadDir(d.fs, path)
	if err != nil {
		return nil, sdfat.ResultDiskErr
	}
	entries := make([]sdfat.Info, 0, len(fis))
	for _, fi := range fis {
		entries = append(entries, infoFor(fi))
	}
	return &dirHandle{entries: entries}, sdfat.OK
}

func (d *Driver) Mkdir(path string) sdfat.Result {
	if !d.mounted {
		return sdfat.ResultNotEnabled
	}
	if parent := parentDir(path); parent != "" {
		fi, err := d.fs.Stat(parent)
		if err != nil || !fi.IsDir() {
			return sdfat.ResultNoPath
		}
	}
	if err := d.fs.Mkdir(path, 0755); err != nil {
		return mapError(err)
	}
	return sdfat.OK
}

func (d *Driver) Unlink(path string) sdfat.Result {
	if !d.mounted {
		return sdfat.ResultNotEnabled
	}
	fi, err := d.fs.Stat(path)
	if err != nil {
		return mapError(err)
	}
	if fi.IsDir() {
		children, err := afero.ReadDir(d.fs, path)
		if err != nil {
			return sdfat.ResultDiskErr
		}
		if len(children) > 0 {
			return sdfat.ResultDenied
		}
	}
	if err := d.fs.Remove(path); err != nil {
		return mapError(err)
	}
	return sdfat.OK
}

func osFlags(mode sdfat.Mode) (flag int, appendEnd bool) {
	switch {
	case mode&sdfat.ModeWrite != 0 && mode&sdfat.ModeRead != 0:
		flag = os.O_RDWR
	case mode&sdfat.ModeWrite != 0:
		flag = os.O_WRONLY
	default:
		flag = os.O_RDONLY
	}
	switch {
	case mode&sdfat.ModeOpenAppend == sdfat.ModeOpenAppend:
		flag |= os.O_CREATE
		appendEnd = true
	case mode&sdfat.ModeCreateAlways != 0:
		flag |= os.O_CREATE | os.O_TRUNC
	case mode&sdfat.ModeCreateNew != 0:
		flag |= os.O_CREATE | os.O_EXCL
	case mode&sdfat.ModeOpenAlways != 0:
		flag |= os.O_CREATE
	}
	return flag, appendEnd
}

func parentDir(path string) string {
	path = strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	if idx == 0 {
		if len(path) > 1 {
			return "/"
		}
		return ""
	}
	return path[:idx]
}

func infoFor(fi os.FileInfo) sdfat.Info {
	info := sdfat.Info{
		Name: fi.Name(),
		Date: sdfat.PackDate(fi.ModTime()),
		Time: sdfat.PackTime(fi.ModTime()),
	}
	if fi.IsDir() {
		info.Attr |= sdfat.AttrDirectory
	} else {
		info.Size = uint32(fi.Size())
	}
	return info
}

func mapError(err error) sdfat.Result {
	switch {
	case os.IsNotExist(err):
		return sdfat.ResultNoFile
	case os.IsExist(err):
		return sdfat.ResultExist
	case os.IsPermission(err):
		return sdfat.ResultDenied
	default:
		return sdfat.ResultDiskErr
	}
}
