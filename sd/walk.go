package sd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rstms/sdfat"
)

// WalkFunc is invoked once per directory entry with the entry's full
// reconstructed path and its depth below the walk root. During a
// recursive walk a subdirectory that cannot be opened is reported by
// a second invocation with err set; the walk then continues with the
// remaining siblings. Returning a non-nil error stops the walk.
type WalkFunc func(path string, info sdfat.Info, depth int, err error) error

// Walk enumerates the entries under a directory-bound File in native
// order, skipping entries whose name begins with a dot. With
// recursive set, subdirectories are descended depth-first; each child
// handle is closed before moving to the next sibling regardless of
// the outcome below it.
func (f *File) Walk(recursive bool, fn WalkFunc) error {
	if f.state != dirBound {
		panic("not a directory")
	}
	return f.walk(recursive, 0, fn)
}

func (f *File) walk(recursive bool, depth int, fn WalkFunc) error {
	for {
		info, res := f.dir.Read()
		f.res = res
		if !res.IsOK() {
			return Fatal(res)
		}
		name := info.DisplayName()
		if name == "" {
			return nil
		}
		if strings.HasPrefix(name, ".") {
			continue
		}
		childPath := joinPath(f.path, name)
		if err := fn(childPath, info, depth, nil); err != nil {
			return err
		}
		if !info.Attr.IsDir() || !recursive {
			continue
		}
		child := f.vol.Open(childPath, sdfat.FileRead)
		if !child.IsOpen() || !child.IsDirectory() {
			// the entry may have been replaced since the readdir step;
			// report and keep walking the siblings
			res := child.LastResult()
			if res.IsOK() {
				res = sdfat.ResultInvalidObject
			}
			child.Close()
			if err := fn(childPath, info, depth, Fatal(res)); err != nil {
				return err
			}
			continue
		}
		err := child.walk(recursive, depth+1, fn)
		child.Close()
		if err != nil {
			return err
		}
	}
}

type LsFlags uint8

const (
	// LsDate includes each file's modification date and time.
	LsDate LsFlags = 1 << iota
	// LsSize includes each file's size.
	LsSize
	// LsRecurse descends into subdirectories.
	LsRecurse
)

// Ls writes a human-readable listing of a directory-bound File to w.
// indent sets the number of leading spaces at the top level; each
// recursion level below it adds two more. A subdirectory that fails
// to open is reported on the sink and does not stop the listing.
func (f *File) Ls(w io.Writer, flags LsFlags, indent int) error {
	return f.Walk(flags&LsRecurse != 0, func(path string, info sdfat.Info, depth int, err error) error {
		pad := strings.Repeat(" ", indent+2*depth)
		name := info.DisplayName()
		if err != nil {
			fmt.Fprintf(w, "%serror opening dir: %s\n", pad, name)
			return nil
		}
		if info.Attr.IsDir() {
			fmt.Fprintf(w, "%s%s\n", pad, name)
			return nil
		}
		line := pad + name
		if flags&LsDate != 0 {
			line += " " + sdfat.FormatDate(info.Date) + " " + sdfat.FormatTime(info.Time)
		}
		if flags&LsSize != 0 {
			line += fmt.Sprintf(" %d", info.Size)
		}
		_, werr := fmt.Fprintln(w, line)
		return werr
	})
}
