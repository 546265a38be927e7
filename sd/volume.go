package sd

import (
	"io"
	"log/slog"

	"github.com/rstms/sdfat"
)

// Volume is the single entry point to a card. Construct one per card
// with New and keep it for the life of the process; it owns the card
// and the mounted filesystem state exclusively. Volume is not safe
// for concurrent use.
type Volume struct {
	card    sdfat.Card
	drv     sdfat.Driver
	log     *slog.Logger
	mounted bool
}

type Option func(*Volume)

// WithLogger enables debug logging of native driver calls.
func WithLogger(log *slog.Logger) Option {
	return func(v *Volume) {
		v.log = log
	}
}

func New(card sdfat.Card, drv sdfat.Driver, opts ...Option) *Volume {
	v := &Volume{
		card: card,
		drv:  drv,
		log:  noopLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// Begin initializes the card hardware, then mounts the filesystem.
// It returns false when either step fails; no partial-success state
// is exposed.
func (v *Volume) Begin(detect sdfat.DetectPin) bool {
	if !v.card.Init(detect) {
		v.log.Debug("card init failed")
		return false
	}
	if res := v.drv.Mount(); !res.IsOK() {
		v.log.Debug("mount failed", "result", res.String())
		return false
	}
	v.mounted = true
	return true
}

// Exists reports whether a file or directory is present at path. It
// does not distinguish between the two.
func (v *Volume) Exists(path string) bool {
	_, res := v.drv.Stat(path)
	return res.IsOK()
}

// Mkdir creates a directory. Creating one that already exists
// succeeds.
func (v *Volume) Mkdir(path string) bool {
	res := v.drv.Mkdir(path)
	if res != sdfat.OK && res != sdfat.ResultExist {
		v.log.Debug("mkdir failed", "path", path, "result", res.String())
		return false
	}
	return true
}

// Rmdir removes an empty directory.
func (v *Volume) Rmdir(path string) bool {
	return v.unlink(path)
}

// Remove removes a file.
func (v *Volume) Remove(path string) bool {
	return v.unlink(path)
}

func (v *Volume) unlink(path string) bool {
	res := v.drv.Unlink(path)
	if !res.IsOK() {
		v.log.Debug("unlink failed", "path", path, "result", res.String())
		return false
	}
	return true
}

// Open resolves path to a file or directory handle. A path that opens
// as neither yields an invalid File (IsOpen reports false) carrying
// the last native result. Opening with write intent creates the file
// when nothing exists at path yet.
func (v *Volume) Open(path string, mode sdfat.Mode) *File {
	f := &File{vol: v}
	if path == "" {
		f.res = sdfat.ResultInvalidName
		return f
	}
	f.path = path
	if mode&sdfat.ModeWrite != 0 && !v.Exists(path) {
		mode |= sdfat.ModeCreateAlways
	}
	fil, res := v.drv.Open(path, mode)
	f.res = res
	if res.IsOK() {
		f.state = fileBound
		f.fil = fil
		v.log.Debug("open file", "path", path)
		return f
	}
	dir, res := v.drv.OpenDir(path)
	f.res = res
	if res.IsOK() {
		f.state = dirBound
		f.dir = dir
		v.log.Debug("open dir", "path", path)
		return f
	}
	// total failure: release the path so no half-bound state survives
	f.path = ""
	v.log.Debug("open failed", "path", path, "result", res.String())
	return f
}

// OpenRoot opens the filesystem root as a directory handle.
func (v *Volume) OpenRoot() *File {
	return v.Open(v.drv.RootPath(), sdfat.FileRead)
}
