package sdfat

// Mode carries the open intent passed through to the driver,
// mirroring the FatFs FA_* access flags.
type Mode uint8

const (
	ModeOpenExisting Mode = 0x00
	ModeRead         Mode = 0x01
	ModeWrite        Mode = 0x02
	ModeCreateNew    Mode = 0x04
	ModeCreateAlways Mode = 0x08
	ModeOpenAlways   Mode = 0x10
	ModeOpenAppend   Mode = 0x30
)

// Conventional caller-facing modes.
const (
	FileRead  = ModeRead
	FileWrite = ModeRead | ModeWrite
)
