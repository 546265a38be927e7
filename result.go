package sdfat

import "strconv"

// Result is the closed set of outcome codes reported by a Driver,
// mirroring the FatFs FRESULT enumeration.
type Result uint8

const (
	OK                     Result = iota // succeeded
	ResultDiskErr                        // hard error in the low-level disk layer
	ResultIntErr                         // assertion failed
	ResultNotReady                       // the physical drive cannot work
	ResultNoFile                         // could not find the file
	ResultNoPath                         // could not find the path
	ResultInvalidName                    // the path name format is invalid
	ResultDenied                         // access denied or directory full
	ResultExist                          // an entity with that name already exists
	ResultInvalidObject                  // the file/directory object is invalid
	ResultWriteProtected                 // the drive is write protected
	ResultNotEnabled                     // the volume has no work area
	ResultNoFilesystem                   // no valid FAT volume
	ResultTimeout                        // could not get access to the volume in time
	ResultLocked                         // rejected by the file sharing policy
	ResultNotEnoughCore                  // working buffer could not be allocated
	ResultTooManyOpenFiles               // too many open objects
	ResultInvalidParameter               // given parameter is invalid
	ResultNoMoreEntries                  // directory iteration exhausted
)

var resultNames = map[Result]string{
	OK:                     "ok",
	ResultDiskErr:          "disk error",
	ResultIntErr:           "internal error",
	ResultNotReady:         "drive not ready",
	ResultNoFile:           "no such file",
	ResultNoPath:           "no such path",
	ResultInvalidName:      "invalid name",
	ResultDenied:           "access denied",
	ResultExist:            "already exists",
	ResultInvalidObject:    "invalid object",
	ResultWriteProtected:   "write protected",
	ResultNotEnabled:       "volume not enabled",
	ResultNoFilesystem:     "no filesystem",
	ResultTimeout:          "timeout",
	ResultLocked:           "locked",
	ResultNotEnoughCore:    "out of memory",
	ResultTooManyOpenFiles: "too many open files",
	ResultInvalidParameter: "invalid parameter",
	ResultNoMoreEntries:    "no more entries",
}

func (r Result) String() string {
	name, ok := resultNames[r]
	if !ok {
		return "result " + strconv.Itoa(int(r))
	}
	return name
}

func (r Result) Error() string {
	return "sdfat: " + r.String()
}

func (r Result) IsOK() bool {
	return r == OK
}

// Err returns the Result as an error, or nil for OK.
func (r Result) Err() error {
	if r == OK {
		return nil
	}
	return r
}
