package sdfat

import (
	"fmt"
	"time"
)

// Info describes one directory entry as reported by a Driver. It is
// transient: produced by a single readdir or stat step and consumed
// immediately, never stored.
type Info struct {
	Name     string // native short (8.3) form
	LongName string // long filename when the driver decodes one
	Size     uint32
	Attr     Attr
	Date     uint16 // raw FAT bit-packed date field
	Time     uint16 // raw FAT bit-packed time field
}

// DisplayName returns the long filename when present, else the short name.
func (i Info) DisplayName() string {
	if i.LongName != "" {
		return i.LongName
	}
	return i.Name
}

// FAT date fields pack year/month/day as y:7 m:4 d:5 with the year
// offset from 1980; time fields pack h:5 m:6 s:5 with two-second
// resolution.

func Year(date uint16) int {
	return 1980 + int(date>>9)
}

func Month(date uint16) int {
	return int(date >> 5 & 0x0F)
}

func Day(date uint16) int {
	return int(date & 0x1F)
}

func Hour(tim uint16) int {
	return int(tim >> 11)
}

func Minute(tim uint16) int {
	return int(tim >> 5 & 0x3F)
}

func Second(tim uint16) int {
	return int(tim&0x1F) * 2
}

// FormatDate renders a FAT date field as yyyy-mm-dd.
func FormatDate(date uint16) string {
	return fmt.Sprintf("%04d-%02d-%02d", Year(date), Month(date), Day(date))
}

// FormatTime renders a FAT time field as hh:mm:ss.
func FormatTime(tim uint16) string {
	return fmt.Sprintf("%02d:%02d:%02d", Hour(tim), Minute(tim), Second(tim))
}

// DateTime combines the two packed fields into a time.Time in the
// local zone.
func DateTime(date, tim uint16) time.Time {
	return time.Date(Year(date), time.Month(Month(date)), Day(date),
		Hour(tim), Minute(tim), Second(tim), 0, time.Local)
}

// PackDate and PackTime produce the packed fields from a time.Time;
// drivers use them when synthesizing Info from another source of
// timestamps. Years before 1980 clamp to the FAT epoch.
func PackDate(t time.Time) uint16 {
	year := t.Year() - 1980
	if year < 0 {
		year = 0
	}
	return uint16(year)<<9 | uint16(t.Month())<<5 | uint16(t.Day())
}

func PackTime(t time.Time) uint16 {
	return uint16(t.Hour())<<11 | uint16(t.Minute())<<5 | uint16(t.Second()/2)
}
