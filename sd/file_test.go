package sd

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rstms/sdfat"
)

func writeFile(t *testing.T, v *Volume, path string, data []byte) {
	f := v.Open(path, sdfat.FileWrite)
	require.True(t, f.IsOpen())
	n, err := f.Write(data)
	require.Nil(t, err)
	require.Equal(t, len(data), n)
	f.Flush()
	require.Nil(t, f.Close())
}

func TestWriteReadRoundTrip(t *testing.T) {
	v := testVolume(t)
	data := []byte("howdy howdy howdy")
	writeFile(t, v, "/howdy.txt", data)

	f := v.Open("/howdy.txt", sdfat.FileRead)
	require.True(t, f.IsOpen())
	require.False(t, f.IsDirectory())
	defer f.Close()

	readback, err := io.ReadAll(f)
	require.Nil(t, err)
	require.Equal(t, data, readback)
}

func TestReadByte(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/b.txt", []byte("hi"))

	f := v.Open("/b.txt", sdfat.FileRead)
	defer f.Close()
	require.Equal(t, int('h'), f.ReadByte())
	require.Equal(t, int('i'), f.ReadByte())
	require.Equal(t, -1, f.ReadByte())
}

func TestPeek(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/p.txt", []byte("hi"))

	f := v.Open("/p.txt", sdfat.FileRead)
	defer f.Close()

	require.Equal(t, int('h'), f.Peek())
	require.Equal(t, uint32(0), f.Position())
	require.Equal(t, int('h'), f.ReadByte())

	require.Equal(t, int('i'), f.Peek())
	require.Equal(t, uint32(1), f.Position())
	require.Equal(t, int('i'), f.ReadByte())

	// at end of file the position must stay put
	require.Equal(t, -1, f.Peek())
	require.Equal(t, uint32(2), f.Position())
}

func TestPeekEmptyFile(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/empty.txt", nil)

	f := v.Open("/empty.txt", sdfat.FileRead)
	defer f.Close()
	require.Equal(t, -1, f.Peek())
	require.Equal(t, uint32(0), f.Position())
}

func TestSeekBounds(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/s.txt", []byte("0123456789"))

	f := v.Open("/s.txt", sdfat.FileRead)
	defer f.Close()

	require.True(t, f.Seek(5))
	require.Equal(t, uint32(5), f.Position())

	require.False(t, f.Seek(11))
	require.Equal(t, uint32(5), f.Position())

	require.True(t, f.Seek(10))
	require.Equal(t, uint32(10), f.Position())

	require.True(t, f.Rewind())
	require.Equal(t, uint32(0), f.Position())
}

func TestAvailable(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/a.bin", make([]byte, 100))

	f := v.Open("/a.bin", sdfat.FileRead)
	defer f.Close()

	require.Equal(t, 100, f.Available())
	require.True(t, f.Seek(90))
	require.Equal(t, 10, f.Available())
	require.True(t, f.Seek(100))
	require.Equal(t, 0, f.Available())
}

func TestAvailableClamped(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/big.bin", make([]byte, 40000))

	f := v.Open("/big.bin", sdfat.FileRead)
	defer f.Close()
	require.Equal(t, 0x7FFF, f.Available())
}

func TestCloseIdempotent(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/c.txt", []byte("x"))

	f := v.Open("/c.txt", sdfat.FileRead)
	require.True(t, f.IsOpen())
	require.Nil(t, f.Close())
	require.False(t, f.IsOpen())
	require.Nil(t, f.Close())

	var zero File
	require.Nil(t, zero.Close())
	require.False(t, zero.IsOpen())
}

func TestZeroFileIsNotDirectory(t *testing.T) {
	var zero File
	require.False(t, zero.IsDirectory())
}

func TestUnboundQueries(t *testing.T) {
	var zero File
	require.Equal(t, uint32(0), zero.Size())
	require.Equal(t, uint32(0), zero.Position())
	require.Equal(t, 0, zero.Available())
	require.False(t, zero.Seek(0))
	require.Equal(t, -1, zero.ReadByte())
	require.Equal(t, -1, zero.Peek())
}

func TestName(t *testing.T) {
	v := testVolume(t)
	require.True(t, v.Mkdir("/a"))
	writeFile(t, v, "/a/c.txt", []byte("hi"))

	f := v.Open("/a/c.txt", sdfat.FileRead)
	defer f.Close()
	require.Equal(t, "c.txt", f.Name())
	require.Equal(t, "/a/c.txt", f.FullName())
}

func TestWriteLine(t *testing.T) {
	v := testVolume(t)

	f := v.Open("/log.txt", sdfat.FileWrite)
	require.True(t, f.IsOpen())
	n, err := f.WriteLine("hello")
	require.Nil(t, err)
	require.Equal(t, 7, n)
	require.Nil(t, f.WriteByte('!'))
	require.Nil(t, f.Close())

	f = v.Open("/log.txt", sdfat.FileRead)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.Nil(t, err)
	require.Equal(t, "hello\r\n!", string(data))
}

func TestReadLine(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/lines.txt", []byte("one\ntwo\nend"))

	f := v.Open("/lines.txt", sdfat.FileRead)
	defer f.Close()

	buf := make([]byte, 16)
	n, err := f.ReadLine(buf)
	require.Nil(t, err)
	require.Equal(t, "one\n", string(buf[:n]))

	n, err = f.ReadLine(buf)
	require.Nil(t, err)
	require.Equal(t, "two\n", string(buf[:n]))

	n, err = f.ReadLine(buf)
	require.Nil(t, err)
	require.Equal(t, "end", string(buf[:n]))

	_, err = f.ReadLine(buf)
	require.Equal(t, io.EOF, err)
}

func TestOpenNextFile(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/f1.txt", []byte("1"))
	writeFile(t, v, "/f2.txt", []byte("2"))
	require.True(t, v.Mkdir("/sub"))

	enumerate := func(root *File) []string {
		names := []string{}
		for {
			f := root.OpenNextFile(sdfat.FileRead)
			if !f.IsOpen() {
				require.Equal(t, sdfat.ResultNoMoreEntries, f.LastResult())
				break
			}
			names = append(names, f.Name())
			require.Nil(t, f.Close())
		}
		return names
	}

	root := v.OpenRoot()
	defer root.Close()

	first := enumerate(root)
	require.Equal(t, []string{"f1.txt", "f2.txt", "sub"}, first)

	root.RewindDirectory()
	require.True(t, root.IsOpen())
	require.Equal(t, first, enumerate(root))
}

func TestOpenNextFileOnFilePanics(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/f.txt", []byte("x"))

	f := v.Open("/f.txt", sdfat.FileRead)
	defer f.Close()
	require.Panics(t, func() {
		f.OpenNextFile(sdfat.FileRead)
	})
}

func TestRewindDirectoryOnFile(t *testing.T) {
	v := testVolume(t)
	writeFile(t, v, "/f.txt", []byte("x"))

	f := v.Open("/f.txt", sdfat.FileRead)
	defer f.Close()
	f.RewindDirectory()
	require.True(t, f.IsOpen())
	require.False(t, f.IsDirectory())
}
