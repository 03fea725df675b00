// Package capture writes and reads monitor capture files. The compression is
// selected by the file extension.
package capture

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Writer wraps a compression writer and the underlying file
type Writer struct {
	writer io.WriteCloser
	file   *os.File
}

// Create creates the file at path, compressing with zstd for ".zst", gzip for
// ".gz" and xz for ".xz". Other extensions are written uncompressed.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	var compressor io.WriteCloser
	switch filepath.Ext(path) {
	case ".zst":
		compressor, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	case ".gz":
		compressor, err = gzip.NewWriterLevel(f, gzip.BestSpeed)
	case ".xz":
		compressor, err = xz.NewWriter(f)
	default:
		compressor = nopCloser{f}
	}
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Writer{writer: compressor, file: f}, nil
}

// Write writes data to the compressor
func (w *Writer) Write(p []byte) (int, error) {
	return w.writer.Write(p)
}

// Close flushes the compressor and closes the file
func (w *Writer) Close() error {
	err := w.writer.Close()
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Reader wraps a decompressing reader and the underlying file
type Reader struct {
	reader io.Reader
	close  func()
	file   *os.File
}

// Open opens a file written by Create.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r := &Reader{reader: f, close: func() {}, file: f}
	switch filepath.Ext(path) {
	case ".zst":
		var dec *zstd.Decoder
		dec, err = zstd.NewReader(f)
		if err == nil {
			r.reader, r.close = dec, dec.Close
		}
	case ".gz":
		var zr *gzip.Reader
		zr, err = gzip.NewReader(f)
		if err == nil {
			r.reader, r.close = zr, func() { zr.Close() }
		}
	case ".xz":
		r.reader, err = xz.NewReader(f)
	}
	if err != nil {
		f.Close()
		return nil, err
	}

	return r, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

// Close releases the decompressor and closes the file
func (r *Reader) Close() error {
	r.close()
	return r.file.Close()
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
