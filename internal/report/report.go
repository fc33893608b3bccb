// Package report renders scan records for the CLI: tab-separated text or
// JSON lines, to stdout or to a file, with transparent zstd compression for
// *.zst / *.zstd targets.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"logsift/internal/scan"
)

// Format selects how records are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// jsonRecord is the wire shape of one record in JSON lines output.
type jsonRecord struct {
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	Mode       string    `json:"mode"`
	ModTime    time.Time `json:"mod_time"`
	CreateTime time.Time `json:"create_time"`
	RefTime    time.Time `json:"ref_time"`
	AgeDays    float64   `json:"age_days"`
}

// Writer renders records one at a time, in emission order.
type Writer struct {
	w      io.Writer
	format Format
	enc    *json.Encoder
}

func NewWriter(w io.Writer, format Format) *Writer {
	rw := &Writer{w: w, format: format}
	if format == FormatJSON {
		rw.enc = json.NewEncoder(w)
	}
	return rw
}

func (w *Writer) Write(rec scan.FileRecord) error {
	if w.format == FormatJSON {
		return w.enc.Encode(jsonRecord{
			Path:       rec.Path,
			Size:       rec.Size,
			Mode:       rec.Mode.String(),
			ModTime:    rec.ModTime,
			CreateTime: rec.CreateTime,
			RefTime:    rec.RefTime,
			AgeDays:    rec.AgeDays,
		})
	}
	_, err := fmt.Fprintf(w.w, "%.1f\t%d\t%s\t%s\t%s\n",
		rec.AgeDays, rec.Size,
		rec.ModTime.Format(time.RFC3339), rec.CreateTime.Format(time.RFC3339),
		rec.Path)
	return err
}

// CreateFile opens path for writing, chaining a buffered zstd encoder in
// front of it when the name carries a .zst or .zstd suffix.
func CreateFile(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create report file %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".zst") && !strings.HasSuffix(path, ".zstd") {
		return f, nil
	}

	bufioWriter := bufio.NewWriterSize(f, 64*1024)
	zstdWriter, err := zstd.NewWriter(
		bufioWriter,
		zstd.WithEncoderCRC(true),
		zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		f.Close()
		return nil, err
	}
	return &compressedReportWriter{zstd: zstdWriter, buf: bufioWriter, file: f}, nil
}

// compressedReportWriter drains the encoder chain in order on Close: zstd
// frame first, then the buffer, then the file.
type compressedReportWriter struct {
	zstd *zstd.Encoder
	buf  *bufio.Writer
	file *os.File
}

func (w *compressedReportWriter) Write(p []byte) (int, error) {
	return w.zstd.Write(p)
}

func (w *compressedReportWriter) Close() error {
	var err error
	if e := w.zstd.Close(); e != nil {
		err = e
	}
	if e := w.buf.Flush(); e != nil {
		err = e
	}
	if e := w.file.Close(); e != nil {
		err = e
	}
	return err
}

// OpenFile opens a report written by CreateFile, transparently decoding
// zstd-compressed files.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report file %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".zst") && !strings.HasSuffix(path, ".zstd") {
		return f, nil
	}

	zstdReader, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &compressedReportReader{Reader: bufio.NewReaderSize(zstdReader, 64*1024), zstd: zstdReader, file: f}, nil
}

type compressedReportReader struct {
	io.Reader
	zstd *zstd.Decoder
	file *os.File
}

func (r *compressedReportReader) Close() error {
	r.zstd.Close()
	return r.file.Close()
}
