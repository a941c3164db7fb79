// Package png writes PNG files from raw RGBA pixel buffers.
//
// The container is assembled byte-for-byte in this package: the fixed file
// signature, length-prefixed chunks (IHDR, IDAT, IEND), and the per-chunk
// CRC-32 computed by internal/crc. Only the deflate stream inside IDAT is
// delegated, to compress/zlib. Output is always 8-bit truecolor with alpha,
// unfiltered, non-interlaced.
package png

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/pict/internal/crc"
)

// Encoding errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("png: invalid dimensions")

	// ErrBufferSize is returned when the pixel buffer length is not
	// width*height*4.
	ErrBufferSize = errors.New("png: pixel buffer size mismatch")
)

// Signature is the fixed 8-byte PNG file signature.
const Signature = "\x89PNG\r\n\x1a\n"

// IHDR configuration for every image this package writes.
const (
	bitDepth     = 8 // bits per channel
	colorType    = 6 // truecolor with alpha
	compression  = 0 // deflate
	filterMethod = 0 // adaptive (every scanline uses filter 0, "none")
	interlace    = 0 // no interlacing
)

// Encode writes pix, a width*height*4 RGBA buffer in row-major order, to w
// as a complete PNG file. The scanline stream is compressed at the maximum
// deflate effort; compression and write failures are propagated wrapped,
// with no partial-output recovery.
func Encode(w io.Writer, width, height int, pix []byte) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if len(pix) != width*height*4 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(pix), width*height*4)
	}

	if _, err := io.WriteString(w, Signature); err != nil {
		return fmt.Errorf("png: write signature: %w", err)
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = bitDepth
	ihdr[9] = colorType
	ihdr[10] = compression
	ihdr[11] = filterMethod
	ihdr[12] = interlace
	if err := writeChunk(w, "IHDR", ihdr[:]); err != nil {
		return err
	}

	idat, err := deflateScanlines(width, height, pix)
	if err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", idat); err != nil {
		return err
	}

	return writeChunk(w, "IEND", nil)
}

// EncodeBytes is Encode into a fresh byte buffer.
func EncodeBytes(width, height int, pix []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, width, height, pix); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// deflateScanlines serializes the pixel buffer as height scanlines, each a
// single "no filter" selector byte followed by width*4 raw channel bytes,
// and compresses the stream with zlib at best-compression effort.
func deflateScanlines(width, height int, pix []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("png: init compressor: %w", err)
	}

	stride := width * 4
	for y := 0; y < height; y++ {
		if _, err := zw.Write([]byte{0}); err != nil {
			return nil, fmt.Errorf("png: compress scanline %d: %w", y, err)
		}
		row := pix[y*stride : (y+1)*stride]
		if _, err := zw.Write(row); err != nil {
			return nil, fmt.Errorf("png: compress scanline %d: %w", y, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("png: flush compressor: %w", err)
	}
	return buf.Bytes(), nil
}

// writeChunk frames one chunk: big-endian payload length, 4-byte ASCII type,
// payload, and a big-endian CRC-32 over type and payload. The length field
// is not covered by the checksum.
func writeChunk(w io.Writer, typ string, payload []byte) error {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(payload)))
	copy(hdr[4:8], typ)
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("png: write %s header: %w", typ, err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("png: write %s payload: %w", typ, err)
	}

	sum := crc.Update(crc.Update(0, hdr[4:8]), payload)
	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], sum)
	if _, err := w.Write(tail[:]); err != nil {
		return fmt.Errorf("png: write %s checksum: %w", typ, err)
	}
	return nil
}
