package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	stdpng "image/png"
	"testing"
)

// solidPix builds a width*height RGBA buffer with every pixel set to the
// given channels.
func solidPix(width, height int, r, g, b, a uint8) []byte {
	pix := make([]byte, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
	return pix
}

// TestEncodeInvalidInput verifies eager rejection of malformed arguments.
func TestEncodeInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		pix    []byte
		want   error
	}{
		{"zero width", 0, 4, nil, ErrInvalidDimensions},
		{"negative height", 4, -1, nil, ErrInvalidDimensions},
		{"short buffer", 4, 4, make([]byte, 10), ErrBufferSize},
		{"long buffer", 2, 2, make([]byte, 17), ErrBufferSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeBytes(tt.width, tt.height, tt.pix)
			if !errors.Is(err, tt.want) {
				t.Errorf("EncodeBytes error = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestEncodeSignature verifies the fixed 8-byte file signature.
func TestEncodeSignature(t *testing.T) {
	buf, err := EncodeBytes(1, 1, make([]byte, 4))
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}
	want := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	if !bytes.Equal(buf[:8], want) {
		t.Errorf("signature = % x, want % x", buf[:8], want)
	}
}

// TestEncodeIHDRLayout verifies the header chunk byte-for-byte: length,
// type, big-endian dimensions, and the five fixed configuration bytes.
func TestEncodeIHDRLayout(t *testing.T) {
	buf, err := EncodeBytes(128, 64, make([]byte, 128*64*4))
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}

	chunk := buf[8:]
	if got := binary.BigEndian.Uint32(chunk[0:4]); got != 13 {
		t.Errorf("IHDR length = %d, want 13", got)
	}
	if got := string(chunk[4:8]); got != "IHDR" {
		t.Errorf("first chunk type = %q, want IHDR", got)
	}
	payload := chunk[8:21]
	if got := binary.BigEndian.Uint32(payload[0:4]); got != 128 {
		t.Errorf("width = %d, want 128", got)
	}
	if got := binary.BigEndian.Uint32(payload[4:8]); got != 64 {
		t.Errorf("height = %d, want 64", got)
	}
	// bit depth 8, truecolor+alpha, deflate, filter 0, no interlace
	wantCfg := []byte{8, 6, 0, 0, 0}
	if !bytes.Equal(payload[8:13], wantCfg) {
		t.Errorf("IHDR config bytes = % x, want % x", payload[8:13], wantCfg)
	}
}

// TestEncodeIENDChunk verifies the output ends with the canonical
// empty-payload end marker, including its fixed checksum.
func TestEncodeIENDChunk(t *testing.T) {
	buf, err := EncodeBytes(1, 1, make([]byte, 4))
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}
	want := []byte{
		0x00, 0x00, 0x00, 0x00,
		'I', 'E', 'N', 'D',
		0xAE, 0x42, 0x60, 0x82,
	}
	tail := buf[len(buf)-12:]
	if !bytes.Equal(tail, want) {
		t.Errorf("IEND chunk = % x, want % x", tail, want)
	}
}

// TestEncodeRoundTripSolid is the reference scenario: a 4×4 canvas with
// every pixel (10,20,30,255) must decode bit-exact with the standard
// library decoder.
func TestEncodeRoundTripSolid(t *testing.T) {
	buf, err := EncodeBytes(4, 4, solidPix(4, 4, 10, 20, 30, 255))
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}

	img, err := stdpng.Decode(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("stdlib decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("decoded bounds = %v, want 4x4", img.Bounds())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a>>8 != 255 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d,%d), want (10,20,30,255)",
					x, y, r>>8, g>>8, b>>8, a>>8)
			}
		}
	}
}

// TestEncodeRoundTripPattern round-trips a non-uniform buffer, including
// transparent and semi-transparent pixels, comparing raw NRGBA bytes.
func TestEncodeRoundTripPattern(t *testing.T) {
	const w, h = 9, 5
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = byte(i*7 + 3)
	}

	buf, err := EncodeBytes(w, h, pix)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}

	img, err := stdpng.Decode(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("stdlib decode: %v", err)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("decoded type = %T, want *image.NRGBA", img)
	}
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		want := pix[y*w*4 : (y+1)*w*4]
		if !bytes.Equal(row, want) {
			t.Fatalf("row %d mismatch:\n got % x\nwant % x", y, row, want)
		}
	}
}

// errWriter fails after n bytes.
type errWriter struct {
	n int
}

var errSink = errors.New("sink full")

func (w *errWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, errSink
	}
	w.n -= len(p)
	return len(p), nil
}

// TestEncodeWriteFailure verifies that writer errors propagate wrapped.
func TestEncodeWriteFailure(t *testing.T) {
	// Fail at various points: signature, IHDR, IDAT.
	for _, limit := range []int{0, 10, 40} {
		err := Encode(&errWriter{n: limit}, 4, 4, solidPix(4, 4, 1, 2, 3, 4))
		if !errors.Is(err, errSink) {
			t.Errorf("limit %d: Encode error = %v, want wrapped sink error", limit, err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	pix := make([]byte, 128*128*4)
	for i := range pix {
		pix[i] = byte(i % 251)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := EncodeBytes(128, 128, pix); err != nil {
			b.Fatal(err)
		}
	}
}
