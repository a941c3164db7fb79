package pict

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/pict/png"
)

// EncodePNG writes the canvas to w as a complete PNG file using the
// module's own container writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.width, c.height, c.data)
}

// PNG returns the canvas serialized as a PNG byte buffer.
func (c *Canvas) PNG() ([]byte, error) {
	buf, err := png.EncodeBytes(c.width, c.height, c.data)
	if err != nil {
		return nil, err
	}
	Logger().Debug("canvas encoded",
		"width", c.width, "height", c.height, "bytes", len(buf))
	return buf, nil
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pict: create file: %w", err)
	}

	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
