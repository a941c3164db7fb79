// Package pict renders fixed-size bitmap images from geometric primitives
// and serializes them as PNG files with a self-contained container writer.
//
// # Overview
//
// pict is a Pure Go procedural bitmap generator. A Config describes a canvas
// size, a four-role color palette, and an ordered scene of draw operations;
// Render plays the scene onto an RGBA Canvas and the result can be encoded
// into a standards-compliant PNG byte buffer. The PNG container — chunk
// framing, scanline serialization, and the CRC-32 checksum — is implemented
// in this module rather than delegated to an image library.
//
// # Quick Start
//
//	import "github.com/gogpu/pict"
//
//	cfg := pict.DefaultConfig()
//	canvas, err := cfg.Render()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := canvas.SavePNG("badge.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Drawing Model
//
// Drawing is aliased and non-blending. Scene operations run in order and
// each later operation fully overwrites the pixels it touches (painter's
// algorithm). The visual result is purely a function of operation order and
// parameters, which makes output byte-for-byte reproducible.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Out-of-range pixel writes are silently discarded; this clipping policy is
// part of the drawing contract, not an error condition.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Config, Canvas, Color, Palette, scene ops
//   - png: the PNG container writer
//   - internal/crc: the CRC-32 checksum engine
package pict

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
