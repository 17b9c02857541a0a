package export

import (
	"fmt"
	"image/color"
	"image/png"
	"io"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/jmylchreest/palettecraft/internal/colour"
)

// DefaultQRSize is the width and height of a QR code image in pixels.
const DefaultQRSize = 256

// QROptions controls QR code rendering. Empty colours default to black
// modules on white and a zero size uses DefaultQRSize.
type QROptions struct {
	Size       int
	Foreground string
	Background string
}

// StyledQROptions colours the code with the first two palette colours, the
// first for the modules and the second for the background.
func StyledQROptions(colors []string) QROptions {
	opts := QROptions{}
	if len(colors) > 0 {
		opts.Foreground = colors[0]
	}
	if len(colors) > 1 {
		opts.Background = colors[1]
	}
	return opts
}

// QRCode encodes content as a PNG QR code.
func QRCode(w io.Writer, content string, opts QROptions) error {
	fg, err := qrColour(opts.Foreground, colour.Black)
	if err != nil {
		return err
	}
	bg, err := qrColour(opts.Background, colour.White)
	if err != nil {
		return err
	}
	size := opts.Size
	if size <= 0 {
		size = DefaultQRSize
	}

	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg

	if err := png.Encode(w, q.Image(size)); err != nil {
		return fmt.Errorf("failed to encode QR code: %w", err)
	}
	return nil
}

func qrColour(hex, fallback string) (color.Color, error) {
	if hex == "" {
		hex = fallback
	}
	if _, err := colour.NormalizeHex(hex); err != nil {
		return nil, err
	}
	rgb := colour.ParseHex(hex)
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xFF}, nil
}
