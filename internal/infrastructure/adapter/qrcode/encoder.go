// Package qrcode encodes portfolio links as QR code images.
package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"

	"github.com/guidy-app/joblight/internal/domain/port/render"
)

// Encoder renders PNG QR codes with medium error correction
type Encoder struct {
	level qr.RecoveryLevel
}

// New creates an Encoder
func New() render.QREncoder {
	return &Encoder{level: qr.Medium}
}

// PNG encodes content as a size x size PNG
func (e *Encoder) PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr content is empty")
	}
	png, err := qr.Encode(content, e.level, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
