// Package qr генерирует QR-коды для коротких ссылок
// в виде data URI, пригодного для встраивания в страницу.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// Encoder кодирует URL в изображение QR-кода.
type Encoder interface {
	Encode(url string) (string, error)
}

// PNGEncoder реализует Encoder, возвращая PNG-изображение
// как data URI вида data:image/png;base64,...
type PNGEncoder struct{}

func NewPNGEncoder() *PNGEncoder {
	return &PNGEncoder{}
}

func (e *PNGEncoder) Encode(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
