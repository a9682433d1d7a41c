package vendors

import (
	"github.com/skip2/go-qrcode"
)

// Размеры QR-кода в пикселях
const (
	DefaultQRSize = 256
	MinQRSize     = 128
	MaxQRSize     = 1024
)

// DefaultQRGenerator кодирует ссылку в PNG со средним уровнем коррекции
type DefaultQRGenerator struct{}

// Generate возвращает PNG размером size x size
func (DefaultQRGenerator) Generate(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
