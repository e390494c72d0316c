package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// qrTilePadding is the margin around the code inside its card.
const qrTilePadding = 12

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int, fg, bg color.Color) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qrCode.DisableBorder = true
	qrCode.ForegroundColor = fg
	qrCode.BackgroundColor = bg

	return qrCode.Image(sizePx), nil
}

// QRCodeTile renders payload as a dark-on-light code centered on a rounded card of
// sizePx x sizePx.
func QRCodeTile(payload string, sizePx int, cornerRadius float64) (*image.NRGBA, error) {
	if sizePx <= 2*qrTilePadding {
		return nil, errors.New("qr tile too small")
	}
	card := color.NRGBA{R: 0xF4, G: 0xF6, B: 0xFC, A: 0xFF}
	code, err := GenerateQRCodeImage(payload, sizePx-2*qrTilePadding, color.NRGBA{R: 8, G: 12, B: 22, A: 0xFF}, card)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, errors.New("empty qr payload")
	}

	dc := gg.NewContext(sizePx, sizePx)
	dc.DrawRoundedRectangle(0, 0, float64(sizePx), float64(sizePx), cornerRadius)
	dc.SetColor(card)
	dc.Fill()
	return imaging.PasteCenter(imaging.Clone(dc.Image()), code), nil
}
