package qr

import (
	"encoding/base64"
	"encoding/json"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// DataURL encodes the payload as JSON inside a PNG QR code and returns it as
// a base64 data URL, ready to drop into an <img> tag.
func DataURL(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, imageSize)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
