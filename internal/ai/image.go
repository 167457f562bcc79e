package ai

import (
	"encoding/base64"
)

// dataURI wraps an already base64-encoded payload.
func dataURI(mime, b64 string) string {
	return "data:" + mime + ";base64," + b64
}

func encodeDataURI(mime string, data []byte) string {
	return dataURI(mime, base64.StdEncoding.EncodeToString(data))
}
