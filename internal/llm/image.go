package llm

import "encoding/base64"

// DefaultImageMIME is assumed when a request carries image bytes without a type.
// The document service renders pages as PNG.
const DefaultImageMIME = "image/png"

// ImageMIMEOrDefault resolves the request's image MIME type.
func (r ExtractRequest) ImageMIMEOrDefault() string {
	if r.ImageMIME != "" {
		return r.ImageMIME
	}
	return DefaultImageMIME
}

// ImageDataURL encodes the request's image as a data URL for providers that
// take image payloads inline (OpenAI image_url parts).
func (r ExtractRequest) ImageDataURL() string {
	return "data:" + r.ImageMIMEOrDefault() + ";base64," + base64.StdEncoding.EncodeToString(r.Image)
}

// ImageBase64 encodes the request's image for providers that take a bare
// base64 payload (Anthropic image blocks).
func (r ExtractRequest) ImageBase64() string {
	return base64.StdEncoding.EncodeToString(r.Image)
}
