package service

import (
	"net/url"
	"strconv"
)

const (
	DefaultQRServiceURL = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultQRSize       = 200
)

// QRGenerator turns a menu URL into the URL of a rendered QR image. Rendering
// itself happens in the external image service.
type QRGenerator interface {
	ImageURL(menuURL string) string
	RevisionURL(menuURL string, revision int64) string
}

type TemplateQRGenerator struct {
	BaseURL string
	Size    int
}

func NewTemplateQRGenerator(baseURL string, size int) TemplateQRGenerator {
	if baseURL == "" {
		baseURL = DefaultQRServiceURL
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	return TemplateQRGenerator{BaseURL: baseURL, Size: size}
}

func (g TemplateQRGenerator) ImageURL(menuURL string) string {
	size := strconv.Itoa(g.Size)
	return g.BaseURL + "?size=" + size + "x" + size + "&data=" + url.QueryEscape(menuURL)
}

// RevisionURL is ImageURL plus a revision parameter, so every regeneration
// yields a distinct URL for the same menu.
func (g TemplateQRGenerator) RevisionURL(menuURL string, revision int64) string {
	return g.ImageURL(menuURL) + "&rev=" + strconv.FormatInt(revision, 10)
}
