package services

import (
	"bytes"
	"encoding/base64"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// DefaultBranding is the letterhead used when no branding record exists yet.
func DefaultBranding() *BrandingConfig {
	return &BrandingConfig{
		BrandColor: "#1f3a5f",
		HeaderText: "RNS Fabricators & Engineers Pvt. Ltd.",
		FooterText: "Plot 14, MIDC Industrial Area, Hingna, Nagpur - 440016",
		Registry: Registry{
			Name:      "RNS Fabricators & Engineers Pvt. Ltd.",
			CIN:       "U28112MH2011PTC219099",
			Email:     "projects@rnsfabricators.in",
			Website:   "www.rnsfabricators.in",
			Addresses: []string{"Regd. Office: Civil Lines, Nagpur - 440001", "Works: MIDC Hingna, Nagpur - 440016"},
			Phones:    []string{"+91 712 2556677", "+91 98220 11223"},
			GSTIN:     "27AAICR4785D1ZX",
		},
	}
}

// detectImageType sniffs the image container format and returns the gofpdf
// type string, or "" for anything unsupported.
func detectImageType(b []byte) string {
	_, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return ""
	}
	switch format {
	case "png":
		return "PNG"
	case "jpeg":
		return "JPG"
	case "gif":
		return "GIF"
	default:
		return ""
	}
}

// DecodeMockups resolves stored design-mockup references (base64 image
// payloads) to raw bytes, keyed by the reference itself. References that do
// not decode to a supported image are dropped so the mockup page is simply
// skipped.
func DecodeMockups(refs []string) map[string][]byte {
	out := make(map[string][]byte, len(refs))
	for _, ref := range refs {
		raw, err := base64.StdEncoding.DecodeString(ref)
		if err != nil || detectImageType(raw) == "" {
			continue
		}
		out[ref] = raw
	}
	return out
}

// ResolveBranding decode-checks every configured branding image and drops
// the ones that fail, so the layout engine falls back to synthesized text
// bands instead of aborting the render. A nil input yields the defaults.
func ResolveBranding(b *BrandingConfig) *BrandingConfig {
	if b == nil {
		return DefaultBranding()
	}

	resolved := *b
	if resolved.Logo != nil && detectImageType(resolved.Logo) == "" {
		resolved.Logo = nil
	}
	if resolved.HeaderImage != nil && detectImageType(resolved.HeaderImage) == "" {
		resolved.HeaderImage = nil
	}
	if resolved.FooterImage != nil && detectImageType(resolved.FooterImage) == "" {
		resolved.FooterImage = nil
	}
	if resolved.StampSignature != nil && detectImageType(resolved.StampSignature) == "" {
		resolved.StampSignature = nil
	}
	return &resolved
}
