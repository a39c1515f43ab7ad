package handlers

import (
	"encoding/base64"
	"net/http"

	"rnsdocs/services"
	"rnsdocs/templates"
)

// planPreviewData maps a page plan to the preview view model. Image bytes
// become data URIs; mockup references are resolved through the same map the
// PDF renderer uses, so both surfaces show identical pages.
func planPreviewData(plan *services.PagePlan, mockups map[string][]byte) []templates.PreviewPageData {
	pages := make([]templates.PreviewPageData, 0, len(plan.Pages))
	for _, page := range plan.Pages {
		var ops []templates.PreviewOp
		for _, op := range page.Ops {
			ops = append(ops, previewOp(op, mockups))
		}
		pages = append(pages, templates.PreviewPageData{Ops: ops})
	}
	return pages
}

func previewOp(op services.DrawOp, mockups map[string][]byte) templates.PreviewOp {
	out := templates.PreviewOp{
		X: op.X, Y: op.Y, W: op.W, H: op.H,
	}

	switch op.Kind {
	case services.OpText:
		out.Kind = "text"
		out.Text = op.Text
		out.Size = op.Style.Size
		out.Bold = op.Style.Bold
		out.Italic = op.Style.Italic
		out.Align = op.Style.Align
		out.Fill = op.Style.Fill
	case services.OpRect:
		out.Kind = "rect"
		out.Fill = op.Style.Fill
	case services.OpLine:
		out.Kind = "line"
	case services.OpImage:
		out.Kind = "image"
		img := op.Image
		if img == nil && op.Text != "" {
			img = mockups[op.Text]
		}
		out.ImageSrc = imageDataURI(img)
	}
	return out
}

func imageDataURI(img []byte) string {
	if len(img) == 0 {
		return ""
	}
	return "data:" + http.DetectContentType(img) + ";base64," + base64.StdEncoding.EncodeToString(img)
}
