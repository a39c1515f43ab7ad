package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PreviewOp is one positioned drawing instruction on a preview page. All
// coordinates and dimensions are in millimetres; Size is in points.
type PreviewOp struct {
	Kind     string // "text", "rect", "line", "image"
	X        float64
	Y        float64
	W        float64
	H        float64
	Text     string
	Size     float64
	Bold     bool
	Italic   bool
	Align    string // "L", "C", "R"
	Fill     bool
	ImageSrc string // data URI
}

// PreviewPageData is one A4 page of the document preview.
type PreviewPageData struct {
	Ops []PreviewOp
}

// PreviewData feeds the paginated document preview. The pages carry the same
// layout the PDF renderer draws, so page numbers and breaks match exactly.
type PreviewData struct {
	Title        string
	BackHref     string
	DownloadHref string
	Pages        []PreviewPageData
}

func PreviewPage(data PreviewData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Preview "+data.Title, header, sidebar, PreviewContent(data))
}

func PreviewContent(data PreviewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="flex items-center justify-between mb-4 print:hidden">
<h1 class="text-xl font-bold font-mono">%s</h1>
<div class="flex gap-2">
<a href="%s" class="btn btn-sm">Back</a>
<button onclick="window.print()" class="btn btn-sm">Print</button>
<a href="%s" class="btn btn-primary btn-sm">Download PDF</a>
</div>
</div>`, esc(data.Title), esc(data.BackHref), esc(data.DownloadHref))

		io.WriteString(w, `<style>
.doc-page { position: relative; width: 210mm; height: 297mm; background: #fff;
  box-shadow: 0 1px 4px rgba(0,0,0,.2); margin: 0 auto 8mm; overflow: hidden;
  font-family: Helvetica, Arial, sans-serif; color: #212529; }
.doc-page * { position: absolute; box-sizing: border-box; }
@media print {
  .doc-page { box-shadow: none; margin: 0; page-break-after: always; }
  @page { size: A4; margin: 0; }
}
</style><div class="doc-preview">`)

		for i, page := range data.Pages {
			fmt.Fprintf(w, `<div class="doc-page" data-page="%d">`, i+1)
			for _, op := range page.Ops {
				renderPreviewOp(w, op)
			}
			io.WriteString(w, `</div>`)
		}

		io.WriteString(w, `</div>`)
		return nil
	})
}

func renderPreviewOp(w io.Writer, op PreviewOp) {
	switch op.Kind {
	case "text":
		weight := "400"
		if op.Bold {
			weight = "700"
		}
		style := "normal"
		if op.Italic {
			style = "italic"
		}
		align := "left"
		switch op.Align {
		case "C":
			align = "center"
		case "R":
			align = "right"
		}
		color := "#212529"
		if op.Fill {
			color = "#ffffff"
		}
		fmt.Fprintf(w,
			`<div style="left:%.2fmm;top:%.2fmm;width:%.2fmm;font-size:%.1fpt;font-weight:%s;font-style:%s;text-align:%s;color:%s;line-height:1.45;">%s</div>`,
			op.X, op.Y, op.W, op.Size, weight, style, align, color, esc(op.Text))
	case "rect":
		if op.Fill {
			fmt.Fprintf(w, `<div style="left:%.2fmm;top:%.2fmm;width:%.2fmm;height:%.2fmm;background:#212529;"></div>`,
				op.X, op.Y, op.W, op.H)
		} else {
			fmt.Fprintf(w, `<div style="left:%.2fmm;top:%.2fmm;width:%.2fmm;height:%.2fmm;border:0.2mm solid #495057;"></div>`,
				op.X, op.Y, op.W, op.H)
		}
	case "line":
		fmt.Fprintf(w, `<div style="left:%.2fmm;top:%.2fmm;width:%.2fmm;height:0;border-top:0.2mm solid #495057;"></div>`,
			op.X, op.Y, op.W)
	case "image":
		if op.ImageSrc != "" {
			fmt.Fprintf(w, `<img src="%s" style="left:%.2fmm;top:%.2fmm;width:%.2fmm;height:%.2fmm;object-fit:contain;"/>`,
				esc(op.ImageSrc), op.X, op.Y, op.W, op.H)
		}
	}
}
