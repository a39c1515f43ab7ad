package services

import "fmt"

// The layout engine computes a renderer-agnostic page plan for a quotation:
// an ordered list of A4 pages, each holding positioned draw operations. The
// screen preview maps the plan to HTML and the vector renderer maps it to
// PDF drawing calls, so both always agree on content, ordering and page
// breaks.

// Page geometry in millimeters.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	MarginX      = 12.0
	ContentWidth = PageWidth - 2*MarginX // 186mm

	// Reserved letterhead bands. Flow content lives between ContentTop and
	// ContentBottom; header/footer/stamp overlays never move the cursor.
	HeaderBandHeight = 30.0
	ContentTop       = HeaderBandHeight + 4
	ContentBottom    = 277.0
	FooterBandTop    = ContentBottom + 3
)

// Font sizes in points.
const (
	fontBody    = 9.0
	fontTitle   = 11.0
	fontHeading = 13.0
	fontSmall   = 7.5
)

const cellPadY = 1.2

// OpKind discriminates draw operations in a page plan.
type OpKind int

const (
	OpText OpKind = iota
	OpRect
	OpLine
	OpImage
)

// TextStyle carries the text attributes a renderer needs.
type TextStyle struct {
	Size   float64
	Bold   bool
	Italic bool
	Align  string // "L", "C", "R"
	Fill   bool   // draw on the band background color
}

// DrawOp is one positioned drawing instruction. Coordinates are top-left
// based, in millimeters.
type DrawOp struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Text  string
	Style TextStyle
	Image []byte
}

// PlanPage is one laid-out A4 page.
type PlanPage struct {
	Number int
	Ops    []DrawOp
}

// PagePlan is the full layout of a document.
type PagePlan struct {
	Pages []PlanPage

	// SectionPages maps section ID to the 1-based page number on which the
	// section title is first drawn. It feeds the index back-patch.
	SectionPages map[string]int
}

// indexRef locates one placeholder page-number cell: page index into
// plan.Pages and op index within that page.
type indexRef struct {
	page int
	op   int
}

// layoutState tracks the cursor during a single layout run.
type layoutState struct {
	doc      *Quotation
	branding *BrandingConfig

	plan   PagePlan
	cursor float64

	// index back-patch bookkeeping: placeholder cell locations, in
	// section order. The index table itself may span multiple pages.
	indexRefs    []indexRef
	indexEntries []string // section IDs in index order
}

// BuildQuotationPlan lays out a quotation against the branding configuration
// and returns the page plan. The branding images must already be resolved
// (decode-checked); a nil image falls back to the synthesized text band.
func BuildQuotationPlan(doc *Quotation, branding *BrandingConfig) (*PagePlan, error) {
	if doc == nil {
		return nil, fmt.Errorf("layout: nil quotation")
	}
	if branding == nil {
		branding = &BrandingConfig{}
	}

	st := &layoutState{
		doc:      doc,
		branding: branding,
		plan:     PagePlan{SectionPages: map[string]int{}},
	}

	st.newPage()
	st.layoutCover()

	if doc.Workflow == WorkflowSupplyAndFabrication {
		st.layoutIndex()
	}

	for i := range doc.Sections {
		st.layoutSection(&doc.Sections[i])
	}

	st.layoutClosing()
	st.layoutMockups()
	st.backpatchIndex()
	st.overlayStamp()

	return &st.plan, nil
}

// ── page management ─────────────────────────────────────────────────────

func (st *layoutState) page() *PlanPage {
	return &st.plan.Pages[len(st.plan.Pages)-1]
}

func (st *layoutState) pageNumber() int {
	return len(st.plan.Pages)
}

// newPage starts a fresh page with its letterhead bands and resets the
// cursor to just below the header band.
func (st *layoutState) newPage() {
	page := PlanPage{Number: len(st.plan.Pages) + 1}
	st.plan.Pages = append(st.plan.Pages, page)
	st.cursor = ContentTop
	st.drawHeaderBand()
	st.drawFooterBand()
}

// ensureRoom starts a new page unless h millimeters still fit above the
// footer band.
func (st *layoutState) ensureRoom(h float64) {
	if st.cursor+h > ContentBottom {
		st.newPage()
	}
}

func (st *layoutState) add(op DrawOp) int {
	p := st.page()
	p.Ops = append(p.Ops, op)
	return len(p.Ops) - 1
}

func (st *layoutState) spacer(h float64) {
	st.cursor += h
}

// text wraps and emits a text block at the cursor across the given width,
// advancing the cursor. Returns the rendered height.
func (st *layoutState) text(x, w float64, s string, style TextStyle) float64 {
	lines := WrapText(s, w, style.Size)
	lh := LineHeightMM(style.Size)
	for i, line := range lines {
		st.add(DrawOp{
			Kind: OpText, X: x, Y: st.cursor + float64(i)*lh,
			W: w, H: lh, Text: line, Style: style,
		})
	}
	h := float64(len(lines)) * lh
	st.cursor += h
	return h
}

func bodyStyle() TextStyle    { return TextStyle{Size: fontBody, Align: "L"} }
func titleStyle() TextStyle   { return TextStyle{Size: fontTitle, Bold: true, Align: "L"} }
func headingStyle() TextStyle { return TextStyle{Size: fontHeading, Bold: true, Align: "C"} }

// ── letterhead bands ────────────────────────────────────────────────────

// drawHeaderBand draws the letterhead header: the configured header image,
// or a synthesized registry header when none is set.
func (st *layoutState) drawHeaderBand() {
	if img := st.branding.HeaderImage; img != nil {
		st.add(DrawOp{Kind: OpImage, X: 0, Y: 0, W: PageWidth, H: HeaderBandHeight, Image: img})
		return
	}

	reg := st.branding.Registry
	name := reg.Name
	if name == "" {
		name = st.branding.HeaderText
	}
	st.add(DrawOp{
		Kind: OpText, X: MarginX, Y: 8, W: ContentWidth, H: LineHeightMM(14),
		Text: name, Style: TextStyle{Size: 14, Bold: true, Align: "C"},
	})
	if reg.CIN != "" {
		st.add(DrawOp{
			Kind: OpText, X: MarginX, Y: 15, W: ContentWidth, H: LineHeightMM(fontSmall),
			Text: "CIN: " + reg.CIN, Style: TextStyle{Size: fontSmall, Align: "C"},
		})
	}
	if reg.GSTIN != "" {
		st.add(DrawOp{
			Kind: OpText, X: MarginX, Y: 19, W: ContentWidth, H: LineHeightMM(fontSmall),
			Text: "GSTIN: " + reg.GSTIN, Style: TextStyle{Size: fontSmall, Align: "C"},
		})
	}
	st.add(DrawOp{Kind: OpLine, X: MarginX, Y: HeaderBandHeight - 2, W: ContentWidth, H: 0})
}

// drawFooterBand draws the footer image or a synthesized two-column office
// contact block from the registry.
func (st *layoutState) drawFooterBand() {
	if img := st.branding.FooterImage; img != nil {
		st.add(DrawOp{Kind: OpImage, X: 0, Y: FooterBandTop, W: PageWidth, H: PageHeight - FooterBandTop, Image: img})
		return
	}

	st.add(DrawOp{Kind: OpLine, X: MarginX, Y: FooterBandTop, W: ContentWidth, H: 0})

	reg := st.branding.Registry
	left := ""
	if len(reg.Addresses) > 0 {
		left = reg.Addresses[0]
	}
	right := ""
	if len(reg.Addresses) > 1 {
		right = reg.Addresses[1]
	}
	if len(reg.Phones) > 0 {
		left += " | " + reg.Phones[0]
	}
	if len(reg.Phones) > 1 {
		right += " | " + reg.Phones[1]
	}
	if left == "" && right == "" {
		left = st.branding.FooterText
	}

	half := ContentWidth / 2
	y := FooterBandTop + 2
	st.add(DrawOp{
		Kind: OpText, X: MarginX, Y: y, W: half, H: LineHeightMM(fontSmall),
		Text: left, Style: TextStyle{Size: fontSmall, Align: "L"},
	})
	st.add(DrawOp{
		Kind: OpText, X: MarginX + half, Y: y, W: half, H: LineHeightMM(fontSmall),
		Text: right, Style: TextStyle{Size: fontSmall, Align: "R"},
	})
	if reg.Email != "" || reg.Website != "" {
		st.add(DrawOp{
			Kind: OpText, X: MarginX, Y: y + LineHeightMM(fontSmall), W: ContentWidth, H: LineHeightMM(fontSmall),
			Text: joinNonEmpty([]string{reg.Email, reg.Website}, " | "),
			Style: TextStyle{Size: fontSmall, Align: "C"},
		})
	}
}

// overlayStamp places the stamp/signature image near the bottom-right of the
// cover page and the final page. Runs after layout so it cannot shift any
// page-break decision.
func (st *layoutState) overlayStamp() {
	img := st.branding.StampSignature
	if img == nil || len(st.plan.Pages) == 0 {
		return
	}
	stamp := DrawOp{Kind: OpImage, X: 150, Y: 232, W: 40, H: 30, Image: img}
	st.plan.Pages[0].Ops = append(st.plan.Pages[0].Ops, stamp)
	if last := len(st.plan.Pages) - 1; last > 0 {
		st.plan.Pages[last].Ops = append(st.plan.Pages[last].Ops, stamp)
	}
}

// ── cover page ──────────────────────────────────────────────────────────

func (st *layoutState) layoutCover() {
	doc := st.doc

	st.text(MarginX, ContentWidth/2, "Ref: "+doc.RefNo, bodyStyle())
	st.cursor -= LineHeightMM(fontBody)
	st.text(MarginX+ContentWidth/2, ContentWidth/2, "Date: "+doc.Date,
		TextStyle{Size: fontBody, Align: "R"})
	st.spacer(4)

	if doc.EnquiryNo != "" {
		st.text(MarginX, ContentWidth, "Your Enquiry: "+doc.EnquiryNo, bodyStyle())
		st.spacer(2)
	}

	st.text(MarginX, ContentWidth, "To,", bodyStyle())
	if doc.RecipientName != "" {
		st.text(MarginX, ContentWidth, doc.RecipientName, TextStyle{Size: fontBody, Bold: true, Align: "L"})
	}
	if doc.RecipientCompany != "" {
		st.text(MarginX, ContentWidth, doc.RecipientCompany, TextStyle{Size: fontBody, Bold: true, Align: "L"})
	}
	if doc.RecipientAddress != "" {
		st.text(MarginX, ContentWidth, doc.RecipientAddress, bodyStyle())
	}
	if doc.Location != "" {
		st.text(MarginX, ContentWidth, doc.Location, bodyStyle())
	}
	st.spacer(5)

	if doc.Subject != "" {
		st.text(MarginX, ContentWidth, "Subject: "+doc.Subject, TextStyle{Size: fontBody, Bold: true, Align: "L"})
		st.spacer(4)
	}

	// The letter body may run long; flow it so it breaks onto a second
	// cover page instead of drawing through the footer band.
	if doc.Salutation != "" {
		st.text(MarginX, ContentWidth, doc.Salutation, bodyStyle())
		st.spacer(3)
	}
	if doc.IntroText != "" {
		st.flowText(doc.IntroText, bodyStyle())
		st.spacer(3)
	}
	if doc.IntroBody != "" {
		st.flowText(doc.IntroBody, bodyStyle())
		st.spacer(3)
	}
	if doc.PriceNotes != "" {
		st.flowText(doc.PriceNotes, TextStyle{Size: fontBody, Italic: true, Align: "L"})
	}
}

// ── index page ──────────────────────────────────────────────────────────

// layoutIndex reserves the index table with placeholder page numbers. True
// numbers are written by backpatchIndex once the full layout is known. The
// index breaks pages between rows like any other table, redrawing its
// header row on continuation pages.
func (st *layoutState) layoutIndex() {
	st.newPage()

	st.text(MarginX, ContentWidth, "INDEX", headingStyle())
	st.spacer(4)

	headers := []string{"Sr. No.", "Section", "Page No."}
	cols := ResolveColumns(headers, nil, ContentWidth)
	st.tableHeaderRow(headers, cols)

	for i, sec := range st.doc.Sections {
		cells := []string{fmt.Sprintf("%d", i+1), sec.Title, "--"}
		h := st.rowHeight(cells, cols, fontBody)
		if st.cursor+h > ContentBottom {
			st.newPage()
			st.tableHeaderRow(headers, cols)
		}
		opRefs := st.tableBodyRow(cells, cols)
		st.indexRefs = append(st.indexRefs, indexRef{
			page: len(st.plan.Pages) - 1,
			op:   opRefs[len(opRefs)-1],
		})
		st.indexEntries = append(st.indexEntries, sec.ID)
	}
}

// backpatchIndex rewrites the placeholder page-number cells with the true
// section pages recorded during layout.
func (st *layoutState) backpatchIndex() {
	for i, ref := range st.indexRefs {
		if pageNo, ok := st.plan.SectionPages[st.indexEntries[i]]; ok {
			st.plan.Pages[ref.page].Ops[ref.op].Text = fmt.Sprintf("%d", pageNo)
		}
	}
}

// ── sections ────────────────────────────────────────────────────────────

// layoutSection places one section, honoring title+first-content atomicity:
// a title is never stranded as the last line of a page.
func (st *layoutState) layoutSection(sec *Section) {
	titleH := TextHeightMM(sec.Title, ContentWidth, fontTitle) + 3
	firstH := st.firstContentHeight(sec)
	st.ensureRoom(titleH + firstH)

	st.plan.SectionPages[sec.ID] = st.pageNumber()
	st.text(MarginX, ContentWidth, sec.Title, titleStyle())
	st.spacer(3)

	switch sec.Type {
	case SectionTable:
		st.layoutTable(sec)
	case SectionList:
		st.layoutList(sec.Items)
	case SectionText:
		st.layoutFreeText(sec.Content)
	case SectionMixed:
		st.layoutFreeText(sec.Content)
		st.layoutTable(sec)
		st.layoutList(sec.Items)
	default:
		st.layoutFreeText(sec.Content)
	}
	st.spacer(5)
}

// firstContentHeight estimates the height of the section's first content
// element so the page-break decision can keep it with the title.
func (st *layoutState) firstContentHeight(sec *Section) float64 {
	switch sec.Type {
	case SectionTable:
		if len(sec.Headers) == 0 {
			return 0
		}
		cols := ResolveColumns(sec.Headers, sec.ColumnWidths, ContentWidth)
		h := st.rowHeight(sec.Headers, cols, fontBody)
		if len(sec.Rows) > 0 {
			h += st.rowHeight(normalizeRow(sec.Rows[0], len(sec.Headers)), cols, fontBody)
		}
		return h
	case SectionList:
		if len(sec.Items) == 0 {
			return 0
		}
		return TextHeightMM(sec.Items[0], ContentWidth-6, fontBody) + cellPadY
	default:
		if sec.Content == "" {
			return 0
		}
		return LineHeightMM(fontBody) * 2
	}
}

// rowHeight is the max wrapped-cell height over a row plus padding.
func (st *layoutState) rowHeight(cells []string, cols []ColumnLayout, fontPt float64) float64 {
	maxH := LineHeightMM(fontPt)
	for i, cell := range cells {
		if i >= len(cols) {
			break
		}
		if h := TextHeightMM(cell, cols[i].Width-2, fontPt); h > maxH {
			maxH = h
		}
	}
	return maxH + 2*cellPadY
}

// normalizeRow pads or truncates a row to the expected cell count. Lenient
// mode for malformed section data; the editor is expected to prevent it.
func normalizeRow(row []string, n int) []string {
	if len(row) == n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}

// tableHeaderRow emits the bold header row with its background rect.
func (st *layoutState) tableHeaderRow(headers []string, cols []ColumnLayout) {
	h := st.rowHeight(headers, cols, fontBody)
	st.add(DrawOp{Kind: OpRect, X: MarginX, Y: st.cursor, W: ContentWidth, H: h, Style: TextStyle{Fill: true}})

	x := MarginX
	for i, head := range headers {
		st.add(DrawOp{
			Kind: OpText, X: x + 1, Y: st.cursor + cellPadY,
			W: cols[i].Width - 2, H: h,
			Text:  head,
			Style: TextStyle{Size: fontBody, Bold: true, Align: cols[i].Align, Fill: true},
		})
		x += cols[i].Width
	}
	st.cursor += h
}

// tableBodyRow emits one body row, wrapping each cell to its column width.
// Returns the op index of each cell's first text op (used by the index
// back-patch).
func (st *layoutState) tableBodyRow(cells []string, cols []ColumnLayout) []int {
	h := st.rowHeight(cells, cols, fontBody)
	st.add(DrawOp{Kind: OpRect, X: MarginX, Y: st.cursor, W: ContentWidth, H: h})

	refs := make([]int, len(cells))
	x := MarginX
	for i, cell := range cells {
		lines := WrapText(cell, cols[i].Width-2, fontBody)
		lh := LineHeightMM(fontBody)
		for j, line := range lines {
			idx := st.add(DrawOp{
				Kind: OpText, X: x + 1, Y: st.cursor + cellPadY + float64(j)*lh,
				W: cols[i].Width - 2, H: lh,
				Text:  line,
				Style: TextStyle{Size: fontBody, Align: cols[i].Align},
			})
			if j == 0 {
				refs[i] = idx
			}
		}
		x += cols[i].Width
	}
	st.cursor += h
	return refs
}

// layoutTable places header and body rows, breaking pages between rows and
// redrawing the header row on every continuation page.
func (st *layoutState) layoutTable(sec *Section) {
	if len(sec.Headers) == 0 {
		return
	}
	cols := ResolveColumns(sec.Headers, sec.ColumnWidths, ContentWidth)
	st.tableHeaderRow(sec.Headers, cols)

	for _, raw := range sec.Rows {
		row := normalizeRow(raw, len(sec.Headers))
		h := st.rowHeight(row, cols, fontBody)
		if st.cursor+h > ContentBottom {
			st.newPage()
			st.tableHeaderRow(sec.Headers, cols)
		}
		st.tableBodyRow(row, cols)
	}
}

// layoutList flows bullet items to the content width.
func (st *layoutState) layoutList(items []string) {
	for _, item := range items {
		h := TextHeightMM(item, ContentWidth-6, fontBody) + cellPadY
		st.ensureRoom(h)
		st.add(DrawOp{
			Kind: OpText, X: MarginX, Y: st.cursor, W: 6, H: LineHeightMM(fontBody),
			Text: "•", Style: bodyStyle(),
		})
		st.text(MarginX+6, ContentWidth-6, item, bodyStyle())
		st.spacer(cellPadY)
	}
}

// layoutFreeText flows a paragraph, breaking pages between wrapped lines.
func (st *layoutState) layoutFreeText(content string) {
	st.flowText(content, bodyStyle())
}

// flowText wraps content to the full content width and emits it line by
// line with a page-break check before every line.
func (st *layoutState) flowText(content string, style TextStyle) {
	if content == "" {
		return
	}
	lines := WrapText(content, ContentWidth, style.Size)
	lh := LineHeightMM(style.Size)
	for _, line := range lines {
		st.ensureRoom(lh)
		st.add(DrawOp{
			Kind: OpText, X: MarginX, Y: st.cursor, W: ContentWidth, H: lh,
			Text: line, Style: style,
		})
		st.cursor += lh
	}
}

// ── closing block & mockups ─────────────────────────────────────────────

// layoutClosing appends the regards block after the last section, continuing
// on the current page when there is room.
func (st *layoutState) layoutClosing() {
	doc := st.doc

	blockH := TextHeightMM(doc.ClosingBody, ContentWidth, fontBody) + 4*LineHeightMM(fontBody) + 10
	st.ensureRoom(blockH)

	if doc.ClosingBody != "" {
		st.text(MarginX, ContentWidth, doc.ClosingBody, bodyStyle())
		st.spacer(5)
	}
	st.text(MarginX, ContentWidth, "Thanking you,", bodyStyle())
	st.spacer(3)
	if doc.RegardsName != "" {
		st.text(MarginX, ContentWidth, doc.RegardsName, TextStyle{Size: fontBody, Bold: true, Align: "L"})
	}
	if doc.RegardsPhone != "" {
		st.text(MarginX, ContentWidth, "Phone: "+doc.RegardsPhone, bodyStyle())
	}
	if doc.RegardsEmail != "" {
		st.text(MarginX, ContentWidth, "Email: "+doc.RegardsEmail, bodyStyle())
	}
}

// layoutMockups renders each design mockup full width on its own page.
// Entries are image references resolved by the renderer.
func (st *layoutState) layoutMockups() {
	for _, ref := range st.doc.DesignMockups {
		if ref == "" {
			continue
		}
		st.newPage()
		st.text(MarginX, ContentWidth, "Design Mockup", titleStyle())
		st.spacer(3)
		st.add(DrawOp{
			Kind: OpImage, X: MarginX, Y: st.cursor,
			W: ContentWidth, H: ContentBottom - st.cursor - 4,
			Text: ref,
		})
	}
}
