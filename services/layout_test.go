package services

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"
)

// tinyPNGBase64 is a 1x1 transparent PNG, small enough to inline and valid
// for both the layout decode checks and the PDF renderers.
const tinyPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	if err != nil {
		t.Fatalf("failed to decode test PNG: %v", err)
	}
	return raw
}

func planTime() time.Time {
	return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
}

// findTextPage returns the 1-based page on which a text op with exactly the
// given content first appears, or 0 when absent.
func findTextPage(plan *PagePlan, text string) int {
	for _, page := range plan.Pages {
		for _, op := range page.Ops {
			if op.Kind == OpText && op.Text == text {
				return page.Number
			}
		}
	}
	return 0
}

func pageHasText(page PlanPage, text string) bool {
	for _, op := range page.Ops {
		if op.Kind == OpText && op.Text == text {
			return true
		}
	}
	return false
}

func pageHasTextPrefix(page PlanPage, prefix string) bool {
	for _, op := range page.Ops {
		if op.Kind == OpText && strings.HasPrefix(op.Text, prefix) {
			return true
		}
	}
	return false
}

// assertFlowWithinContent fails if any flow op (between the letterhead
// bands) extends past the footer band boundary.
func assertFlowWithinContent(t *testing.T, plan *PagePlan) {
	t.Helper()
	for _, page := range plan.Pages {
		for _, op := range page.Ops {
			if op.Y < ContentTop || op.Y >= FooterBandTop {
				continue
			}
			if op.Y+op.H > ContentBottom+0.01 {
				t.Errorf("page %d: op %q at Y=%.1f H=%.1f extends past ContentBottom=%.1f",
					page.Number, op.Text, op.Y, op.H, ContentBottom)
			}
		}
	}
}

func TestBuildQuotationPlanNilDoc(t *testing.T) {
	if _, err := BuildQuotationPlan(nil, nil); err == nil {
		t.Fatal("expected error for nil quotation")
	}
}

func TestIndexPageOnlyForSupplyAndFabrication(t *testing.T) {
	tests := []struct {
		workflow  Workflow
		wantIndex bool
	}{
		{WorkflowSupplyAndFabrication, true},
		{WorkflowStructuralFabrication, false},
		{WorkflowJobWork, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.workflow), func(t *testing.T) {
			doc := BuildQuotation("p1", 1, "Acme Industries", "Nagpur", tt.workflow, planTime())
			plan, err := BuildQuotationPlan(&doc, DefaultBranding())
			if err != nil {
				t.Fatalf("BuildQuotationPlan failed: %v", err)
			}

			gotIndex := findTextPage(plan, "INDEX") != 0
			if gotIndex != tt.wantIndex {
				t.Errorf("index page present = %v, want %v", gotIndex, tt.wantIndex)
			}
		})
	}
}

func TestIndexBackpatch(t *testing.T) {
	doc := BuildQuotation("p1", 1, "Acme Industries", "Nagpur", WorkflowSupplyAndFabrication, planTime())
	plan, err := BuildQuotationPlan(&doc, DefaultBranding())
	if err != nil {
		t.Fatalf("BuildQuotationPlan failed: %v", err)
	}

	// Every placeholder must have been replaced with a real page number.
	if page := findTextPage(plan, "--"); page != 0 {
		t.Errorf("unpatched index placeholder remains on page %d", page)
	}

	if len(plan.SectionPages) != len(doc.Sections) {
		t.Fatalf("SectionPages has %d entries, want %d", len(plan.SectionPages), len(doc.Sections))
	}

	// Each section's recorded page really holds its title, and the index
	// precedes every section start.
	for _, sec := range doc.Sections {
		recorded, ok := plan.SectionPages[sec.ID]
		if !ok {
			t.Fatalf("section %q missing from SectionPages", sec.Title)
		}
		if recorded < 2 {
			t.Errorf("section %q recorded on page %d, before the index page", sec.Title, recorded)
		}
		if !pageHasText(plan.Pages[recorded-1], sec.Title) {
			t.Errorf("section %q title not found on recorded page %d", sec.Title, recorded)
		}
	}
}

func TestIndexPaginatesAcrossPages(t *testing.T) {
	// Enough sections that the index table itself cannot fit on one page.
	sections := make([]Section, 45)
	for i := range sections {
		sections[i] = Section{
			ID:      fmt.Sprintf("sec-%02d", i+1),
			Title:   fmt.Sprintf("Work Package %02d", i+1),
			Type:    SectionText,
			Content: "Scope description.",
		}
	}
	doc := &Quotation{
		ID:       "q1",
		Workflow: WorkflowSupplyAndFabrication,
		RefNo:    "RNS/AUG-2026/Acme/RNS-001",
		Date:     "15.08.2026",
		Sections: sections,
	}

	plan, err := BuildQuotationPlan(doc, DefaultBranding())
	if err != nil {
		t.Fatalf("BuildQuotationPlan failed: %v", err)
	}

	assertFlowWithinContent(t, plan)

	// The index header row must be redrawn on every continuation page.
	indexHeaderPages := 0
	for _, page := range plan.Pages {
		if pageHasText(page, "Page No.") {
			indexHeaderPages++
		}
	}
	if indexHeaderPages < 2 {
		t.Fatalf("index header on %d page(s), want the table to continue across pages", indexHeaderPages)
	}

	// Back-patch must reach rows on index continuation pages too.
	if page := findTextPage(plan, "--"); page != 0 {
		t.Errorf("unpatched index placeholder remains on page %d", page)
	}
	for _, sec := range sections {
		recorded, ok := plan.SectionPages[sec.ID]
		if !ok {
			t.Fatalf("section %q missing from SectionPages", sec.Title)
		}
		if !pageHasText(plan.Pages[recorded-1], sec.Title) {
			t.Errorf("section %q title not found on recorded page %d", sec.Title, recorded)
		}
	}
}

func TestCoverIntroFlowsAcrossPages(t *testing.T) {
	doc := BuildQuotation("p1", 1, "Acme Industries", "Nagpur", WorkflowJobWork, planTime())
	doc.IntroBody = strings.TrimSpace(strings.Repeat("Fabrication of structural steel members with shop priming and dispatch in knocked-down condition. ", 120))

	plan, err := BuildQuotationPlan(&doc, DefaultBranding())
	if err != nil {
		t.Fatalf("BuildQuotationPlan failed: %v", err)
	}
	if len(plan.Pages) < 2 {
		t.Fatalf("expected the cover letter to continue onto a second page, got %d page(s)", len(plan.Pages))
	}
	assertFlowWithinContent(t, plan)
}

func TestSectionTitleKeptWithFirstContent(t *testing.T) {
	// Sweep filler lengths so the table section lands at every possible
	// offset relative to the page boundary. Whatever the offset, the title
	// and the first header row must end up on the same page.
	for filler := 20; filler <= 70; filler++ {
		doc := &Quotation{
			ID:       "q1",
			Workflow: WorkflowJobWork,
			RefNo:    "RNS/AUG-2026/Acme/RNS-JW-001",
			Date:     "15.08.2026",
			Sections: []Section{
				{
					ID:      "filler",
					Title:   "Preamble",
					Type:    SectionText,
					Content: strings.TrimRight(strings.Repeat("filler\n", filler), "\n"),
				},
				{
					ID:      "milestones",
					Title:   "Milestone Schedule",
					Type:    SectionTable,
					Headers: []string{"Sr. No.", "Milestone Detail"},
					Rows:    [][]string{{"1", "Drawing approval"}},
				},
			},
		}

		plan, err := BuildQuotationPlan(doc, DefaultBranding())
		if err != nil {
			t.Fatalf("filler=%d: BuildQuotationPlan failed: %v", filler, err)
		}

		titlePage := findTextPage(plan, "Milestone Schedule")
		headerPage := findTextPage(plan, "Milestone Detail")
		if titlePage == 0 || headerPage == 0 {
			t.Fatalf("filler=%d: title or header missing from plan", filler)
		}
		if titlePage != headerPage {
			t.Errorf("filler=%d: title on page %d but first header row on page %d", filler, titlePage, headerPage)
		}
		if got := plan.SectionPages["milestones"]; got != titlePage {
			t.Errorf("filler=%d: SectionPages = %d, want %d", filler, got, titlePage)
		}
	}
}

func TestTableHeaderRedrawnOnContinuationPages(t *testing.T) {
	rows := make([][]string, 80)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("%d", i+1), fmt.Sprintf("Item %d", i+1)}
	}

	doc := &Quotation{
		ID:       "q1",
		Workflow: WorkflowJobWork,
		RefNo:    "RNS/AUG-2026/Acme/RNS-JW-001",
		Date:     "15.08.2026",
		Sections: []Section{{
			ID:      "long",
			Title:   "Delivery Schedule",
			Type:    SectionTable,
			Headers: []string{"Sr. No.", "Particulars"},
			Rows:    rows,
		}},
	}

	plan, err := BuildQuotationPlan(doc, DefaultBranding())
	if err != nil {
		t.Fatalf("BuildQuotationPlan failed: %v", err)
	}
	if len(plan.Pages) < 2 {
		t.Fatalf("expected the table to span multiple pages, got %d", len(plan.Pages))
	}

	headerPages := 0
	for _, page := range plan.Pages {
		hasRow := pageHasTextPrefix(page, "Item ")
		hasHeader := pageHasText(page, "Particulars")
		if hasRow && !hasHeader {
			t.Errorf("page %d has table rows but no header row", page.Number)
		}
		if hasHeader {
			headerPages++
		}
	}
	if headerPages < 2 {
		t.Errorf("header drawn on %d page(s), want a redraw on every continuation page", headerPages)
	}
}

func TestMockupPages(t *testing.T) {
	doc := BuildQuotation("p1", 1, "Acme Industries", "Nagpur", WorkflowJobWork, planTime())
	doc.DesignMockups = []string{"refA", "", "refB"}

	plan, err := BuildQuotationPlan(&doc, DefaultBranding())
	if err != nil {
		t.Fatalf("BuildQuotationPlan failed: %v", err)
	}

	var mockupRefs []string
	for _, page := range plan.Pages {
		if !pageHasText(page, "Design Mockup") {
			continue
		}
		for _, op := range page.Ops {
			if op.Kind == OpImage && op.Text != "" {
				mockupRefs = append(mockupRefs, op.Text)
			}
		}
	}

	if len(mockupRefs) != 2 || mockupRefs[0] != "refA" || mockupRefs[1] != "refB" {
		t.Errorf("mockup refs = %v, want [refA refB] with empty refs skipped", mockupRefs)
	}
}

func TestStampOverlayOnFirstAndLastPage(t *testing.T) {
	branding := DefaultBranding()
	branding.StampSignature = tinyPNG(t)

	doc := BuildQuotation("p1", 1, "Acme Industries", "Nagpur", WorkflowSupplyAndFabrication, planTime())
	plan, err := BuildQuotationPlan(&doc, branding)
	if err != nil {
		t.Fatalf("BuildQuotationPlan failed: %v", err)
	}
	if len(plan.Pages) < 3 {
		t.Fatalf("expected a multi-page plan, got %d pages", len(plan.Pages))
	}

	hasStamp := func(page PlanPage) bool {
		for _, op := range page.Ops {
			if op.Kind == OpImage && op.Image != nil {
				return true
			}
		}
		return false
	}

	if !hasStamp(plan.Pages[0]) {
		t.Error("first page is missing the stamp overlay")
	}
	if !hasStamp(plan.Pages[len(plan.Pages)-1]) {
		t.Error("last page is missing the stamp overlay")
	}
	for _, page := range plan.Pages[1 : len(plan.Pages)-1] {
		if hasStamp(page) {
			t.Errorf("page %d unexpectedly carries the stamp", page.Number)
		}
	}
}

func TestStampOverlaySinglePage(t *testing.T) {
	branding := DefaultBranding()
	branding.StampSignature = tinyPNG(t)

	doc := &Quotation{ID: "q1", Workflow: WorkflowJobWork, RefNo: "R", Date: "15.08.2026"}
	plan, err := BuildQuotationPlan(doc, branding)
	if err != nil {
		t.Fatalf("BuildQuotationPlan failed: %v", err)
	}
	if len(plan.Pages) != 1 {
		t.Fatalf("expected a single-page plan, got %d pages", len(plan.Pages))
	}

	stamps := 0
	for _, op := range plan.Pages[0].Ops {
		if op.Kind == OpImage && op.Image != nil {
			stamps++
		}
	}
	if stamps != 1 {
		t.Errorf("stamp drawn %d times on a single-page document, want once", stamps)
	}
}
