package services

import "strings"

// Fixed column widths in millimeters. 21mm matches the 80px serial-number
// column of the on-screen table at 96dpi.
const (
	ColWidthSerial = 21.0
	ColWidthNarrow = 16.0
	ColWidthWide   = 28.0
)

// ColumnLayout is the resolved geometry of one table column.
type ColumnLayout struct {
	Width float64
	Align string // "L", "C" or "R"
}

// isSerialHeader reports whether a column header denotes a serial-number
// column ("Sr. No.", "Sl No", "No.", ...).
func isSerialHeader(h string) bool {
	s := strings.ToLower(strings.TrimSpace(h))
	return strings.Contains(s, "sr.") || strings.Contains(s, "sl.") ||
		s == "no" || s == "no."
}

func isNarrowHeader(h string) bool {
	s := strings.ToLower(strings.TrimSpace(h))
	return strings.Contains(s, "uom") || strings.Contains(s, "qty")
}

func isWideHeader(h string) bool {
	s := strings.ToLower(strings.TrimSpace(h))
	return strings.Contains(s, "rate") || strings.Contains(s, "amount")
}

// ResolveColumns assigns a width and alignment to every table column inside
// totalWidth mm. Serial columns get a fixed 21mm centered; uom/qty columns a
// fixed narrow width; rate/amount columns a fixed wider width, right aligned.
// An explicit width (mm, aligned 1:1 with headers, 0 = auto) overrides any
// pattern. All remaining columns split the leftover width equally.
//
// The rate/amount fixed width only kicks in for tables of four or more
// columns (price schedules). In a narrow table like Sr./Description/Amount
// the amount column shares the leftover width equally instead, which keeps
// simple two-data-column tables balanced.
func ResolveColumns(headers []string, explicit []float64, totalWidth float64) []ColumnLayout {
	cols := make([]ColumnLayout, len(headers))
	remaining := totalWidth
	autoCount := 0

	for i, h := range headers {
		switch {
		case i < len(explicit) && explicit[i] > 0:
			cols[i] = ColumnLayout{Width: explicit[i], Align: "L"}
		case isSerialHeader(h):
			cols[i] = ColumnLayout{Width: ColWidthSerial, Align: "C"}
		case isNarrowHeader(h):
			cols[i] = ColumnLayout{Width: ColWidthNarrow, Align: "C"}
		case isWideHeader(h) && len(headers) >= 4:
			cols[i] = ColumnLayout{Width: ColWidthWide, Align: "R"}
		default:
			align := "L"
			if isWideHeader(h) {
				align = "R"
			}
			cols[i] = ColumnLayout{Width: 0, Align: align}
			autoCount++
			continue
		}
		remaining -= cols[i].Width
	}

	if autoCount > 0 {
		share := remaining / float64(autoCount)
		if share < ColWidthNarrow {
			share = ColWidthNarrow
		}
		for i := range cols {
			if cols[i].Width == 0 {
				cols[i].Width = share
			}
		}
		return cols
	}

	// No auto columns: scale everything to fill the content width so fixed
	// columns alone never leave a ragged right edge.
	used := totalWidth - remaining
	if used > 0 && remaining != 0 {
		factor := totalWidth / used
		for i := range cols {
			cols[i].Width *= factor
		}
	}
	return cols
}
