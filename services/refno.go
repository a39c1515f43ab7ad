package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
)

// FormatVersion zero-pads a quotation version to 3 digits ("001", "042").
func FormatVersion(v int) string {
	return fmt.Sprintf("%03d", v)
}

// MonthYearStr formats a date as uppercase MMM-YYYY ("AUG-2026").
func MonthYearStr(t time.Time) string {
	return strings.ToUpper(t.Format("Jan-2006"))
}

// QuotationRefNo builds the reference number for a quotation version:
//
//	RNS/{MMM-YYYY}/{clientName}/RNS[-{workflowSuffix}]-{paddedVersion}
//
// SupplyAndFabrication carries no workflow suffix.
func QuotationRefNo(workflow Workflow, clientName string, version int, now time.Time) string {
	tail := "RNS"
	if suffix := WorkflowSuffix(workflow); suffix != "" {
		tail += "-" + suffix
	}
	return fmt.Sprintf("RNS/%s/%s/%s-%s", MonthYearStr(now), clientName, tail, FormatVersion(version))
}

// formatPINumber constructs a PI number from its serial component.
func formatPINumber(monthYear string, serial int) string {
	return fmt.Sprintf("RNS/PI/%s/RNS-%d", monthYear, serial)
}

// GeneratePINumber returns the next free proforma-invoice number:
//
//	RNS/PI/{MMM-YYYY}/RNS-{serial}
//
// Uniqueness is system-wide, not per project. The serial starts at 1 and is
// retried upward until no existing invoice carries the candidate number, so
// no separate counter record needs to be persisted.
func GeneratePINumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	monthYear := MonthYearStr(now)

	for serial := 1; ; serial++ {
		candidate := formatPINumber(monthYear, serial)

		existing, err := app.FindRecordsByFilter(
			"invoices",
			"pi_no = {:piNo}",
			"", 1, 0,
			map[string]any{"piNo": candidate},
		)
		if err != nil {
			return "", fmt.Errorf("scan invoices for PI number: %w", err)
		}
		if len(existing) == 0 {
			return candidate, nil
		}
	}
}

// NextQuotationVersion returns max(existing versions for the project) + 1,
// or 1 when the project has no quotations yet.
func NextQuotationVersion(app *pocketbase.PocketBase, projectID string) (int, error) {
	records, err := app.FindRecordsByFilter(
		"quotations",
		"project = {:projectId}",
		"", 0, 0,
		map[string]any{"projectId": projectID},
	)
	if err != nil {
		return 0, fmt.Errorf("list quotations for project %s: %w", projectID, err)
	}

	maxVersion := 0
	for _, rec := range records {
		if v := rec.GetInt("version"); v > maxVersion {
			maxVersion = v
		}
	}
	return maxVersion + 1, nil
}

// NextInvoiceVersion returns the next invoice version number for a project.
func NextInvoiceVersion(app *pocketbase.PocketBase, projectID string) (int, error) {
	records, err := app.FindRecordsByFilter(
		"invoices",
		"project = {:projectId}",
		"", 0, 0,
		map[string]any{"projectId": projectID},
	)
	if err != nil {
		return 0, fmt.Errorf("list invoices for project %s: %w", projectID, err)
	}

	maxVersion := 0
	for _, rec := range records {
		if v := rec.GetInt("version"); v > maxVersion {
			maxVersion = v
		}
	}
	return maxVersion + 1, nil
}

// PDFFileName derives the download file name for a quotation from its
// reference number, replacing slashes so the result is filesystem-safe.
func PDFFileName(refNo string) string {
	return strings.ReplaceAll(refNo, "/", "-") + ".pdf"
}

// InvoicePDFFileName derives the invoice download file name from the PI
// number and the owning project's name.
func InvoicePDFFileName(piNo, projectName string) string {
	name := strings.ReplaceAll(piNo, "/", "-")
	if projectName != "" {
		name += "-" + strings.ReplaceAll(projectName, "/", "-")
	}
	return name + ".pdf"
}
