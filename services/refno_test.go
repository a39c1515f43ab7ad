package services

import (
	"testing"
	"time"
)

var refTime = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		v    int
		want string
	}{
		{1, "001"},
		{42, "042"},
		{120, "120"},
	}

	for _, tt := range tests {
		if got := FormatVersion(tt.v); got != tt.want {
			t.Errorf("FormatVersion(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestMonthYearStr(t *testing.T) {
	if got := MonthYearStr(refTime); got != "AUG-2026" {
		t.Errorf("MonthYearStr = %q, want %q", got, "AUG-2026")
	}
}

func TestQuotationRefNo(t *testing.T) {
	tests := []struct {
		name     string
		workflow Workflow
		version  int
		want     string
	}{
		{
			name:     "supply and fabrication has no suffix",
			workflow: WorkflowSupplyAndFabrication,
			version:  1,
			want:     "RNS/AUG-2026/Vidarbha Agro Industries/RNS-001",
		},
		{
			name:     "structural fabrication",
			workflow: WorkflowStructuralFabrication,
			version:  2,
			want:     "RNS/AUG-2026/Vidarbha Agro Industries/RNS-SF-002",
		},
		{
			name:     "job work",
			workflow: WorkflowJobWork,
			version:  3,
			want:     "RNS/AUG-2026/Vidarbha Agro Industries/RNS-JW-003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuotationRefNo(tt.workflow, "Vidarbha Agro Industries", tt.version, refTime)
			if got != tt.want {
				t.Errorf("QuotationRefNo = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWorkflowSuffix(t *testing.T) {
	tests := []struct {
		workflow Workflow
		want     string
	}{
		{WorkflowSupplyAndFabrication, ""},
		{WorkflowStructuralFabrication, "SF"},
		{WorkflowJobWork, "JW"},
		{Workflow("unknown"), ""},
	}

	for _, tt := range tests {
		if got := WorkflowSuffix(tt.workflow); got != tt.want {
			t.Errorf("WorkflowSuffix(%q) = %q, want %q", tt.workflow, got, tt.want)
		}
	}
}

func TestWorkflowLabel(t *testing.T) {
	tests := []struct {
		workflow Workflow
		want     string
	}{
		{WorkflowSupplyAndFabrication, "Supply & Fabrication"},
		{WorkflowStructuralFabrication, "Structural Fabrication"},
		{WorkflowJobWork, "Job Work"},
		{Workflow("custom"), "custom"},
	}

	for _, tt := range tests {
		if got := WorkflowLabel(tt.workflow); got != tt.want {
			t.Errorf("WorkflowLabel(%q) = %q, want %q", tt.workflow, got, tt.want)
		}
	}
}

func TestPDFFileName(t *testing.T) {
	got := PDFFileName("RNS/AUG-2026/Acme/RNS-001")
	want := "RNS-AUG-2026-Acme-RNS-001.pdf"
	if got != want {
		t.Errorf("PDFFileName = %q, want %q", got, want)
	}
}

func TestInvoicePDFFileName(t *testing.T) {
	tests := []struct {
		name        string
		piNo        string
		projectName string
		want        string
	}{
		{
			name:        "with project name",
			piNo:        "RNS/PI/AUG-2026/RNS-3",
			projectName: "Warehouse A/B",
			want:        "RNS-PI-AUG-2026-RNS-3-Warehouse A-B.pdf",
		},
		{
			name:        "without project name",
			piNo:        "RNS/PI/AUG-2026/RNS-3",
			projectName: "",
			want:        "RNS-PI-AUG-2026-RNS-3.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InvoicePDFFileName(tt.piNo, tt.projectName); got != tt.want {
				t.Errorf("InvoicePDFFileName = %q, want %q", got, tt.want)
			}
		})
	}
}
