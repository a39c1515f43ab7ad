package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BuildQuotation constructs a new draft quotation for a project. Pure
// construction: no storage access, all defaults filled in from the workflow
// template. Callers persist the result explicitly.
func BuildQuotation(projectID string, version int, clientName, location string, workflow Workflow, now time.Time) Quotation {
	return Quotation{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Version:   version,
		Status:    "draft",
		Workflow:  workflow,
		RefNo:     QuotationRefNo(workflow, clientName, version, now),
		Date:      DocumentDate(now),
		Location:  location,
		Subject: fmt.Sprintf("Offer for %s of structural steel work at %s",
			WorkflowLabel(workflow), location),
		Salutation: "Dear Sir/Madam,",
		IntroText:  "We thank you for your enquiry and the opportunity to quote for your requirement.",
		IntroBody: "With reference to the above, we are pleased to submit our techno-commercial " +
			"offer for your kind consideration. Our offer is based on the information shared " +
			"with us and the terms detailed in the enclosed sections.",
		ClosingBody: "We trust you will find our offer in line with your requirement and look " +
			"forward to your valued order. Please feel free to contact the undersigned for any " +
			"clarification.",
		RecipientCompany: clientName,
		PriceNotes:       "Rates are exclusive of GST. Quantities will be measured on actuals as per approved drawings.",
		BankDetails:      "As per Bank Details section",
		RegardsName:      "For RNS Fabricators & Engineers Pvt. Ltd.",
		Sections:         DefaultSections(workflow),
		CreatedAt:        now.Format(time.RFC3339),
	}
}

// BuildInvoice constructs a new proforma invoice with one placeholder PEB
// line item and default bank details. Client fields are copied in, not
// referenced, so later client edits never change an issued invoice.
func BuildInvoice(projectID string, version int, client ClientInfo, piNo string, now time.Time) Invoice {
	item := InvoiceLineItem{
		ID:          uuid.NewString(),
		Description: "PEB Steel Structure - Supply & Fabrication",
		HSNCode:     "94060019",
		Qty:         1,
		UOM:         "Kg",
		RatePerKg:   "0",
		Percentage:  "100",
	}
	item.Amount = CalcItemAmount(item)

	inv := Invoice{
		ID:                uuid.NewString(),
		ProjectID:         projectID,
		Version:           version,
		Status:            "draft",
		PINo:              piNo,
		Date:              DocumentDate(now),
		ClientName:        client.Name,
		RegisteredAddress: client.Address,
		ConsigneeAddress:  client.Address,
		GSTIN:             client.GSTIN,
		Items:             []InvoiceLineItem{item},
		TaxType:           TaxIntraState,
		BankDetails: BankDetails{
			AccountName:   "RNS Fabricators & Engineers Pvt. Ltd.",
			Address:       "Yes Bank Ltd., Civil Lines, Nagpur",
			AccountNumber: "073361900000733",
			IFSCCode:      "YESB0000733",
		},
		RegardsName: "For RNS Fabricators & Engineers Pvt. Ltd.",
		CreatedAt:   now.Format(time.RFC3339),
	}
	inv.AmountInWords = InvoiceAmountInWords(&inv)
	return inv
}
