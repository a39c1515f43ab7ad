package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/services"
	"rnsdocs/templates"
)

func HandleInvoiceEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("invoices", invoiceID)
		if err != nil {
			log.Printf("invoice_edit: could not find invoice %s: %v", invoiceID, err)
			return ErrorToast(e, http.StatusNotFound, "Invoice not found")
		}

		inv := services.InvoiceFromRecord(rec)
		component := templates.InvoiceEditPage(invoiceFormData(inv),
			GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleInvoiceUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		rec, err := app.FindRecordById("invoices", invoiceID)
		if err != nil {
			log.Printf("invoice_update: could not find invoice %s: %v", invoiceID, err)
			return ErrorToast(e, http.StatusNotFound, "Invoice not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		inv := services.InvoiceFromRecord(rec)
		inv.Date = strings.TrimSpace(e.Request.FormValue("date"))
		inv.WONo = strings.TrimSpace(e.Request.FormValue("wo_no"))
		inv.ClientName = strings.TrimSpace(e.Request.FormValue("client_name"))
		inv.GSTIN = strings.TrimSpace(e.Request.FormValue("gstin"))
		inv.RegisteredAddress = strings.TrimSpace(e.Request.FormValue("registered_address"))
		inv.ConsigneeAddress = strings.TrimSpace(e.Request.FormValue("consignee_address"))
		inv.DispatchDetails = strings.TrimSpace(e.Request.FormValue("dispatch_details"))
		inv.RegardsName = strings.TrimSpace(e.Request.FormValue("regards_name"))

		if status := e.Request.FormValue("status"); status != "" {
			inv.Status = status
		}
		if taxType := services.TaxType(e.Request.FormValue("tax_type")); taxType == services.TaxIntraState || taxType == services.TaxInterState {
			inv.TaxType = taxType
		}

		inv.Items = parseInvoiceItemsForm(e)
		inv.BankDetails = services.BankDetails{
			AccountName:   strings.TrimSpace(e.Request.FormValue("bank_account_name")),
			Address:       strings.TrimSpace(e.Request.FormValue("bank_address")),
			AccountNumber: strings.TrimSpace(e.Request.FormValue("bank_account_number")),
			IFSCCode:      strings.TrimSpace(e.Request.FormValue("bank_ifsc_code")),
		}

		services.ApplyInvoiceToRecord(inv, rec)
		if err := app.Save(rec); err != nil {
			log.Printf("invoice_update: could not save invoice %s: %v", invoiceID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Invoice saved")
		return redirectAfterWrite(e, "/invoices/"+invoiceID+"/edit")
	}
}

// parseInvoiceItemsForm rebuilds the line items from indexed form fields.
// Rate and percentage stay as the raw strings the user typed; amounts are
// derived downstream.
func parseInvoiceItemsForm(e *core.RequestEvent) []services.InvoiceLineItem {
	var items []services.InvoiceLineItem
	for i := 0; ; i++ {
		prefix := fmt.Sprintf("items.%d.", i)
		if !e.Request.Form.Has(prefix + "description") {
			break
		}
		id := strings.TrimSpace(e.Request.FormValue(prefix + "id"))
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, services.InvoiceLineItem{
			ID:          id,
			Description: strings.TrimSpace(e.Request.FormValue(prefix + "description")),
			HSNCode:     strings.TrimSpace(e.Request.FormValue(prefix + "hsn_code")),
			Qty:         services.ParseLenient(e.Request.FormValue(prefix + "qty")),
			UOM:         strings.TrimSpace(e.Request.FormValue(prefix + "uom")),
			RatePerKg:   strings.TrimSpace(e.Request.FormValue(prefix + "rate_per_kg")),
			Percentage:  strings.TrimSpace(e.Request.FormValue(prefix + "percentage")),
		})
	}
	return items
}

func invoiceFormData(inv *services.Invoice) templates.InvoiceFormData {
	totals := services.CalcInvoiceTotals(inv.Items, inv.TaxType)

	data := templates.InvoiceFormData{
		ID:                inv.ID,
		ProjectID:         inv.ProjectID,
		PINo:              inv.PINo,
		Version:           services.FormatVersion(inv.Version),
		Status:            inv.Status,
		Date:              inv.Date,
		ClientName:        inv.ClientName,
		RegisteredAddress: inv.RegisteredAddress,
		ConsigneeAddress:  inv.ConsigneeAddress,
		GSTIN:             inv.GSTIN,
		WONo:              inv.WONo,
		DispatchDetails:   inv.DispatchDetails,
		TaxType:           string(inv.TaxType),
		BankAccountName:   inv.BankDetails.AccountName,
		BankAddress:       inv.BankDetails.Address,
		BankAccountNumber: inv.BankDetails.AccountNumber,
		BankIFSCCode:      inv.BankDetails.IFSCCode,
		RegardsName:       inv.RegardsName,
		UOMOptions:        services.UOMOptions,
		HSNOptions:        services.HSNOptions,
		AmountInWords:     inv.AmountInWords,
		BasicAmount:       services.FormatINR(totals.Basic),
		CGST:              services.FormatINR(totals.CGST),
		SGST:              services.FormatINR(totals.SGST),
		IGST:              services.FormatINR(totals.IGST),
		RoundOff:          services.FormatINR(totals.RoundOff),
		GrandTotal:        services.FormatINR(totals.Rounded),
	}

	for _, item := range inv.Items {
		data.Items = append(data.Items, templates.InvoiceItemFormData{
			ID:          item.ID,
			Description: item.Description,
			HSNCode:     item.HSNCode,
			Qty:         services.FormatQty(item.Qty),
			UOM:         item.UOM,
			RatePerKg:   item.RatePerKg,
			Percentage:  item.Percentage,
			Amount:      services.FormatINR(services.CalcItemAmount(item)),
		})
	}
	return data
}
