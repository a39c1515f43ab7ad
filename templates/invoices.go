package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// InvoiceItemFormData is one editable invoice line item. Rate and percentage
// stay as entered; the amount shown is the derived value.
type InvoiceItemFormData struct {
	ID          string
	Description string
	HSNCode     string
	Qty         string
	UOM         string
	RatePerKg   string
	Percentage  string
	Amount      string
}

// InvoiceFormData feeds the proforma invoice editor.
type InvoiceFormData struct {
	ID                string
	ProjectID         string
	PINo              string
	Version           string
	Status            string
	Date              string
	ClientName        string
	RegisteredAddress string
	ConsigneeAddress  string
	GSTIN             string
	WONo              string
	DispatchDetails   string
	TaxType           string
	Items             []InvoiceItemFormData
	BankAccountName   string
	BankAddress       string
	BankAccountNumber string
	BankIFSCCode      string
	RegardsName       string
	UOMOptions        []string
	HSNOptions        []string
	AmountInWords     string
	BasicAmount       string
	CGST              string
	SGST              string
	IGST              string
	RoundOff          string
	GrandTotal        string
}

func InvoiceEditPage(data InvoiceFormData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Invoice "+data.PINo, header, sidebar, InvoiceEditContent(data))
}

func InvoiceEditContent(data InvoiceFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="flex items-center justify-between mb-4">
<div>
<h1 class="text-2xl font-bold font-mono">%s</h1>
<p class="opacity-70">Version %s · %s</p>
</div>
<div class="flex gap-2">
<a href="/invoices/%s/preview" class="btn btn-sm">Preview</a>
<a href="/invoices/%s/pdf" class="btn btn-sm">Download PDF</a>
<a href="/invoices/%s/excel" class="btn btn-sm">Download Excel</a>
</div>
</div>`, esc(data.PINo), esc(data.Version), esc(data.Status), esc(data.ID), esc(data.ID), esc(data.ID))

		fmt.Fprintf(w, `<form hx-post="/invoices/%s" hx-swap="none" class="space-y-6">`, esc(data.ID))

		io.WriteString(w, `<div class="card bg-base-100 shadow-sm p-6 grid grid-cols-2 gap-4">`)
		textInput(w, "date", "Date", data.Date, false)
		textInput(w, "wo_no", "WO No", data.WONo, false)
		textInput(w, "client_name", "Client Name", data.ClientName, true)
		textInput(w, "gstin", "Client GSTIN", data.GSTIN, false)
		textArea(w, "registered_address", "Registered Address (Bill To)", data.RegisteredAddress)
		textArea(w, "consignee_address", "Consignee Address (Ship To)", data.ConsigneeAddress)
		textInput(w, "dispatch_details", "Dispatch Details", data.DispatchDetails, false)
		selectInput(w, "status", "Status", data.Status, [][2]string{
			{"draft", "Draft"}, {"sent", "Sent"}, {"paid", "Paid"}, {"cancelled", "Cancelled"},
		})
		selectInput(w, "tax_type", "Tax Type", data.TaxType, [][2]string{
			{"intra_state", "Intra-state (CGST + SGST)"},
			{"inter_state", "Inter-state (IGST)"},
		})
		io.WriteString(w, `</div>`)

		datalist(w, "uom-options", data.UOMOptions)
		datalist(w, "hsn-options", data.HSNOptions)

		fmt.Fprintf(w, `<div class="card bg-base-100 shadow-sm p-6">
<h2 class="text-lg font-semibold mb-3">Line Items <span class="badge">%d</span></h2>
<table class="table table-sm"><thead><tr>
<th>#</th><th>Description</th><th>HSN</th><th>Qty</th><th>UOM</th><th>Rate/Kg</th><th>%%</th><th class="text-right">Amount</th>
</tr></thead><tbody>`, len(data.Items))
		for i, item := range data.Items {
			pfx := fmt.Sprintf("items.%d.", i)
			fmt.Fprintf(w, `<tr>
<td>%d<input type="hidden" name="%sid" value="%s"/></td>
<td><input type="text" name="%sdescription" value="%s" class="input input-bordered input-xs w-full"/></td>
<td><input type="text" name="%shsn_code" value="%s" list="hsn-options" class="input input-bordered input-xs w-20"/></td>
<td><input type="text" name="%sqty" value="%s" class="input input-bordered input-xs w-20"/></td>
<td><input type="text" name="%suom" value="%s" list="uom-options" class="input input-bordered input-xs w-16"/></td>
<td><input type="text" name="%srate_per_kg" value="%s" class="input input-bordered input-xs w-24"/></td>
<td><input type="text" name="%spercentage" value="%s" class="input input-bordered input-xs w-16"/></td>
<td class="text-right font-mono">%s</td>
</tr>`,
				i+1, pfx, esc(item.ID), pfx, esc(item.Description), pfx, esc(item.HSNCode), pfx, esc(item.Qty),
				pfx, esc(item.UOM), pfx, esc(item.RatePerKg), pfx, esc(item.Percentage), esc(item.Amount))
		}
		io.WriteString(w, `</tbody></table>`)

		fmt.Fprintf(w, `<div class="flex justify-end mt-4"><table class="table table-sm w-72">
<tr><td>Basic Amount</td><td class="text-right font-mono">%s</td></tr>`, esc(data.BasicAmount))
		if data.TaxType == "inter_state" {
			fmt.Fprintf(w, `<tr><td>IGST @ 18%%</td><td class="text-right font-mono">%s</td></tr>`, esc(data.IGST))
		} else {
			fmt.Fprintf(w, `<tr><td>CGST @ 9%%</td><td class="text-right font-mono">%s</td></tr>
<tr><td>SGST @ 9%%</td><td class="text-right font-mono">%s</td></tr>`, esc(data.CGST), esc(data.SGST))
		}
		fmt.Fprintf(w, `<tr><td>Round Off</td><td class="text-right font-mono">%s</td></tr>
<tr class="font-bold"><td>Grand Total</td><td class="text-right font-mono">%s</td></tr>
</table></div>
<p class="text-sm mt-2 italic">Amount in Words: Rupees %s</p>
</div>`, esc(data.RoundOff), esc(data.GrandTotal), esc(data.AmountInWords))

		io.WriteString(w, `<div class="card bg-base-100 shadow-sm p-6 grid grid-cols-2 gap-4">
<h2 class="text-lg font-semibold col-span-2">Bank Details</h2>`)
		textInput(w, "bank_account_name", "Account Name", data.BankAccountName, false)
		textInput(w, "bank_address", "Bank & Branch", data.BankAddress, false)
		textInput(w, "bank_account_number", "Account Number", data.BankAccountNumber, false)
		textInput(w, "bank_ifsc_code", "IFSC Code", data.BankIFSCCode, false)
		textInput(w, "regards_name", "Regards Name", data.RegardsName, false)
		io.WriteString(w, `</div>`)

		io.WriteString(w, `<div class="flex gap-2">
<button type="submit" class="btn btn-primary">Save</button>
</div></form>`)
		return nil
	})
}

func datalist(w io.Writer, id string, options []string) {
	if len(options) == 0 {
		return
	}
	fmt.Fprintf(w, `<datalist id="%s">`, esc(id))
	for _, opt := range options {
		fmt.Fprintf(w, `<option value="%s"></option>`, esc(opt))
	}
	io.WriteString(w, `</datalist>`)
}
