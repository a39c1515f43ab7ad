package services

import (
	"encoding/base64"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// InvoiceFromRecord rebuilds the invoice model from its PocketBase record.
// Line-item amounts and the amount-in-words field are re-derived so stale
// stored values can never leak into a render.
func InvoiceFromRecord(rec *core.Record) *Invoice {
	inv := &Invoice{
		ID:                rec.Id,
		ProjectID:         rec.GetString("project"),
		Version:           rec.GetInt("version"),
		Status:            rec.GetString("status"),
		PINo:              rec.GetString("pi_no"),
		Date:              rec.GetString("date"),
		ClientName:        rec.GetString("client_name"),
		RegisteredAddress: rec.GetString("registered_address"),
		ConsigneeAddress:  rec.GetString("consignee_address"),
		GSTIN:             rec.GetString("gstin"),
		WONo:              rec.GetString("wo_no"),
		DispatchDetails:   rec.GetString("dispatch_details"),
		TaxType:           TaxType(rec.GetString("tax_type")),
		RegardsName:       rec.GetString("regards_name"),
		CreatedAt:         rec.GetString("created"),
	}

	if err := rec.UnmarshalJSONField("items", &inv.Items); err != nil {
		log.Printf("invoice_data: bad items JSON on %s: %v", rec.Id, err)
		inv.Items = nil
	}
	if err := rec.UnmarshalJSONField("bank_details", &inv.BankDetails); err != nil {
		inv.BankDetails = BankDetails{}
	}

	inv.Items = RecalcItems(inv.Items)
	inv.AmountInWords = InvoiceAmountInWords(inv)
	return inv
}

// ApplyInvoiceToRecord writes the model onto a record for saving, always
// refreshing the derived amount fields first.
func ApplyInvoiceToRecord(inv *Invoice, rec *core.Record) {
	inv.Items = RecalcItems(inv.Items)
	inv.AmountInWords = InvoiceAmountInWords(inv)

	rec.Set("project", inv.ProjectID)
	rec.Set("version", inv.Version)
	rec.Set("status", inv.Status)
	rec.Set("pi_no", inv.PINo)
	rec.Set("date", inv.Date)
	rec.Set("client_name", inv.ClientName)
	rec.Set("registered_address", inv.RegisteredAddress)
	rec.Set("consignee_address", inv.ConsigneeAddress)
	rec.Set("gstin", inv.GSTIN)
	rec.Set("wo_no", inv.WONo)
	rec.Set("dispatch_details", inv.DispatchDetails)
	rec.Set("items", inv.Items)
	rec.Set("tax_type", string(inv.TaxType))
	rec.Set("bank_details", inv.BankDetails)
	rec.Set("regards_name", inv.RegardsName)
	rec.Set("amount_in_words", inv.AmountInWords)
}

// BrandingFromApp loads the branding settings record. Images are stored as
// base64 text; anything that fails to decode is dropped so the renderers
// fall back to synthesized bands. No record at all yields the defaults.
func BrandingFromApp(app *pocketbase.PocketBase) *BrandingConfig {
	records, err := app.FindRecordsByFilter("branding_settings", "id != ''", "-created", 1, 0, nil)
	if err != nil || len(records) == 0 {
		return DefaultBranding()
	}
	rec := records[0]

	b := &BrandingConfig{
		LogoBackgroundColor: rec.GetString("logo_background_color"),
		HeaderText:          rec.GetString("header_text"),
		FooterText:          rec.GetString("footer_text"),
		BrandColor:          rec.GetString("brand_color"),
		Logo:                decodeBrandingImage(rec, "logo"),
		HeaderImage:         decodeBrandingImage(rec, "header_image"),
		FooterImage:         decodeBrandingImage(rec, "footer_image"),
		StampSignature:      decodeBrandingImage(rec, "stamp_signature"),
	}
	if err := rec.UnmarshalJSONField("registry", &b.Registry); err != nil {
		b.Registry = DefaultBranding().Registry
	}
	return ResolveBranding(b)
}

func decodeBrandingImage(rec *core.Record, field string) []byte {
	encoded := rec.GetString(field)
	if encoded == "" {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		log.Printf("invoice_data: bad %s image data on %s: %v", field, rec.Id, err)
		return nil
	}
	return raw
}
