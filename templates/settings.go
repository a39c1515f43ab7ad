package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// BrandingFormData feeds the branding settings form. Image fields carry the
// current base64 payloads so saving without changes keeps them.
type BrandingFormData struct {
	HeaderText          string
	FooterText          string
	BrandColor          string
	LogoBackgroundColor string
	RegistryName        string
	RegistryCIN         string
	RegistryGSTIN       string
	RegistryEmail       string
	RegistryWebsite     string
	RegistryAddresses   string
	RegistryPhones      string
	HasLogo             bool
	HasHeaderImage      bool
	HasFooterImage      bool
	HasStampSignature   bool
}

func BrandingSettingsPage(data BrandingFormData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Branding", header, sidebar, BrandingSettingsContent(data))
}

func BrandingSettingsContent(data BrandingFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1 class="text-2xl font-bold mb-4">Branding</h1>
<form hx-post="/settings/branding" hx-encoding="multipart/form-data" hx-swap="none"
 class="card bg-base-100 shadow-sm p-6 max-w-2xl space-y-4">`)

		textInput(w, "registry_name", "Company Name", data.RegistryName, true)
		textInput(w, "registry_cin", "CIN", data.RegistryCIN, false)
		textInput(w, "registry_gstin", "GSTIN", data.RegistryGSTIN, false)
		textInput(w, "registry_email", "Email", data.RegistryEmail, false)
		textInput(w, "registry_website", "Website", data.RegistryWebsite, false)
		textArea(w, "registry_addresses", "Addresses (one per line)", data.RegistryAddresses)
		textArea(w, "registry_phones", "Phones (one per line)", data.RegistryPhones)

		textInput(w, "header_text", "Header Text", data.HeaderText, false)
		textInput(w, "footer_text", "Footer Text", data.FooterText, false)
		textInput(w, "brand_color", "Brand Color", data.BrandColor, false)
		textInput(w, "logo_background_color", "Logo Background Color", data.LogoBackgroundColor, false)

		imageInput(w, "logo", "Logo", data.HasLogo)
		imageInput(w, "header_image", "Header Band Image", data.HasHeaderImage)
		imageInput(w, "footer_image", "Footer Band Image", data.HasFooterImage)
		imageInput(w, "stamp_signature", "Stamp & Signature", data.HasStampSignature)

		io.WriteString(w, `<div class="flex gap-2">
<button type="submit" class="btn btn-primary">Save</button>
</div></form>`)
		return nil
	})
}

func imageInput(w io.Writer, name, label string, present bool) {
	status := `<span class="badge badge-ghost">not set</span>`
	if present {
		status = `<span class="badge badge-success">uploaded</span>`
	}
	fmt.Fprintf(w, `<label class="form-control"><span class="label-text">%s %s</span>
<input type="file" name="%s" accept="image/png,image/jpeg,image/gif" class="file-input file-input-bordered file-input-sm"/></label>`,
		esc(label), status, esc(name))
}
