package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rnsdocs/services"
	"rnsdocs/templates"
)

// maxBrandingImageBytes bounds letterhead uploads; anything larger than a
// print-resolution band image is a mistake.
const maxBrandingImageBytes = 1 << 20

func HandleBrandingSettings(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		branding := services.BrandingFromApp(app)

		data := templates.BrandingFormData{
			HeaderText:          branding.HeaderText,
			FooterText:          branding.FooterText,
			BrandColor:          branding.BrandColor,
			LogoBackgroundColor: branding.LogoBackgroundColor,
			RegistryName:        branding.Registry.Name,
			RegistryCIN:         branding.Registry.CIN,
			RegistryGSTIN:       branding.Registry.GSTIN,
			RegistryEmail:       branding.Registry.Email,
			RegistryWebsite:     branding.Registry.Website,
			RegistryAddresses:   strings.Join(branding.Registry.Addresses, "\n"),
			RegistryPhones:      strings.Join(branding.Registry.Phones, "\n"),
			HasLogo:             branding.Logo != nil,
			HasHeaderImage:      branding.HeaderImage != nil,
			HasFooterImage:      branding.FooterImage != nil,
			HasStampSignature:   branding.StampSignature != nil,
		}

		component := templates.BrandingSettingsPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleBrandingUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(8 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("registry_name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Company name is required")
		}

		brandingCol, err := app.FindCollectionByNameOrId("branding_settings")
		if err != nil {
			log.Printf("branding_update: could not find branding_settings collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// Update the latest record in place, or create the first one.
		var rec *core.Record
		records, err := app.FindRecordsByFilter(brandingCol, "id != ''", "-created", 1, 0, nil)
		if err == nil && len(records) > 0 {
			rec = records[0]
		} else {
			rec = core.NewRecord(brandingCol)
		}

		rec.Set("header_text", strings.TrimSpace(e.Request.FormValue("header_text")))
		rec.Set("footer_text", strings.TrimSpace(e.Request.FormValue("footer_text")))
		rec.Set("brand_color", strings.TrimSpace(e.Request.FormValue("brand_color")))
		rec.Set("logo_background_color", strings.TrimSpace(e.Request.FormValue("logo_background_color")))

		registry := services.Registry{
			Name:      name,
			CIN:       strings.TrimSpace(e.Request.FormValue("registry_cin")),
			GSTIN:     strings.TrimSpace(e.Request.FormValue("registry_gstin")),
			Email:     strings.TrimSpace(e.Request.FormValue("registry_email")),
			Website:   strings.TrimSpace(e.Request.FormValue("registry_website")),
			Addresses: splitLines(e.Request.FormValue("registry_addresses")),
			Phones:    splitLines(e.Request.FormValue("registry_phones")),
		}
		rec.Set("registry", registry)

		for _, field := range []string{"logo", "header_image", "footer_image", "stamp_signature"} {
			encoded, err := readUploadedImage(e, field)
			if err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Uploaded "+field+" is not a usable image")
			}
			if encoded != "" {
				rec.Set(field, encoded)
			}
		}

		if err := app.Save(rec); err != nil {
			log.Printf("branding_update: could not save branding: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Branding saved")
		return redirectAfterWrite(e, "/settings/branding")
	}
}

// readUploadedImage returns the base64 payload of an uploaded image field,
// "" when the field was left empty, or an error when the upload is not a
// decodable image.
func readUploadedImage(e *core.RequestEvent, field string) (string, error) {
	file, _, err := e.Request.FormFile(field)
	if err != nil {
		return "", nil // field not submitted
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxBrandingImageBytes+1))
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}
	if len(raw) > maxBrandingImageBytes {
		return "", errors.New("image exceeds size limit")
	}

	resolved := services.ResolveBranding(&services.BrandingConfig{Logo: raw})
	if resolved.Logo == nil {
		return "", errors.New("not a decodable image")
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
