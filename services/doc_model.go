package services

// Workflow is the contract type of a quotation. It determines which default
// section template a new quotation starts from and whether an index page is
// generated.
type Workflow string

const (
	WorkflowSupplyAndFabrication  Workflow = "supply_and_fabrication"
	WorkflowStructuralFabrication Workflow = "structural_fabrication"
	WorkflowJobWork               Workflow = "job_work"
)

// SectionType identifies how a quotation section's content is interpreted.
type SectionType string

const (
	SectionTable SectionType = "table"
	SectionList  SectionType = "list"
	SectionText  SectionType = "text"
	SectionMixed SectionType = "mixed"
)

// Section is one titled block of a quotation. Order within the sections
// slice determines page order and index ordering.
//
// For table sections, every row must have len(Headers) cells and
// ColumnWidths is aligned 1:1 with Headers (0 = auto width in mm).
type Section struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Type         SectionType `json:"type"`
	Headers      []string    `json:"headers,omitempty"`
	ColumnWidths []float64   `json:"columnWidths,omitempty"`
	Rows         [][]string  `json:"rows,omitempty"`
	Items        []string    `json:"items,omitempty"`
	Content      string      `json:"content,omitempty"`
}

// Quotation is one version of a commercial offer for a project. Multiple
// quotation records per project form a version history; the latest is
// max(Version).
type Quotation struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Version     int       `json:"version"`
	Status      string    `json:"status"` // draft | final
	Workflow    Workflow  `json:"workflow"`
	RefNo       string    `json:"refNo"`
	Date        string    `json:"date"`
	EnquiryNo   string    `json:"enquiryNo"`
	Location    string    `json:"location"`
	Subject     string    `json:"subject"`
	Salutation  string    `json:"salutation"`
	IntroText   string    `json:"introText"`
	IntroBody   string    `json:"introBody"`
	ClosingBody string    `json:"closingBody"`

	RecipientName    string `json:"recipientName"`
	RecipientCompany string `json:"recipientCompany"`
	RecipientAddress string `json:"recipientAddress"`

	PriceNotes  string `json:"priceNotes"`
	BankDetails string `json:"bankDetails"`

	RegardsName  string `json:"regardsName"`
	RegardsPhone string `json:"regardsPhone"`
	RegardsEmail string `json:"regardsEmail"`

	Sections      []Section `json:"sections"`
	DesignMockups []string  `json:"designMockups,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// TaxType selects the GST split applied to an invoice.
type TaxType string

const (
	TaxIntraState TaxType = "intra_state" // CGST + SGST
	TaxInterState TaxType = "inter_state" // IGST
)

// InvoiceLineItem is one billed line on a proforma invoice.
//
// RatePerKg and Percentage are kept as raw strings so partially typed user
// input survives an edit round-trip; computation parses them leniently
// (unparseable → 0). Amount is derived and never settable directly.
type InvoiceLineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	HSNCode     string  `json:"hsnCode"`
	Qty         float64 `json:"qty"`
	UOM         string  `json:"uom"`
	RatePerKg   string  `json:"ratePerKg"`
	Percentage  string  `json:"percentage"`
	Rate        string  `json:"rate"`
	Amount      float64 `json:"amount"`
}

// BankDetails is the structured beneficiary block printed on invoices.
type BankDetails struct {
	AccountName   string `json:"accountName"`
	Address       string `json:"address"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
}

// Invoice is a proforma invoice. Client fields are a denormalized copy taken
// at creation time so later client edits never alter an issued invoice.
type Invoice struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Version   int    `json:"version"`
	Status    string `json:"status"`
	PINo      string `json:"piNo"`
	Date      string `json:"date"`

	ClientName        string `json:"clientName"`
	RegisteredAddress string `json:"registeredAddress"`
	ConsigneeAddress  string `json:"consigneeAddress"`
	GSTIN             string `json:"gstin"`

	WONo            string `json:"woNo"`
	DispatchDetails string `json:"dispatchDetails"`

	Items   []InvoiceLineItem `json:"items"`
	TaxType TaxType           `json:"taxType"`

	BankDetails   BankDetails `json:"bankDetails"`
	RegardsName   string      `json:"regardsName"`
	AmountInWords string      `json:"amountInWords"`

	CreatedAt string `json:"createdAt"`
}

// Registry holds the company registration block printed when no header or
// footer image is configured.
type Registry struct {
	Name      string   `json:"name"`
	CIN       string   `json:"cin"`
	Email     string   `json:"email"`
	Website   string   `json:"website"`
	Addresses []string `json:"addresses"`
	Phones    []string `json:"phones"`
	GSTIN     string   `json:"gstin"`
}

// BrandingConfig is the process-wide letterhead configuration. Image fields
// hold raw encoded bytes (PNG/JPEG); a nil slice means "not configured" and
// the renderers synthesize a text band instead.
type BrandingConfig struct {
	Logo                []byte   `json:"-"`
	LogoBackgroundColor string   `json:"logoBackgroundColor"`
	HeaderImage         []byte   `json:"-"`
	FooterImage         []byte   `json:"-"`
	HeaderText          string   `json:"headerText"`
	FooterText          string   `json:"footerText"`
	StampSignature      []byte   `json:"-"`
	BrandColor          string   `json:"brandColor"`
	Registry            Registry `json:"registry"`
}

// ClientInfo is the read-only client lookup used when composing documents.
// A zero value renders as blank recipient fields.
type ClientInfo struct {
	ID            string
	Name          string
	Address       string
	GSTIN         string
	ContactPerson string
	Email         string
	Phone         string
}

// ProjectInfo is the read-only project lookup used when composing documents.
type ProjectInfo struct {
	ID       string
	ClientID string
	Name     string
	Location string
	Workflow Workflow
	Status   string
}

// WorkflowSuffix returns the reference-number suffix for a workflow.
// SupplyAndFabrication has no suffix.
func WorkflowSuffix(w Workflow) string {
	switch w {
	case WorkflowStructuralFabrication:
		return "SF"
	case WorkflowJobWork:
		return "JW"
	default:
		return ""
	}
}

// WorkflowLabel returns the human-readable workflow name.
func WorkflowLabel(w Workflow) string {
	switch w {
	case WorkflowSupplyAndFabrication:
		return "Supply & Fabrication"
	case WorkflowStructuralFabrication:
		return "Structural Fabrication"
	case WorkflowJobWork:
		return "Job Work"
	default:
		return string(w)
	}
}
