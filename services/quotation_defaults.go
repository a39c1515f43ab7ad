package services

import "github.com/google/uuid"

// Default section templates for the three quotation workflows. These are the
// fixed boilerplate blocks a new quotation starts from; the editor can then
// reorder, rewrite or remove them freely.

func defaultBankDetailsSection() Section {
	return Section{
		ID:      uuid.NewString(),
		Title:   "Bank Details",
		Type:    SectionTable,
		Headers: []string{"Particulars", "Details"},
		Rows: [][]string{
			{"Account Name", "RNS Fabricators & Engineers Pvt. Ltd."},
			{"Bank Name", "Yes Bank Ltd."},
			{"Branch", "Civil Lines, Nagpur"},
			{"Account Number", "073361900000733"},
			{"IFSC Code", "YESB0000733"},
			{"GSTIN", "27AAICR4785D1ZX"},
		},
	}
}

func defaultApplicableCodesSection() Section {
	return Section{
		ID:    uuid.NewString(),
		Title: "Applicable Codes & Standards",
		Type:  SectionList,
		Items: []string{
			"IS 800:2007 - General construction in steel, code of practice",
			"IS 2062:2011 - Hot rolled medium and high tensile structural steel",
			"IS 875 (Part 1-3) - Design loads for buildings and structures",
			"IS 1367 - Technical supply conditions for threaded steel fasteners",
			"IS 816:1969 - Code of practice for use of metal arc welding",
			"IS 1161 / IS 4923 - Steel tubes and hollow sections for structural purposes",
			"MBMA / AISC guidelines for pre-engineered building systems where applicable",
		},
	}
}

func defaultDesignLoadsSection() Section {
	return Section{
		ID:      uuid.NewString(),
		Title:   "Design Loads & Parameters",
		Type:    SectionTable,
		Headers: []string{"Sr. No.", "Parameter", "Value"},
		Rows: [][]string{
			{"1", "Dead Load", "Self weight of structure + collateral load 0.10 kN/sqm"},
			{"2", "Live Load", "0.57 kN/sqm on roof (as per IS 875 Part 2)"},
			{"3", "Wind Speed", "44 m/s basic wind speed (as per IS 875 Part 3)"},
			{"4", "Seismic Zone", "Zone II/III as per site location (IS 1893)"},
			{"5", "Deflection Limit", "Span/180 for roof members, Height/150 for columns"},
			{"6", "Crane Load", "As per client-supplied crane data, if applicable"},
		},
	}
}

func defaultCommercialTermsSection() Section {
	return Section{
		ID:      uuid.NewString(),
		Title:   "Commercial Terms & Conditions",
		Type:    SectionTable,
		Headers: []string{"Sr. No.", "Particulars", "Terms"},
		Rows: [][]string{
			{"1", "Payment Terms", "30% advance along with work order, 60% against pro-rata dispatch, 10% after erection completion"},
			{"2", "Taxes", "GST @ 18% extra as applicable"},
			{"3", "Transportation", "Included in quoted rates up to project site"},
			{"4", "Validity", "Offer valid for 30 days from the date of quotation"},
			{"5", "Delivery Period", "8-10 weeks from receipt of advance and approved drawings"},
			{"6", "Unloading at Site", "In client's scope including crane assistance"},
			{"7", "Water & Power", "To be provided by client at site free of cost"},
		},
	}
}

func defaultErectionScopeSection() Section {
	return Section{
		ID:    uuid.NewString(),
		Title: "Erection Scope",
		Type:  SectionList,
		Items: []string{
			"Erection of fabricated structural members at site using own tools and tackles",
			"Alignment, levelling and plumbing of columns and rafters",
			"Bolting and permanent connection of all members as per approved drawings",
			"Touch-up painting of erected structure at site",
			"Safety compliance for working at height as per site HSE norms",
		},
	}
}

func defaultExclusionsSection() Section {
	return Section{
		ID:    uuid.NewString(),
		Title: "Exclusions",
		Type:  SectionList,
		Items: []string{
			"Civil work, grouting and anchor bolt fixing",
			"Statutory approvals and local body permissions",
			"Fire fighting, electrical and plumbing works",
			"Any item not explicitly covered in the scope of work",
		},
	}
}

// supplyAndFabricationSections is the full template used for turnkey
// supply-and-fabrication offers. This workflow also gets an index page.
func supplyAndFabricationSections() []Section {
	return []Section{
		{
			ID:      uuid.NewString(),
			Title:   "Scope of Work - Supply & Fabrication",
			Type:    SectionTable,
			Headers: []string{"Sr. No.", "Description", "UOM", "Qty"},
			Rows: [][]string{
				{"1", "Design, supply, fabrication of primary structural members (columns, rafters, beams) in IS 2062 E250/E350 grade steel", "MT", "As per BOQ"},
				{"2", "Supply and fabrication of secondary members - purlins, girts, sag rods, bracings", "MT", "As per BOQ"},
				{"3", "Supply of anchor bolts, connection bolts (grade 8.8) and fasteners", "Lot", "1"},
				{"4", "Surface preparation and one coat of red oxide primer", "Sqm", "Full structure"},
				{"5", "Transportation of fabricated material to project site", "Trip", "As required"},
			},
		},
		defaultDesignLoadsSection(),
		defaultApplicableCodesSection(),
		{
			ID:      uuid.NewString(),
			Title:   "Commercial Price Schedule",
			Type:    SectionTable,
			Headers: []string{"Sr. No.", "Description", "UOM", "Qty", "Rate", "Amount"},
			Rows: [][]string{
				{"1", "Supply & fabrication of structural steel as per approved drawings", "Kg", "", "", ""},
				{"2", "Erection of fabricated structure at site", "Kg", "", "", ""},
			},
		},
		defaultErectionScopeSection(),
		defaultCommercialTermsSection(),
		defaultExclusionsSection(),
		defaultBankDetailsSection(),
	}
}

// structuralFabricationSections covers fabrication-only contracts where raw
// steel is arranged by RNS but design is client-supplied.
func structuralFabricationSections() []Section {
	return []Section{
		{
			ID:      uuid.NewString(),
			Title:   "Scope of Work - Structural Fabrication",
			Type:    SectionTable,
			Headers: []string{"Sr. No.", "Description", "UOM", "Qty"},
			Rows: [][]string{
				{"1", "Fabrication of structural steel members as per client-supplied design drawings", "MT", "As per BOQ"},
				{"2", "Shop welding, drilling and finishing of members", "MT", "As per BOQ"},
				{"3", "Surface preparation and one coat of red oxide primer", "Sqm", "Full structure"},
				{"4", "Loading and transportation to project site", "Trip", "As required"},
			},
		},
		defaultApplicableCodesSection(),
		{
			ID:      uuid.NewString(),
			Title:   "Commercial Price Schedule",
			Type:    SectionTable,
			Headers: []string{"Sr. No.", "Description", "UOM", "Qty", "Rate", "Amount"},
			Rows: [][]string{
				{"1", "Fabrication of structural steel including consumables", "Kg", "", "", ""},
			},
		},
		defaultCommercialTermsSection(),
		defaultExclusionsSection(),
		defaultBankDetailsSection(),
	}
}

// jobWorkSections covers labour-only job work on client-supplied steel.
func jobWorkSections() []Section {
	return []Section{
		{
			ID:      uuid.NewString(),
			Title:   "Scope of Work - Job Work",
			Type:    SectionTable,
			Headers: []string{"Sr. No.", "Description", "UOM", "Qty"},
			Rows: [][]string{
				{"1", "Fabrication job work on client-supplied raw steel as per drawings", "MT", "As per BOQ"},
				{"2", "Shop welding and finishing with RNS consumables", "MT", "As per BOQ"},
				{"3", "One coat of red oxide primer on finished members", "Sqm", "Full structure"},
			},
		},
		{
			ID:      uuid.NewString(),
			Title:   "Commercial Price Schedule",
			Type:    SectionTable,
			Headers: []string{"Sr. No.", "Description", "UOM", "Qty", "Rate", "Amount"},
			Rows: [][]string{
				{"1", "Job work charges for fabrication including consumables", "Kg", "", "", ""},
			},
		},
		defaultCommercialTermsSection(),
		defaultBankDetailsSection(),
	}
}

// DefaultSections returns the section template for a workflow. Unknown
// workflows fall back to the job-work template, the smallest shape.
func DefaultSections(w Workflow) []Section {
	switch w {
	case WorkflowSupplyAndFabrication:
		return supplyAndFabricationSections()
	case WorkflowStructuralFabrication:
		return structuralFabricationSections()
	default:
		return jobWorkSections()
	}
}
