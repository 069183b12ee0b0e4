package template

import "brokerdoc/internal/domain"

func fptr(f float64) *float64 { return &f }

// OntarioPurchaseAgreementFields declares the field schema for the OREA
// Agreement of Purchase and Sale.
var OntarioPurchaseAgreementFields = []domain.TemplateField{
	// Property Information
	{
		Name:        "property_address",
		Label:       "Property Address",
		Type:        domain.FieldAddress,
		Description: "Full legal address of the property being purchased",
		Placeholder: "123 Main Street, Toronto, ON M5V 3A8",
		Validation:  domain.FieldValidation{Required: true, MinLength: 10},
	},
	{
		Name:        "legal_description",
		Label:       "Legal Description",
		Type:        domain.FieldText,
		Description: "Legal description and PIN number",
		Placeholder: "PIN 12345-6789 (LT)",
	},

	// Financial Information
	{
		Name:        "purchase_price",
		Label:       "Purchase Price",
		Type:        domain.FieldCurrency,
		Description: "Total purchase price for the property",
		Placeholder: "800000",
		Validation:  domain.FieldValidation{Required: true, MinValue: fptr(1000)},
	},
	{
		Name:        "deposit_amount",
		Label:       "Deposit Amount",
		Type:        domain.FieldCurrency,
		Description: "Initial deposit amount",
		Placeholder: "40000",
		Validation:  domain.FieldValidation{Required: true, MinValue: fptr(1000)},
	},
	{
		Name:        "deposit_due_date",
		Label:       "Deposit Due Date",
		Type:        domain.FieldDate,
		Description: "When the deposit must be paid",
		Placeholder: "YYYY-MM-DD",
		Validation:  domain.FieldValidation{Required: true},
	},
	{
		Name:        "balance_due_date",
		Label:       "Balance Due on Closing",
		Type:        domain.FieldDate,
		Description: "Closing date when balance is due",
		Placeholder: "YYYY-MM-DD",
		Validation:  domain.FieldValidation{Required: true},
	},

	// Buyer Information
	{
		Name:        "buyer_full_name",
		Label:       "Buyer Full Name",
		Type:        domain.FieldText,
		Description: "Full legal name of the buyer(s)",
		Placeholder: "John Smith and Jane Smith",
		Validation:  domain.FieldValidation{Required: true, MinLength: 2},
	},
	{
		Name:        "buyer_address",
		Label:       "Buyer Address",
		Type:        domain.FieldAddress,
		Description: "Current address of the buyer",
		Placeholder: "456 Current St, Toronto, ON M1A 2B3",
		Validation:  domain.FieldValidation{Required: true},
	},
	{
		Name:        "buyer_phone",
		Label:       "Buyer Phone",
		Type:        domain.FieldPhone,
		Description: "Primary phone number for buyer",
		Placeholder: "(416) 555-0123",
		Validation:  domain.FieldValidation{Required: true},
	},
	{
		Name:        "buyer_email",
		Label:       "Buyer Email",
		Type:        domain.FieldEmail,
		Description: "Email address for buyer",
		Placeholder: "buyer@example.com",
		Validation:  domain.FieldValidation{Required: true},
	},

	// Seller Information
	{
		Name:        "seller_full_name",
		Label:       "Seller Full Name",
		Type:        domain.FieldText,
		Description: "Full legal name of the seller(s)",
		Placeholder: "Robert Johnson and Mary Johnson",
		Validation:  domain.FieldValidation{Required: true, MinLength: 2},
	},
	{
		Name:        "seller_address",
		Label:       "Seller Address",
		Type:        domain.FieldAddress,
		Description: "Current address of the seller",
		Placeholder: "Same as property address or different",
		Validation:  domain.FieldValidation{Required: true},
	},
	{
		Name:        "seller_phone",
		Label:       "Seller Phone",
		Type:        domain.FieldPhone,
		Description: "Primary phone number for seller",
		Placeholder: "(416) 555-0456",
		Validation:  domain.FieldValidation{Required: true},
	},
	{
		Name:        "seller_email",
		Label:       "Seller Email",
		Type:        domain.FieldEmail,
		Description: "Email address for seller",
		Placeholder: "seller@example.com",
		Validation:  domain.FieldValidation{Required: true},
	},

	// Agent Information
	{
		Name:        "buyer_agent_name",
		Label:       "Buyer's Agent Name",
		Type:        domain.FieldText,
		Description: "Name of the buying agent",
		Placeholder: "Agent Name",
	},
	{
		Name:        "buyer_agent_brokerage",
		Label:       "Buyer's Agent Brokerage",
		Type:        domain.FieldText,
		Description: "Brokerage representing the buyer",
		Placeholder: "ABC Realty Inc.",
	},
	{
		Name:        "seller_agent_name",
		Label:       "Seller's Agent Name",
		Type:        domain.FieldText,
		Description: "Name of the listing agent",
		Placeholder: "Agent Name",
	},
	{
		Name:        "seller_agent_brokerage",
		Label:       "Seller's Agent Brokerage",
		Type:        domain.FieldText,
		Description: "Brokerage representing the seller",
		Placeholder: "XYZ Realty Ltd.",
	},

	// Conditions and Contingencies
	{
		Name:        "financing_condition",
		Label:       "Financing Condition",
		Type:        domain.FieldBoolean,
		Description: "Subject to buyer obtaining financing",
		Placeholder: "true",
	},
	{
		Name:        "financing_deadline",
		Label:       "Financing Condition Deadline",
		Type:        domain.FieldDate,
		Description: "Deadline for financing condition",
		Placeholder: "YYYY-MM-DD",
	},
	{
		Name:        "inspection_condition",
		Label:       "Home Inspection Condition",
		Type:        domain.FieldBoolean,
		Description: "Subject to satisfactory home inspection",
		Placeholder: "true",
	},
	{
		Name:        "inspection_deadline",
		Label:       "Inspection Condition Deadline",
		Type:        domain.FieldDate,
		Description: "Deadline for inspection condition",
		Placeholder: "YYYY-MM-DD",
	},
	{
		Name:        "status_certificate_condition",
		Label:       "Status Certificate Condition (Condo)",
		Type:        domain.FieldBoolean,
		Description: "Subject to review of status certificate",
		Placeholder: "false",
	},

	// Additional Terms
	{
		Name:        "inclusions",
		Label:       "Inclusions",
		Type:        domain.FieldText,
		Description: "Items included with the sale",
		Placeholder: "All existing light fixtures, window coverings, built-in appliances...",
		Validation:  domain.FieldValidation{MaxLength: 500},
	},
	{
		Name:        "exclusions",
		Label:       "Exclusions",
		Type:        domain.FieldText,
		Description: "Items excluded from the sale",
		Placeholder: "Dining room chandelier, basement freezer...",
		Validation:  domain.FieldValidation{MaxLength: 200},
	},
	{
		Name:        "additional_terms",
		Label:       "Additional Terms",
		Type:        domain.FieldText,
		Description: "Any additional terms and conditions",
		Placeholder: "Any special conditions or agreements...",
		Validation:  domain.FieldValidation{MaxLength: 1000},
	},

	// Dates
	{
		Name:        "irrevocable_date",
		Label:       "Irrevocable Date",
		Type:        domain.FieldDate,
		Description: "Date the offer remains open until",
		Placeholder: "YYYY-MM-DD",
		Validation:  domain.FieldValidation{Required: true},
	},
	{
		Name:        "irrevocable_time",
		Label:       "Irrevocable Time",
		Type:        domain.FieldText,
		Description: "Time the offer expires",
		Placeholder: "23:59",
		Validation:  domain.FieldValidation{Required: true, Pattern: `^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`},
	},
}

// OntarioPurchaseAgreement returns the published Ontario Agreement of
// Purchase and Sale template definition. ID and timestamps are assigned at
// seed time.
func OntarioPurchaseAgreement() domain.DocumentTemplate {
	var required, optional domain.FieldList
	for _, f := range OntarioPurchaseAgreementFields {
		if f.Validation.Required {
			required = append(required, f)
		} else {
			optional = append(optional, f)
		}
	}
	return domain.DocumentTemplate{
		Name:           "Ontario Agreement of Purchase and Sale",
		Type:           domain.TemplatePurchaseAgreement,
		Region:         "ontario",
		Version:        "2024.1",
		Description:    "Standard OREA Agreement of Purchase and Sale for residential properties in Ontario",
		PDFFormURL:     "https://brokerdoc-templates.s3.ca-central-1.amazonaws.com/ontario-purchase-agreement-2024.pdf",
		RequiredFields: required,
		OptionalFields: optional,
		IsActive:       true,
	}
}
