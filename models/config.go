package models

// ActionText holds the copy-text overrides a vertical can set in its
// configuration record. Every field has a declared default; defaults are
// applied once when the configuration is loaded, not at render time.
type ActionText struct {
	HeaderText                 string `json:"headerText"`
	FooterText                 string `json:"footerText"`
	WelcomeText                string `json:"welcomeText"`
	InstructionText            string `json:"instructionText"`
	VerifyText                 string `json:"verifyText"`
	InitiateOrderText          string `json:"initiateOrderText"`
	VerifyPaymentText          string `json:"verifyPaymentText"`
	HomeText                   string `json:"homeText"`
	ProductLabel               string `json:"productLabel"`
	SerialLabel                string `json:"serialLabel"`
	StatusLabel                string `json:"statusLabel"`
	AmountLabel                string `json:"amountLabel"`
	StatusHeader               string `json:"statusHeader"`
	DetailsTitle               string `json:"detailsTitle"`
	ConfirmThankYouText        string `json:"confirmThankYouText"`
	ConfirmOrderProcessedText  string `json:"confirmOrderProcessedText"`
	ConfirmOrderIDText         string `json:"confirmOrderIDText"`
	ConfirmTotalPriceText      string `json:"confirmTotalPriceText"`
	ConfirmCompletePaymentText string `json:"confirmCompletePaymentText"`
	PaymentLinkMessage         string `json:"paymentLinkMessage"`
}

// OrderPageElements holds the copy for the order form page.
type OrderPageElements struct {
	PageTitle        string `json:"pageTitle"`
	HeaderText       string `json:"headerText"`
	InstructionText  string `json:"instructionText"`
	FirstNameLabel   string `json:"firstNameLabel"`
	LastNameLabel    string `json:"lastNameLabel"`
	ProductLabel     string `json:"productLabel"`
	SubmitButtonText string `json:"submitButtonText"`
}

// CurrentStatusElements holds the copy for the current-status page.
type CurrentStatusElements struct {
	Title string `json:"title"`
}

// VerticalConfig is the fully resolved configuration for the active
// vertical: copy text with defaults applied plus the parsed product
// catalog. It is rebuilt from the record store on every request.
type VerticalConfig struct {
	Vertical      string
	ActionText    ActionText
	OrderPage     OrderPageElements
	CurrentStatus CurrentStatusElements
	Products      *ProductCatalog
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// ApplyDefaults fills every empty copy field with its default string.
func (a *ActionText) ApplyDefaults() {
	a.HeaderText = orDefault(a.HeaderText, "Default Header")
	a.FooterText = orDefault(a.FooterText, "Default Footer Text")
	a.WelcomeText = orDefault(a.WelcomeText, "Welcome")
	a.InstructionText = orDefault(a.InstructionText, "Select an option to get started:")
	a.VerifyText = orDefault(a.VerifyText, "Verify")
	a.InitiateOrderText = orDefault(a.InitiateOrderText, "Initiate Order")
	a.VerifyPaymentText = orDefault(a.VerifyPaymentText, "Verify Payment")
	a.HomeText = orDefault(a.HomeText, "Home")
	a.ProductLabel = orDefault(a.ProductLabel, "Product ID")
	a.SerialLabel = orDefault(a.SerialLabel, "Serial Number")
	a.StatusLabel = orDefault(a.StatusLabel, "Status")
	a.AmountLabel = orDefault(a.AmountLabel, "Total Amount")
	a.StatusHeader = orDefault(a.StatusHeader, "Status Details")
	a.DetailsTitle = orDefault(a.DetailsTitle, "Details")
	a.ConfirmThankYouText = orDefault(a.ConfirmThankYouText, "Thank you,")
	a.ConfirmOrderProcessedText = orDefault(a.ConfirmOrderProcessedText, "Your order for the product has been successfully processed.")
	a.ConfirmOrderIDText = orDefault(a.ConfirmOrderIDText, "Order ID:")
	a.ConfirmTotalPriceText = orDefault(a.ConfirmTotalPriceText, "Total Price:")
	a.ConfirmCompletePaymentText = orDefault(a.ConfirmCompletePaymentText, "Complete Payment")
	a.PaymentLinkMessage = orDefault(a.PaymentLinkMessage, "Thank you for your order. We have generated a secure payment link for you: {{paymentLink}}")
}

// ApplyDefaults fills every empty order-page field with its default string.
func (o *OrderPageElements) ApplyDefaults() {
	o.PageTitle = orDefault(o.PageTitle, "Order Your Product")
	o.HeaderText = orDefault(o.HeaderText, "Retail Services - Order Your Product")
	o.InstructionText = orDefault(o.InstructionText, "Please fill out the details below to initiate your order.")
	o.FirstNameLabel = orDefault(o.FirstNameLabel, "First Name")
	o.LastNameLabel = orDefault(o.LastNameLabel, "Last Name")
	o.ProductLabel = orDefault(o.ProductLabel, "Product")
	o.SubmitButtonText = orDefault(o.SubmitButtonText, "Submit Order")
}

// ApplyDefaults fills every empty status-page field with its default string.
func (s *CurrentStatusElements) ApplyDefaults() {
	s.Title = orDefault(s.Title, "Current Status")
}
