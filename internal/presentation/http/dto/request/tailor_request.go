package request

// UpdateTailorRequest represents the update shop profile request body. All
// fields are optional; absent fields are left unchanged.
type UpdateTailorRequest struct {
	ShopName          string  `json:"shop_name"`
	Phone             *string `json:"phone"`
	Street            *string `json:"street"`
	City              *string `json:"city"`
	Bio               *string `json:"bio"`
	Services          *string `json:"services"`
	DeliveryAvailable *bool   `json:"delivery_available"`
	LogoPath          *string `json:"logo_path"`
	TermsText         *string `json:"terms_text"`
}
