package models

// ShippingMethod enumerates the fixed shipping options. The zero value means
// no method has been chosen yet; it is distinct from free shipping, whose
// price happens to be 0.
type ShippingMethod string

const (
	ShippingNone    ShippingMethod = ""
	ShippingRegular ShippingMethod = "regular"
	ShippingExpress ShippingMethod = "express"
	ShippingFree    ShippingMethod = "free"
)

func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingRegular, ShippingExpress, ShippingFree:
		return true
	}
	return false
}

func (m ShippingMethod) Cost() int {
	switch m {
	case ShippingRegular:
		return 10000
	case ShippingExpress:
		return 20000
	default:
		return 0
	}
}

// Label is the name the upstream order endpoint expects.
func (m ShippingMethod) Label() string {
	switch m {
	case ShippingRegular:
		return "JNE REG"
	case ShippingExpress:
		return "JNE EXPRESS"
	case ShippingFree:
		return "FREE SHIPPING"
	default:
		return ""
	}
}

// PaymentChannel is one of the fixed bank transfer channels. The choice never
// affects the total.
type PaymentChannel string

const (
	PaymentBNI     PaymentChannel = "bni"
	PaymentBRI     PaymentChannel = "bri"
	PaymentBCA     PaymentChannel = "bca"
	PaymentMandiri PaymentChannel = "mandiri"
)

func (p PaymentChannel) Valid() bool {
	switch p {
	case PaymentBNI, PaymentBRI, PaymentBCA, PaymentMandiri:
		return true
	}
	return false
}

// CheckoutState tracks the composer's lifecycle for one submission attempt.
type CheckoutState string

const (
	CheckoutEditing    CheckoutState = "editing"
	CheckoutSubmitting CheckoutState = "submitting"
	CheckoutSucceeded  CheckoutState = "succeeded"
	CheckoutFailed     CheckoutState = "failed"
)

func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutSucceeded || s == CheckoutFailed
}

// CheckoutDraft is the checkout form as submitted by the storefront. It lives
// only for the duration of one submission attempt.
type CheckoutDraft struct {
	Name           string         `json:"name" validate:"required"`
	Phone          string         `json:"phone" validate:"required,min=10"`
	City           string         `json:"city" validate:"required"`
	Postal         string         `json:"postal" validate:"required,min=4"`
	Detail         string         `json:"detail" validate:"required,min=5"`
	ShippingMethod ShippingMethod `json:"shipping_method" validate:"required,oneof=regular express free"`
	PaymentChannel PaymentChannel `json:"payment_channel" validate:"omitempty,oneof=bni bri bca mandiri"`
}

// ---- upstream payload shapes (POST /orders/checkout) ----

type CheckoutAddress struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Address    string `json:"address"`
}

type UpstreamCheckoutRequest struct {
	Address         CheckoutAddress `json:"address"`
	ShippingMethod  string          `json:"shippingMethod"`
	SelectedItemIDs []int           `json:"selectedItemIds"`
}

type CheckoutEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
