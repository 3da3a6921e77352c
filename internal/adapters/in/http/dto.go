package http

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CartItemResponse is one cart line as presented to clients.
// Updating and Removing report whether an operation is currently in flight
// for this line, so clients can disable the matching controls.
type CartItemResponse struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"priceDisplay"`
	Quantity     int     `json:"quantity"`
	Size         string  `json:"size,omitempty"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Updating     bool    `json:"updating"`
	Removing     bool    `json:"removing"`
}

// CartResponse is the full cart view.
type CartResponse struct {
	Items           []CartItemResponse `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotalDisplay"`
	TotalItemCount  int                `json:"totalItemCount"`
}

// UpdateQuantityRequest carries the new quantity for one cart line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// MeasurementResponse is one measurement profile available for selection.
type MeasurementResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddressRequest carries the delivery address fields collected at Details.
// AddressLine2 and Country are optional; Country defaults to India.
type AddressRequest struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// SelectMeasurementRequest carries the chosen measurement profile identifier.
type SelectMeasurementRequest struct {
	MeasurementID string `json:"measurementId"`
}

// AddressResponse mirrors the address as stored in the session.
type AddressResponse struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// CheckoutResponse is the current state of the checkout flow.
type CheckoutResponse struct {
	Stage           string             `json:"stage"`
	Address         AddressResponse    `json:"address"`
	MeasurementID   string             `json:"measurementId,omitempty"`
	Items           []CartItemResponse `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotalDisplay"`
	CanAdvance      bool               `json:"canAdvance"`
}
