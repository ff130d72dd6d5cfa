package models

// Response is the body returned for errors and confirmation messages.
// Detalle carries the underlying error text when there is one.
type Response struct {
	Mensaje string `json:"mensaje"`
	Detalle string `json:"detalle,omitempty"`
}
