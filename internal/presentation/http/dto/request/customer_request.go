package request

// CreateCustomerRequest represents a new customer. StateCode drives the
// CGST/SGST vs IGST split on delivery orders.
type CreateCustomerRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=255"`
	Phone     string `json:"phone" binding:"max=20"`
	StateCode string `json:"state_code" binding:"omitempty,len=2"`
}

// CreateTableRequest represents a new dining table
type CreateTableRequest struct {
	Code  string `json:"code" binding:"required,max=20"`
	Zone  string `json:"zone" binding:"max=100"`
	Seats int    `json:"seats" binding:"omitempty,min=1"`
}
