package model

import "time"

// Customer is a cleaned customer dimension row as delivered by the
// ingestion layer. Key is unique and never reused.
type Customer struct {
	Key           int        `json:"customer_key"`
	Number        string     `json:"customer_number"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Country       string     `json:"country"`
	MaritalStatus string     `json:"marital_status"`
	Gender        string     `json:"gender"`
	Birthdate     *time.Time `json:"birthdate,omitempty"`
	CreateDate    *time.Time `json:"create_date,omitempty"`
}

// FullName joins first and last name for report output.
func (c *Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Product is a product dimension row. Cost is the maintenance cost
// used for cost segmentation.
type Product struct {
	Key         int        `json:"product_key"`
	ID          int        `json:"product_id"`
	Number      string     `json:"product_number"`
	Name        string     `json:"product_name"`
	CategoryID  string     `json:"category_id"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory"`
	Cost        float64    `json:"cost"`
	ProductLine string     `json:"product_line"`
	StartDate   *time.Time `json:"start_date,omitempty"`
}

// SaleLine is a single line of an order. Orders with several products
// share an OrderNumber; ProductKey and CustomerKey reference the
// dimension rows above.
type SaleLine struct {
	OrderNumber  string     `json:"order_number"`
	ProductKey   int        `json:"product_key"`
	CustomerKey  int        `json:"customer_key"`
	OrderDate    *time.Time `json:"order_date,omitempty"`
	ShippingDate *time.Time `json:"shipping_date,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Sales        float64    `json:"sales_amount"`
	Quantity     int        `json:"quantity"`
	Price        float64    `json:"price"`
}
