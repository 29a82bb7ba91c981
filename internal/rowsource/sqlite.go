package rowsource

import (
	"context"
	"database/sql"
	"time"

	"sales-analytics/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite reads the entity tables from a SQLite database written by the
// ingestion layer. All access is read-only.
type SQLite struct {
	db *sql.DB
}

// Open connects to the database at dbPath and verifies it is reachable.
func Open(dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, accessErr("open", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, accessErr("open", err)
	}
	return &SQLite{db: db}, nil
}

// NewWithDB wraps an existing connection, mainly for tests.
func NewWithDB(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

const customersQuery = `
	SELECT customer_key, customer_number, first_name, last_name,
	       country, marital_status, gender, birthdate, create_date
	FROM customers
	ORDER BY customer_key`

func (s *SQLite) Customers(ctx context.Context) ([]model.Customer, error) {
	rows, err := s.db.QueryContext(ctx, customersQuery)
	if err != nil {
		return nil, accessErr("fetch customers", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		var firstName, lastName, country, marital, gender sql.NullString
		var birthdate, createDate sql.NullTime
		if err := rows.Scan(&c.Key, &c.Number, &firstName, &lastName,
			&country, &marital, &gender, &birthdate, &createDate); err != nil {
			return nil, accessErr("scan customer", err)
		}
		c.FirstName = firstName.String
		c.LastName = lastName.String
		c.Country = country.String
		c.MaritalStatus = marital.String
		c.Gender = gender.String
		c.Birthdate = timePtr(birthdate)
		c.CreateDate = timePtr(createDate)
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, accessErr("fetch customers", err)
	}
	return customers, nil
}

const productsQuery = `
	SELECT product_key, product_id, product_number, product_name,
	       category_id, category, subcategory, cost, product_line, start_date
	FROM products
	ORDER BY product_key`

func (s *SQLite) Products(ctx context.Context) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx, productsQuery)
	if err != nil {
		return nil, accessErr("fetch products", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		var number, name, categoryID, category, subcategory, line sql.NullString
		var cost sql.NullFloat64
		var startDate sql.NullTime
		if err := rows.Scan(&p.Key, &p.ID, &number, &name,
			&categoryID, &category, &subcategory, &cost, &line, &startDate); err != nil {
			return nil, accessErr("scan product", err)
		}
		p.Number = number.String
		p.Name = name.String
		p.CategoryID = categoryID.String
		p.Category = category.String
		p.Subcategory = subcategory.String
		p.Cost = cost.Float64
		p.ProductLine = line.String
		p.StartDate = timePtr(startDate)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, accessErr("fetch products", err)
	}
	return products, nil
}

const salesQuery = `
	SELECT order_number, product_key, customer_key, order_date,
	       shipping_date, due_date, sales_amount, quantity, price
	FROM sales`

func (s *SQLite) Sales(ctx context.Context, r *DateRange) ([]model.SaleLine, error) {
	query := salesQuery
	args := []interface{}{}
	if r != nil {
		query += ` WHERE order_date >= ? AND order_date <= ?`
		args = append(args, r.From, r.To)
	}
	query += ` ORDER BY order_number, product_key`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, accessErr("fetch sales", err)
	}
	defer rows.Close()

	sales := []model.SaleLine{}
	for rows.Next() {
		var l model.SaleLine
		var orderDate, shippingDate, dueDate sql.NullTime
		var amount, price sql.NullFloat64
		var quantity sql.NullInt64
		if err := rows.Scan(&l.OrderNumber, &l.ProductKey, &l.CustomerKey,
			&orderDate, &shippingDate, &dueDate, &amount, &quantity, &price); err != nil {
			return nil, accessErr("scan sale", err)
		}
		l.OrderDate = timePtr(orderDate)
		l.ShippingDate = timePtr(shippingDate)
		l.DueDate = timePtr(dueDate)
		l.Sales = amount.Float64
		l.Quantity = int(quantity.Int64)
		l.Price = price.Float64
		sales = append(sales, l)
	}
	if err := rows.Err(); err != nil {
		return nil, accessErr("fetch sales", err)
	}
	return sales, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
