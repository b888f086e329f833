package db

import (
	"context"
	"database/sql"
	"fmt"

	"bespokedbikes/internal/utils"
)

// Table is one DDL statement of the schema.
type Table struct {
	Name   string
	Create string
}

// Schema lists the tables in creation order. References between tables are
// indexed but not constrained, so a dangling id reads back as a missing
// relation instead of blocking deletes.
var Schema = []Table{
	{Name: "products", Create: `CREATE TABLE IF NOT EXISTS products (
	product_id BIGINT NOT NULL AUTO_INCREMENT,
	name VARCHAR(100) NULL,
	manufacturer VARCHAR(100) NULL,
	style VARCHAR(50) NULL,
	purchase_price INT NOT NULL DEFAULT 0,
	sale_price INT NOT NULL DEFAULT 0,
	quantity_on_hand INT NOT NULL DEFAULT 0,
	commission_percentage INT NOT NULL DEFAULT 0,
	PRIMARY KEY (product_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{Name: "salespersons", Create: `CREATE TABLE IF NOT EXISTS salespersons (
	salesperson_id BIGINT NOT NULL AUTO_INCREMENT,
	first_name VARCHAR(100) NULL,
	last_name VARCHAR(100) NULL,
	address1 VARCHAR(200) NULL,
	address2 VARCHAR(200) NULL,
	city VARCHAR(100) NULL,
	state VARCHAR(50) NULL,
	postal_code VARCHAR(20) NULL,
	phone_number VARCHAR(30) NULL,
	start_date DATETIME NULL,
	termination_date DATETIME NULL,
	manager VARCHAR(100) NULL,
	PRIMARY KEY (salesperson_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{Name: "customers", Create: `CREATE TABLE IF NOT EXISTS customers (
	customer_id BIGINT NOT NULL AUTO_INCREMENT,
	first_name VARCHAR(100) NULL,
	last_name VARCHAR(100) NULL,
	address1 VARCHAR(200) NULL,
	address2 VARCHAR(200) NULL,
	city VARCHAR(100) NULL,
	state VARCHAR(50) NULL,
	postal_code VARCHAR(20) NULL,
	phone_number VARCHAR(30) NULL,
	start_date DATETIME NULL,
	PRIMARY KEY (customer_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{Name: "sales", Create: `CREATE TABLE IF NOT EXISTS sales (
	sale_id BIGINT NOT NULL AUTO_INCREMENT,
	product_id BIGINT NOT NULL,
	salesperson_id BIGINT NOT NULL,
	customer_id BIGINT NOT NULL,
	sale_date DATETIME NULL,
	PRIMARY KEY (sale_id),
	KEY idx_sales_product (product_id),
	KEY idx_sales_salesperson (salesperson_id),
	KEY idx_sales_customer (customer_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{Name: "discounts", Create: `CREATE TABLE IF NOT EXISTS discounts (
	discount_id BIGINT NOT NULL AUTO_INCREMENT,
	product_id BIGINT NOT NULL,
	begin_date DATETIME NULL,
	end_date DATETIME NULL,
	discount_percentage DECIMAL(5,4) NULL,
	PRIMARY KEY (discount_id),
	KEY idx_discounts_product (product_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// Migrate creates every missing table and returns the names it created.
func Migrate(ctx context.Context, db *sql.DB) ([]string, error) {
	created := []string{}
	for _, t := range Schema {
		if HasTable(ctx, db, t.Name) {
			continue
		}
		if _, err := db.ExecContext(ctx, t.Create); err != nil {
			return created, fmt.Errorf("create table %s: %w", t.Name, err)
		}
		created = append(created, t.Name)
		utils.InfoWithFields("table created", utils.Fields{"table": t.Name})
	}
	return created, nil
}
