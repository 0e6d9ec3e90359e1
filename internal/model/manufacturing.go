package model

import "time"

// Manufacturing is a production batch of a product built by a supplier.
type Manufacturing struct {
	ID         int64     `db:"id" json:"id"`
	SupplierID int64     `db:"proveedor_id" json:"supplier_id"`
	ProductID  int64     `db:"producto_id" json:"product_id"`
	Quantity   int       `db:"cantidad" json:"quantity"`
	Date       time.Time `db:"fecha" json:"date"`
}

// ManufacturingTotal is the quantity of one product built by one supplier
// across all of its batches.
type ManufacturingTotal struct {
	ProductID   int64  `db:"producto_id" json:"product_id"`
	ProductName string `db:"producto_nombre" json:"product_name"`
	Batches     int    `db:"lotes" json:"batches"`
	Quantity    int    `db:"cantidad" json:"quantity"`
}
