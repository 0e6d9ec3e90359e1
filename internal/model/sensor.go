package model

type Sensor struct {
	ID             int64        `db:"id" json:"id"`
	Type           string       `db:"tipo" json:"type"`
	Specifications *string      `db:"especificaciones" json:"specifications"`
	Status         ActiveStatus `db:"estado" json:"status"`
	ProductID      int64        `db:"producto_id" json:"product_id"`
}
