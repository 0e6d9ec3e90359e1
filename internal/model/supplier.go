package model

import "time"

type Supplier struct {
	ID           int64        `db:"id" json:"id"`
	Name         string       `db:"nombre" json:"name"`
	Contact      *string      `db:"contacto" json:"contact"`
	Address      *string      `db:"direccion" json:"address"`
	Status       ActiveStatus `db:"estado" json:"status"`
	RegisteredAt time.Time    `db:"fecha_registro" json:"registered_at"`
}
