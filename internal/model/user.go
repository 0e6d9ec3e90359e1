package model

import "time"

type User struct {
	ID           int64        `db:"id" json:"id"`
	Name         string       `db:"nombre" json:"name"`
	Email        string       `db:"email" json:"email"`
	Phone        *string      `db:"telefono" json:"phone"`
	Address      *string      `db:"direccion" json:"address"`
	Status       ActiveStatus `db:"estado" json:"status"`
	RegisteredAt time.Time    `db:"fecha_registro" json:"registered_at"`
}
