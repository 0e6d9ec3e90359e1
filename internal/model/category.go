package model

type Category struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"nombre" json:"name"`
	Description *string `db:"descripcion" json:"description"`
}
