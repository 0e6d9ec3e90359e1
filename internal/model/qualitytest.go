package model

import "time"

// QualityTest is a row of pruebas.
type QualityTest struct {
	ID          int64      `db:"id" json:"id"`
	ProductID   int64      `db:"producto_id" json:"product_id"`
	Description *string    `db:"descripcion" json:"description"`
	Results     *string    `db:"resultados" json:"results"`
	Status      TestStatus `db:"estado" json:"status"`
	Date        time.Time  `db:"fecha" json:"date"`
}
