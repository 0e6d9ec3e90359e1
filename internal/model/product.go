package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"nombre" json:"name"`
	Description *string         `db:"descripcion" json:"description"`
	CategoryID  *int64          `db:"categoria_id" json:"category_id"` // Nullable, cleared when the category is deleted
	Price       decimal.Decimal `db:"precio" json:"price"`
	Stock       int             `db:"stock" json:"stock"`
	Status      ActiveStatus    `db:"estado" json:"status"`
	ReleaseDate *time.Time      `db:"fecha_lanzamiento" json:"release_date"`
	UpdatedAt   time.Time       `db:"ultima_actualizacion" json:"updated_at"` // Maintained by the database
	Category    *Category       `db:"-" json:"category"`                      // Joined data
}

// ProductDetail is a product together with every row that depends on it.
type ProductDetail struct {
	Product
	Sensors   []Sensor          `json:"sensors"`
	Tests     []QualityTest     `json:"tests"`
	Materials []ProductMaterial `json:"materials"`
}
