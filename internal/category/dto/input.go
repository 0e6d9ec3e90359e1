package dto

type CreateCategoryInput struct {
	Name        string `db:"nombre" validate:"required,max=100"`
	Description *string
}

type UpdateCategoryInput struct {
	ID          int64
	Name        string `db:"nombre" validate:"required,max=100"`
	Description *string
}
