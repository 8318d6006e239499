package domain

import "time"

type Category struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Order       int       `bson:"order" json:"order"`
	IsDefault   bool      `bson:"is_default" json:"is_default"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultCategory 永遠存在、排在第一位的預設分類
func DefaultCategory() Category {
	return Category{
		ID:          DefaultCategoryID,
		Name:        "Default",
		Description: "Domains without a category",
		Order:       0,
		IsDefault:   true,
	}
}
