package domain

type ProductStatus int

const (
	ProductOffSale ProductStatus = 0
	ProductOnSale  ProductStatus = 1
)

// Product is a catalogue item.
type Product struct {
	Entity      `bson:",inline"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64       `json:"price" bson:"price"`
	Stock       int           `json:"stock" bson:"stock"`
	CategoryID  int64         `json:"categoryId,omitempty" bson:"category_id,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	Status      ProductStatus `json:"status" bson:"status"`
	SalesCount  int           `json:"salesCount" bson:"sales_count"`
}
