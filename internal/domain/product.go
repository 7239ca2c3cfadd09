package domain

type Category string

const (
	CategoryPowder Category = "powder"
	CategoryMalt   Category = "malt"
	CategoryDosa   Category = "dosa"
)

// Product is an immutable catalog record. Prices are whole rupees.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"original_price,omitempty"` // 0 means no strike-through price
	Weight        string   `json:"weight"`
	Category      Category `json:"category"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Benefits      []string `json:"benefits"`
	Ingredients   []string `json:"ingredients"`
	Usage         string   `json:"usage"`
}
