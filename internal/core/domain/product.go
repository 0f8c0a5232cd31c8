package domain

// Product is the normalized view of a catalog record. The catalog is
// read-only from the gateway's perspective.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	Sizes       []string `json:"sizes,omitempty"`
}
