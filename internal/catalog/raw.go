package catalog

// RawProduct is the decoded product record as it travels over the wire. The
// three variant representations arrive in separate optional field groups;
// Normalize picks exactly one.
type RawProduct struct {
	ID          uint   `json:"id"`
	Name        string `json:"pname"`
	Description string `json:"pdescription"`

	Price         float64  `json:"price"`
	FinalPrice    *float64 `json:"final_price,omitempty"`
	OriginalPrice *float64 `json:"original_price,omitempty"`

	Category    string  `json:"category,omitempty"`
	Subcategory string  `json:"subcategory,omitempty"`
	Rating      float64 `json:"rating,omitempty"`

	IsCODAvailable bool `json:"is_cod_available,omitempty"`

	Colors   []RawColor   `json:"colors,omitempty"`
	Variants []RawVariant `json:"variants,omitempty"`

	Color          string         `json:"color,omitempty"`
	Sizes          map[string]int `json:"sizes,omitempty"`
	AvailableSizes []string       `json:"available_sizes,omitempty"`

	Image  string   `json:"image,omitempty"`
	Images []string `json:"images,omitempty"`
}

// RawColor is one entry of the wire color model.
type RawColor struct {
	ID         uint           `json:"id"`
	Name       string         `json:"name"`
	Sizes      []string       `json:"sizes"`
	SizeCounts map[string]int `json:"sizeCounts"`
	Images     []string       `json:"images"`
}

// RawVariant is one entry of the wire legacy variant model. IsAvailable is a
// tri-state: nil means available.
type RawVariant struct {
	ID        uint   `json:"id"`
	Color     string `json:"color"`
	ColorCode string `json:"color_code,omitempty"`
	Size      string `json:"size"`
	Stock     int    `json:"stock"`

	Price         *float64 `json:"price,omitempty"`
	FinalPrice    *float64 `json:"final_price,omitempty"`
	OriginalPrice *float64 `json:"original_price,omitempty"`

	Image  string   `json:"image,omitempty"`
	Images []string `json:"images,omitempty"`

	IsAvailable *bool `json:"is_available,omitempty"`
}
