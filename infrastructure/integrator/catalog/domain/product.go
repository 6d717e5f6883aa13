package catalogdomain

// Product representa os metadados de um produto retornados pelo catálogo
type Product struct {
	ID       int    `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Category string `json:"category,omitempty"`
	Brand    string `json:"brand,omitempty"`
}

// SearchResponse é o formato de resposta do endpoint de busca do catálogo
type SearchResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
