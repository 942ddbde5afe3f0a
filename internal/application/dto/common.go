package dto

// Pagination metadati di pagina nelle risposte di listato.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination costruisce i metadati a partire da pagina, limite e totale.
func NewPagination(page, limit, total int) Pagination {
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	totalPages := (total + limit - 1) / limit
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// BrandMissingLabel etichetta di presentazione per un brand non riconosciuto.
// Le entità memorizzano la stringa vuota; "Unknown" esiste solo qui, al
// confine di presentazione.
const BrandMissingLabel = "Unknown"

// DisplayBrand applica l'etichetta di presentazione a un brand vuoto.
func DisplayBrand(brand string) string {
	if brand == "" {
		return BrandMissingLabel
	}
	return brand
}
