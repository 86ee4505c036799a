package dto

// SpecialtyResponse is one row of the specialty list or a search result.
type SpecialtyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SearchSpecialtiesRequest is the body of POST /api/specialties/search.
type SearchSpecialtiesRequest struct {
	Input string `json:"input"`
}

// AddSpecialtyRequest is the body of POST /api/specialties.
type AddSpecialtyRequest struct {
	Name string `json:"name"`
}

// AddSpecialtyResponse wraps the inserted row.
type AddSpecialtyResponse struct {
	Success bool                `json:"success"`
	Data    []SpecialtyResponse `json:"data"`
}

// SimilarSpecialtiesRequest is the body of POST /api/specialties/similar.
type SimilarSpecialtiesRequest struct {
	InputName string `json:"input_name"`
	NumRows   int    `json:"num_rows,omitempty"`
}

// MatchResponse is one ranked neighbour.
type MatchResponse struct {
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
