package domain

// Rep é um vendedor responsável por oportunidades.
type Rep struct {
	RepID string `json:"rep_id"`
	Name  string `json:"name"`
}
