package domain

// Activity é um evento de engajamento (ligação, e-mail) vinculado a uma
// oportunidade.
type Activity struct {
	ActivityID string `json:"activity_id"`
	DealID     string `json:"deal_id"`
	Type       string `json:"type"`
	Timestamp  Date   `json:"timestamp"`
}
