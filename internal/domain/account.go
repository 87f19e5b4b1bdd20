package domain

// Account é a conta (cliente) dona das oportunidades.
type Account struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Industry  string `json:"industry"`
	Segment   string `json:"segment"`
}
