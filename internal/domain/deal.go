package domain

// Estágios terminais de uma oportunidade. Qualquer outro valor de stage
// representa uma oportunidade em aberto.
const (
	StageClosedWon  = "Closed Won"
	StageClosedLost = "Closed Lost"
)

// Deal representa uma oportunidade de venda do CRM. Amount e ClosedAt são
// opcionais: quando ausentes a oportunidade é excluída das agregações que
// dependem deles, nunca tratada como erro.
type Deal struct {
	DealID    string   `json:"deal_id"`
	AccountID string   `json:"account_id"`
	RepID     string   `json:"rep_id"`
	Stage     string   `json:"stage"`
	Amount    *float64 `json:"amount"`
	CreatedAt Date     `json:"created_at"`
	ClosedAt  *Date    `json:"closed_at"`
}

func (d Deal) IsClosed() bool {
	return d.Stage == StageClosedWon || d.Stage == StageClosedLost
}

func (d Deal) IsOpen() bool {
	return !d.IsClosed()
}

func (d Deal) IsWon() bool {
	return d.Stage == StageClosedWon
}

// AmountOrZero trata valor ausente como zero nas somas.
func (d Deal) AmountOrZero() float64 {
	if d.Amount == nil {
		return 0
	}
	return *d.Amount
}
