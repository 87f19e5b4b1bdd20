package domain

// Dataset agrupa as cinco coleções carregadas uma única vez na inicialização.
// O agregado é somente leitura: o motor de análise nunca cria, altera ou
// remove registros, apenas recalcula a cada chamada a partir dele.
type Dataset struct {
	Deals      []Deal
	Targets    []Target
	Reps       []Rep
	Activities []Activity
	Accounts   []Account
}
