package models

// RespostaServico é o formato uniforme de resultado da camada de dados:
// nenhuma operação propaga erro; falhas viram Success=false com a mensagem
// do backend. ID carrega o identificador gerado na criação.
type RespostaServico[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	ID      string `json:"id,omitempty"`
}

// RespostaOK monta uma resposta de sucesso com dados.
func RespostaOK[T any](data T) *RespostaServico[T] {
	return &RespostaServico[T]{Success: true, Data: data}
}

// RespostaErro monta uma resposta de falha com a mensagem informada.
func RespostaErro[T any](msg string) *RespostaServico[T] {
	return &RespostaServico[T]{Success: false, Error: msg}
}
