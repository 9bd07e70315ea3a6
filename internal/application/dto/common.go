package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse resposta de criação: id gerado + mensagem.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse resposta simples de sucesso.
type MessageResponse struct {
	Message string `json:"message"`
}
