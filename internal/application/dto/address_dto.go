package dto

// AddressRequest sub-registro de endereço em criações/atualizações.
// A presença do endereço é detectada unicamente pelo CEP não vazio;
// os demais campos são aceitos como vierem, sem validação individual.
type AddressRequest struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	IBGECode     string `json:"ibge_code"`
	Number       string `json:"number"`
	Reference    string `json:"reference"`
}

// HasPostalCode informa se o sub-registro carrega um CEP.
func (a *AddressRequest) HasPostalCode() bool {
	return a != nil && a.PostalCode != ""
}

// AddressResponse endereço em respostas (null quando a entidade não tem endereço).
type AddressResponse struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	IBGECode     string `json:"ibge_code"`
	Number       string `json:"number"`
	Reference    string `json:"reference"`
}
