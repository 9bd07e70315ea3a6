package dto

// CEPResponse resultado da consulta de CEP (preenchimento automático de endereço).
type CEPResponse struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	IBGECode     string `json:"ibge_code"`
}
