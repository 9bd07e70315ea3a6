package entity

import "github.com/shopspring/decimal"

// Role função/cargo de um funcionário.
type Role struct {
	ID          int64
	Name        string
	Description string
	Salary      decimal.Decimal
	WeeklyHours int // carga horária semanal
}
