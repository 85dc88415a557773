package models

import (
	"time"

	"github.com/google/uuid"
)

// ContractStatus представляет статус контракта
type ContractStatus string

const (
	ContractNegotiating ContractStatus = "NEGOTIATING"
	ContractActive      ContractStatus = "ACTIVE"
	ContractCompleted   ContractStatus = "COMPLETED"
	ContractCancelled   ContractStatus = "CANCELLED"
)

// CanTransitionTo проверяет, допустим ли переход контракта в указанный статус.
// Разрешены только переходы NEGOTIATING → ACTIVE → COMPLETED,
// а также NEGOTIATING/ACTIVE → CANCELLED.
func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	switch s {
	case ContractNegotiating:
		return next == ContractActive || next == ContractCancelled
	case ContractActive:
		return next == ContractCompleted || next == ContractCancelled
	default:
		return false
	}
}

// IsTerminal сообщает, является ли статус конечным
func (s ContractStatus) IsTerminal() bool {
	return s == ContractCompleted || s == ContractCancelled
}

// Contract представляет контракт на оказание услуги, привязанный к переписке
type Contract struct {
	ID                          uuid.UUID      `json:"id"`
	ClientID                    string         `json:"client_id"`
	ProfessionalID              string         `json:"professional_id"`
	ServiceName                 string         `json:"service_name"`
	Scope                       string         `json:"scope"`
	Price                       float64        `json:"price"`
	Deadline                    string         `json:"deadline"`
	Status                      ContractStatus `json:"status"`
	TermsAcceptedByClient       bool           `json:"terms_accepted_by_client"`
	TermsAcceptedByProfessional bool           `json:"terms_accepted_by_professional"`
	CreatedAt                   time.Time      `json:"created_at"`
	UpdatedAt                   time.Time      `json:"updated_at"`
}
