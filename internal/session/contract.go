package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/conectaplus/conecta-api/internal/models"
)

// Параметры контракта по умолчанию при создании из переписки.
const (
	defaultScope    = "Desenvolvimento e entrega conforme conversado via chat."
	defaultDeadline = "7 dias"

	// Текст системного уведомления при вступлении контракта в силу
	contractSignedNotice = "Contrato Formalizado com Sucesso!"
)

// CreateContract создает контракт для активной переписки в статусе NEGOTIATING.
// Клиент считается акцептовавшим условия в момент создания; подпись
// специалиста ожидается отдельно. Без активной переписки операция
// молча игнорируется.
func (s *Session) CreateContract() (models.Contract, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return models.Contract{}, false
	}

	prof := s.active.professional
	now := time.Now()
	contract := &models.Contract{
		ID:                          uuid.New(),
		ClientID:                    models.ClientSenderID,
		ProfessionalID:              prof.ID,
		ServiceName:                 prof.Specialty,
		Scope:                       defaultScope,
		Price:                       prof.HourlyRate,
		Deadline:                    defaultDeadline,
		Status:                      models.ContractNegotiating,
		TermsAcceptedByClient:       true,
		TermsAcceptedByProfessional: false,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
	s.active.contract = contract
	return *contract, true
}

// ActiveContract возвращает контракт активной переписки
func (s *Session) ActiveContract() (models.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active == nil || s.active.contract == nil {
		return models.Contract{}, false
	}
	return *s.active.contract, true
}

// SignAsProfessional фиксирует цифровую подпись специалиста: контракт
// переходит в ACTIVE, в переписку добавляется системное уведомление
// с метаданными нового статуса. Повторный вызов и вызов в недопустимом
// статусе ничего не меняют и уведомление не дублируют.
func (s *Session) SignAsProfessional(contractID uuid.UUID) (models.Contract, models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contract := s.lookupContract(contractID)
	if contract == nil || !contract.Status.CanTransitionTo(models.ContractActive) {
		return models.Contract{}, models.Message{}, false
	}

	contract.TermsAcceptedByProfessional = true
	contract.Status = models.ContractActive
	contract.UpdatedAt = time.Now()

	notice := s.active.append(
		models.SystemSenderID,
		contractSignedNotice,
		models.MessageTypeProposal,
		&models.StatusMetadata{Status: models.ContractActive},
	)
	return *contract, notice, true
}

// CancelContract переводит контракт в CANCELLED.
// Допустимо из NEGOTIATING и ACTIVE, иначе операция игнорируется.
func (s *Session) CancelContract(contractID uuid.UUID) (models.Contract, bool) {
	return s.transition(contractID, models.ContractCancelled)
}

// CompleteContract переводит контракт в COMPLETED. Допустимо только из ACTIVE.
func (s *Session) CompleteContract(contractID uuid.UUID) (models.Contract, bool) {
	return s.transition(contractID, models.ContractCompleted)
}

func (s *Session) transition(contractID uuid.UUID, next models.ContractStatus) (models.Contract, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contract := s.lookupContract(contractID)
	if contract == nil || !contract.Status.CanTransitionTo(next) {
		return models.Contract{}, false
	}

	contract.Status = next
	contract.UpdatedAt = time.Now()
	return *contract, true
}

// lookupContract возвращает контракт активной переписки, если ID совпадает.
// Вызывается только под блокировкой.
func (s *Session) lookupContract(id uuid.UUID) *models.Contract {
	if s.active == nil || s.active.contract == nil {
		return nil
	}
	if s.active.contract.ID != id {
		return nil
	}
	return s.active.contract
}
