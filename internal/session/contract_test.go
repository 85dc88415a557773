package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectaplus/conecta-api/internal/models"
)

func TestCreateContractDefaults(t *testing.T) {
	sess := newTestSession()

	// Без активной переписки контракт не создается
	_, ok := sess.CreateContract()
	assert.False(t, ok)

	prof := testProfessional("p1", "António Manuel", "React, Node.js & Mobile", 25)
	sess.OpenConversation(prof)

	contract, ok := sess.CreateContract()
	require.True(t, ok)

	assert.Equal(t, models.ContractNegotiating, contract.Status)
	assert.Equal(t, models.ClientSenderID, contract.ClientID)
	assert.Equal(t, prof.ID, contract.ProfessionalID)
	assert.Equal(t, prof.Specialty, contract.ServiceName)
	assert.Equal(t, 25.0, contract.Price)
	assert.Equal(t, "7 dias", contract.Deadline)
	assert.True(t, contract.TermsAcceptedByClient)
	assert.False(t, contract.TermsAcceptedByProfessional)
}

func TestCreateContractZeroRate(t *testing.T) {
	sess := newTestSession()
	sess.OpenConversation(testProfessional("p9", "Sem Taxa", "Jardinagem", 0))

	contract, ok := sess.CreateContract()
	require.True(t, ok)
	assert.Equal(t, 0.0, contract.Price)
}

func TestSignAsProfessional(t *testing.T) {
	sess := newTestSession()
	sess.OpenConversation(testProfessional("p1", "António Manuel", "React, Node.js & Mobile", 25))

	contract, ok := sess.CreateContract()
	require.True(t, ok)
	transcriptBefore := len(sess.Messages())

	signed, notice, changed := sess.SignAsProfessional(contract.ID)
	require.True(t, changed)

	assert.Equal(t, models.ContractActive, signed.Status)
	assert.True(t, signed.TermsAcceptedByProfessional)

	// Подпись добавляет ровно одно системное уведомление
	messages := sess.Messages()
	require.Len(t, messages, transcriptBefore+1)
	last := messages[len(messages)-1]
	assert.Equal(t, notice.ID, last.ID)
	assert.Equal(t, models.SystemSenderID, last.SenderID)
	assert.Equal(t, models.MessageTypeProposal, last.Type)
	require.NotNil(t, last.Metadata)
	assert.Equal(t, models.ContractActive, last.Metadata.Status)
}

func TestSignAsProfessionalIdempotent(t *testing.T) {
	sess := newTestSession()
	sess.OpenConversation(testProfessional("p1", "António Manuel", "React, Node.js & Mobile", 25))

	contract, _ := sess.CreateContract()
	_, _, changed := sess.SignAsProfessional(contract.ID)
	require.True(t, changed)
	transcript := len(sess.Messages())

	// Повторная подпись ничего не меняет и уведомление не дублирует
	_, _, changed = sess.SignAsProfessional(contract.ID)
	assert.False(t, changed)
	assert.Len(t, sess.Messages(), transcript)

	current, ok := sess.ActiveContract()
	require.True(t, ok)
	assert.Equal(t, models.ContractActive, current.Status)
}

func TestCancelFromNegotiating(t *testing.T) {
	sess := newTestSession()
	sess.OpenConversation(testProfessional("p1", "António Manuel", "React, Node.js & Mobile", 25))

	contract, _ := sess.CreateContract()
	cancelled, changed := sess.CancelContract(contract.ID)
	require.True(t, changed)
	assert.Equal(t, models.ContractCancelled, cancelled.Status)

	// Подпись отмененного контракта — no-op
	_, _, changed = sess.SignAsProfessional(contract.ID)
	assert.False(t, changed)

	current, ok := sess.ActiveContract()
	require.True(t, ok)
	assert.Equal(t, models.ContractCancelled, current.Status)
}

func TestCancelFromActive(t *testing.T) {
	sess := newTestSession()
	sess.OpenConversation(testProfessional("p1", "António Manuel", "React, Node.js & Mobile", 25))

	contract, _ := sess.CreateContract()
	sess.SignAsProfessional(contract.ID)

	cancelled, changed := sess.CancelContract(contract.ID)
	require.True(t, changed)
	assert.Equal(t, models.ContractCancelled, cancelled.Status)

	// Конечный статус менять больше нельзя
	_, changed = sess.CompleteContract(contract.ID)
	assert.False(t, changed)
}

func TestCompleteRequiresActive(t *testing.T) {
	sess := newTestSession()
	sess.OpenConversation(testProfessional("p1", "António Manuel", "React, Node.js & Mobile", 25))

	contract, _ := sess.CreateContract()

	// Из NEGOTIATING завершение недоступно
	_, changed := sess.CompleteContract(contract.ID)
	assert.False(t, changed)

	sess.SignAsProfessional(contract.ID)

	completed, changed := sess.CompleteContract(contract.ID)
	require.True(t, changed)
	assert.Equal(t, models.ContractCompleted, completed.Status)
}

func TestContractUnknownIDIgnored(t *testing.T) {
	sess := newTestSession()
	sess.OpenConversation(testProfessional("p1", "António Manuel", "React, Node.js & Mobile", 25))
	sess.CreateContract()

	_, _, changed := sess.SignAsProfessional(uuid.New())
	assert.False(t, changed)

	_, cancelled := sess.CancelContract(uuid.New())
	assert.False(t, cancelled)
}

func TestOpenConversationClearsContract(t *testing.T) {
	sess := newTestSession()
	sess.OpenConversation(testProfessional("p1", "António Manuel", "React, Node.js & Mobile", 25))
	sess.CreateContract()

	// Контракты между переписками не переносятся
	sess.OpenConversation(testProfessional("p2", "Elsa Santos", "Branding & UI/UX", 15))
	_, ok := sess.ActiveContract()
	assert.False(t, ok)
}
