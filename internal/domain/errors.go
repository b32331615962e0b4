package domain

import "errors"

var (
	ErrValidation            = errors.New("dados inválidos")
	ErrMissingSelection      = errors.New("POR FAVOR, SELECIONE UMA DATA E HORÁRIO")
	ErrVerificationFailed    = errors.New("NÃO CONSEGUIMOS VALIDAR SEUS DADOS. TENTE NOVAMENTE.")
	ErrVerificationInFlight  = errors.New("verificação já em andamento")
	ErrVerificationDiscarded = errors.New("verificação descartada")
	ErrActionNotAvailable    = errors.New("ação não disponível nesta tela")
	ErrSelectionUnavailable  = errors.New("seleção não disponível")
	ErrSpecialistNotFound    = errors.New("especialista não encontrado")
	ErrSessionNotFound       = errors.New("sessão não encontrada")
	ErrPrecondition          = errors.New("violação de pré-condição")
)

const (
	FieldName      = "name"
	FieldBirthDate = "birth_date"
	FieldCPF       = "cpf"
)

const (
	MessageInvalidName      = "POR FAVOR, DIGITE SEU NOME COMPLETO"
	MessageInvalidBirthDate = "DATA INVÁLIDA. USE O FORMATO DD/MM/AAAA"
	MessageInvalidCPF       = "POR FAVOR, INSIRA UM CPF VÁLIDO"
	MessageVerifying        = "VERIFICANDO SEUS DADOS..."
)

// ValidationError points at the identification field that failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
