// Package wizard implementa a máquina de passos do fluxo público de
// agendamento: services → datetime → details → confirmation, com volta
// permitida de datetime e details.
package wizard

import (
	"errors"

	domain "github.com/NavalhaDigital/booking-api/internal/domain/booking"
)

type Step string

const (
	StepServices     Step = "services"
	StepDateTime     Step = "datetime"
	StepDetails      Step = "details"
	StepConfirmation Step = "confirmation"
)

var (
	ErrInvalidTransition = errors.New("transição de passo inválida")
	ErrNoServices        = errors.New("selecione ao menos um serviço")
	ErrInvalidDateTime   = errors.New("data ou hora inválida")
	ErrMissingDetails    = errors.New("nome, e-mail e telefone são obrigatórios")
)

type Selection struct {
	ServiceID int
	Quantity  int
}

type ClientDetails struct {
	Name  string
	Email string
	Phone string
	Notes string
}

type Wizard struct {
	step     Step
	services []Selection
	date     string
	time     string
	client   ClientDetails
}

func New() *Wizard {
	return &Wizard{
		step:     StepServices,
		services: []Selection{},
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

// SelectServices grava a seleção corrente. Só vale no primeiro passo.
func (w *Wizard) SelectServices(sel []Selection) error {
	if w.step != StepServices {
		return ErrInvalidTransition
	}
	w.services = append([]Selection{}, sel...)
	return nil
}

// Next avança de services para datetime. Seleção vazia não avança.
func (w *Wizard) Next() error {
	if w.step != StepServices {
		return ErrInvalidTransition
	}
	if len(w.services) == 0 {
		return ErrNoServices
	}
	w.step = StepDateTime
	return nil
}

// ChooseDateTime fixa data e hora e avança para details.
func (w *Wizard) ChooseDateTime(date, timeOfDay string) error {
	if w.step != StepDateTime {
		return ErrInvalidTransition
	}

	normalized := domain.NormalizeTime(timeOfDay)
	if !domain.IsValidDate(date) || !domain.IsValidTime(normalized) {
		return ErrInvalidDateTime
	}

	w.date = date
	w.time = normalized
	w.step = StepDetails
	return nil
}

// SubmitDetails registra os dados do cliente e avança para a
// confirmação; nesse ponto o chamador dispara a criação do agendamento.
func (w *Wizard) SubmitDetails(details ClientDetails) error {
	if w.step != StepDetails {
		return ErrInvalidTransition
	}
	if details.Name == "" || details.Email == "" || details.Phone == "" {
		return ErrMissingDetails
	}
	w.client = details
	w.step = StepConfirmation
	return nil
}

// Back volta um passo: datetime→services, details→datetime.
func (w *Wizard) Back() error {
	switch w.step {
	case StepDateTime:
		w.step = StepServices
	case StepDetails:
		w.step = StepDateTime
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Reset inicia um novo agendamento com seleção vazia.
func (w *Wizard) Reset() {
	*w = *New()
}

// --------- Leitura do estado acumulado ---------

func (w *Wizard) Services() []Selection {
	return append([]Selection{}, w.services...)
}

func (w *Wizard) Date() string {
	return w.date
}

func (w *Wizard) Time() string {
	return w.time
}

func (w *Wizard) Client() ClientDetails {
	return w.client
}
