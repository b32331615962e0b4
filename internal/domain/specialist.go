package domain

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderFemale Gender = "Feminino"
	GenderMale   Gender = "Masculino"
)

type Specialist struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Gender         Gender         `json:"gender"`
	Specialty      string         `json:"specialty"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	AvailableDays  []time.Weekday `json:"available_days"`
	AvailableHours []string       `json:"available_hours"`
	PhotoKey       string         `json:"-"`
}

func (s Specialist) AvailableOn(day time.Weekday) bool {
	for _, d := range s.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}

func (s Specialist) OffersHour(hour string) bool {
	for _, h := range s.AvailableHours {
		if h == hour {
			return true
		}
	}
	return false
}

// MatchesReason is a case-insensitive substring test of the reason against the specialty.
func (s Specialist) MatchesReason(reason string) bool {
	return strings.Contains(strings.ToLower(s.Specialty), strings.ToLower(reason))
}

// Catalog is the immutable specialist reference data loaded once at startup.
type Catalog struct {
	specialists []Specialist
	byID        map[int64]int
}

func NewCatalog(specialists []Specialist) *Catalog {
	c := &Catalog{
		specialists: make([]Specialist, 0, len(specialists)),
		byID:        make(map[int64]int, len(specialists)),
	}
	for _, s := range specialists {
		s.AvailableDays = append([]time.Weekday(nil), s.AvailableDays...)
		s.AvailableHours = append([]string(nil), s.AvailableHours...)
		c.byID[s.ID] = len(c.specialists)
		c.specialists = append(c.specialists, s)
	}
	return c
}

func (c *Catalog) All() []Specialist {
	out := make([]Specialist, len(c.specialists))
	copy(out, c.specialists)
	return out
}

func (c *Catalog) Get(id int64) (Specialist, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Specialist{}, false
	}
	return c.specialists[idx], true
}

func (c *Catalog) FindByName(name string) (Specialist, bool) {
	for _, s := range c.specialists {
		if s.Name == name {
			return s, true
		}
	}
	return Specialist{}, false
}

func (c *Catalog) Len() int {
	return len(c.specialists)
}

type Reason struct {
	Label       string  `json:"label"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PriceFrom   float64 `json:"price_from"`
}

var Reasons = []Reason{
	{Label: "Consulta de Rotina", Title: "CONSULTA DE ROTINA", Description: "ACOMPANHAMENTO PERIÓDICO DE SAÚDE E BEM-ESTAR.", PriceFrom: 150},
	{Label: "Terapia", Title: "TERAPIA", Description: "SESSÕES DE PSICOTERAPIA E APOIO EMOCIONAL.", PriceFrom: 180},
	{Label: "Acupuntura", Title: "ACUPUNTURA", Description: "TRATAMENTO NATURAL PARA ALÍVIO DE DORES.", PriceFrom: 120},
	{Label: "Nutrição", Title: "NUTRIÇÃO", Description: "ORIENTAÇÃO NUTRICIONAL PERSONALIZADA.", PriceFrom: 150},
}

func IsKnownReason(label string) bool {
	for _, r := range Reasons {
		if r.Label == label {
			return true
		}
	}
	return false
}

var weekdayNames = [...]string{"DOMINGO", "SEGUNDA", "TERÇA", "QUARTA", "QUINTA", "SEXTA", "SÁBADO"}

func WeekdayName(day time.Weekday) string {
	return weekdayNames[day]
}

func WeekdayAbbreviation(day time.Weekday) string {
	return string([]rune(weekdayNames[day])[:3])
}
