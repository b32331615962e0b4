package domain

// View is the typed view model of one screen. The concrete type is fixed by
// the screen it returns.
type View interface {
	Screen() Screen
}

type NoticeKind string

const (
	NoticeField    NoticeKind = "field"
	NoticeBlocking NoticeKind = "blocking"
	NoticeGlobal   NoticeKind = "global"
)

type Notice struct {
	Kind           NoticeKind `json:"kind"`
	Field          string     `json:"field,omitempty"`
	Message        string     `json:"message"`
	DismissAfterMS int64      `json:"dismiss_after_ms,omitempty"`
}

// Frame is what the display renders: the screen, its view model and the
// affordances it may offer.
type Frame struct {
	SessionID string       `json:"session_id"`
	Screen    Screen       `json:"screen"`
	Theme     Theme        `json:"theme"`
	View      View         `json:"view"`
	Actions   []ActionKind `json:"actions"`
	Loading   bool         `json:"loading"`
	Message   string       `json:"message,omitempty"`
	Notice    *Notice      `json:"notice,omitempty"`
}

func (f Frame) Allows(action ActionKind) bool {
	for _, a := range f.Actions {
		if a == action {
			return true
		}
	}
	return false
}

type ThemeOption struct {
	Theme  Theme  `json:"theme"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type SpecialistCard struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Gender      Gender   `json:"gender"`
	Specialty   string   `json:"specialty"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Days        []string `json:"days"`
	Hours       []string `json:"hours"`
	PhotoURL    string   `json:"photo_url,omitempty"`
}

type CalendarDay struct {
	Date      string `json:"date"`
	Label     string `json:"label"`
	Weekday   int    `json:"weekday"`
	DayName   string `json:"day_name"`
	Available bool   `json:"available"`
}

type FaqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var FaqEntries = []FaqEntry{
	{Question: "Como funciona o pagamento?", Answer: "Aceitamos cartão de crédito e débito por aproximação."},
	{Question: "Posso cancelar um agendamento?", Answer: "Sim, pelo nosso app ou telefone com 24h de antecedência."},
	{Question: "Quais convênios são aceitos?", Answer: "No momento não aceitamos convênios."},
}

type WelcomeView struct {
	AppName string        `json:"app_name"`
	Themes  []ThemeOption `json:"themes"`
}

type IdentificationView struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	Context        string `json:"context"`
	NewAppointment bool   `json:"new_appointment"`
}

type ConfirmationView struct {
	Title          string  `json:"title"`
	Subtitle       string  `json:"subtitle"`
	PatientName    string  `json:"patient_name"`
	Doctor         string  `json:"doctor"`
	Date           string  `json:"date,omitempty"`
	Time           string  `json:"time"`
	Type           string  `json:"type"`
	Price          float64 `json:"price"`
	Room           int     `json:"room,omitempty"`
	NewAppointment bool    `json:"new_appointment"`
}

type PaymentView struct {
	Amount  float64 `json:"amount"`
	Methods string  `json:"methods"`
}

type CompletionView struct {
	FirstName      string `json:"first_name"`
	NewAppointment bool   `json:"new_appointment"`
}

type ReasonView struct {
	Reasons []Reason `json:"reasons"`
}

type SchedulingView struct {
	Reason       string           `json:"reason"`
	Specialists  []SpecialistCard `json:"specialists"`
	SpecialistID *int64           `json:"specialist_id,omitempty"`
	Days         []CalendarDay    `json:"days,omitempty"`
	Hours        []string         `json:"hours,omitempty"`
	Date         string           `json:"date,omitempty"`
	Time         string           `json:"time,omitempty"`
}

type ProfileView struct {
	Specialist SpecialistCard `json:"specialist"`
}

type SpecialistsView struct {
	Specialists []SpecialistCard `json:"specialists"`
}

type FaqView struct {
	Entries []FaqEntry `json:"entries"`
}

func (WelcomeView) Screen() Screen        { return ScreenWelcome }
func (IdentificationView) Screen() Screen { return ScreenIdentification }
func (ConfirmationView) Screen() Screen   { return ScreenConfirmation }
func (PaymentView) Screen() Screen        { return ScreenPayment }
func (CompletionView) Screen() Screen     { return ScreenCompletion }
func (ReasonView) Screen() Screen         { return ScreenReason }
func (SchedulingView) Screen() Screen     { return ScreenScheduling }
func (ProfileView) Screen() Screen        { return ScreenProfile }
func (SpecialistsView) Screen() Screen    { return ScreenSpecialists }
func (FaqView) Screen() Screen            { return ScreenFaq }

type Availability struct {
	SpecialistID int64         `json:"specialist_id"`
	Days         []CalendarDay `json:"days"`
	Hours        []string      `json:"hours"`
}
