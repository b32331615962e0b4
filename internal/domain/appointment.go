package domain

// NewAppointmentID marks UserData created by the new-booking flow.
const NewAppointmentID = "Novo Agendamento"

const DefaultAppointmentPrice = 150.00

type AppointmentDraft struct {
	Type         string  `json:"type,omitempty"`
	SpecialistID *int64  `json:"specialist_id,omitempty"`
	Date         string  `json:"date,omitempty"`
	Time         string  `json:"time,omitempty"`
	Doctor       string  `json:"doctor,omitempty"`
	Price        float64 `json:"price,omitempty"`
}

// IsFinalized reports whether the schedule was confirmed and the specialist resolved.
func (d AppointmentDraft) IsFinalized() bool {
	return d.Doctor != ""
}

func (d *AppointmentDraft) Resolve(f FinalizedAppointment) {
	d.Doctor = f.Doctor
	d.Price = f.Price
}

type FinalizedAppointment struct {
	SpecialistID int64   `json:"specialist_id"`
	Doctor       string  `json:"doctor"`
	Price        float64 `json:"price"`
	Type         string  `json:"type"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
}

type Appointment struct {
	Doctor string  `json:"doctor"`
	Time   string  `json:"time"`
	Date   string  `json:"date,omitempty"`
	Type   string  `json:"type"`
	Price  float64 `json:"price,omitempty"`
	Room   int     `json:"room,omitempty"`
}

func (a Appointment) PriceOrDefault() float64 {
	if a.Price == 0 {
		return DefaultAppointmentPrice
	}
	return a.Price
}

type UserData struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	BirthDate   string      `json:"birth_date,omitempty"`
	CPF         string      `json:"-"`
	Appointment Appointment `json:"appointment"`
}

func (u *UserData) IsNewAppointment() bool {
	return u != nil && u.ID == NewAppointmentID
}
