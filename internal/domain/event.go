package domain

type ActionKind string

const (
	ActionStartCheckIn         ActionKind = "start_check_in"
	ActionStartScheduling      ActionKind = "start_scheduling"
	ActionOpenFaq              ActionKind = "open_faq"
	ActionSetTheme             ActionKind = "set_theme"
	ActionSubmitIdentification ActionKind = "submit_identification"
	ActionBack                 ActionKind = "back"
	ActionSelectReason         ActionKind = "select_reason"
	ActionSelectSpecialist     ActionKind = "select_specialist"
	ActionSelectDate           ActionKind = "select_date"
	ActionSelectTime           ActionKind = "select_time"
	ActionConfirmSchedule      ActionKind = "confirm_schedule"
	ActionViewSpecialists      ActionKind = "view_specialists"
	ActionConfirmAppointment   ActionKind = "confirm_appointment"
	ActionViewProfile          ActionKind = "view_profile"
	ActionConfirmPayment       ActionKind = "confirm_payment"
	ActionFinish               ActionKind = "finish"
	ActionEscape               ActionKind = "escape"
)

// EventPayload carries the arguments of an action. Only the fields relevant
// to the action are read.
type EventPayload struct {
	Theme        *Theme `json:"theme,omitempty"`
	Reason       string `json:"reason,omitempty"`
	SpecialistID int64  `json:"specialist_id,omitempty"`
	Date         string `json:"date,omitempty"`
	Time         string `json:"time,omitempty"`
	Name         string `json:"name,omitempty"`
	BirthDate    string `json:"birth_date,omitempty"`
	CPF          string `json:"cpf,omitempty"`
}

type Event struct {
	Action  ActionKind   `json:"action" binding:"required"`
	Payload EventPayload `json:"payload"`
}

type EffectKind string

const (
	EffectSelectionMade       EffectKind = "selectionMade"
	EffectConfirmationSuccess EffectKind = "confirmationSuccess"
	EffectSoftInteraction     EffectKind = "softInteraction"
)
