// File: medcrm/handlers/bundle.go
package handlers

import (
	accountRepoPkg "medcrm/database/repository/account"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AccountRepo accountRepoPkg.AccountRepository

	// Auth endpoints
	RegisterAccountHandler gin.HandlerFunc
	SignInHandler          gin.HandlerFunc
	SignOutHandler         gin.HandlerFunc
	GetProfileHandler      gin.HandlerFunc
	UpdateProfileHandler   gin.HandlerFunc
	ChangePasswordHandler  gin.HandlerFunc
	DeleteAccountHandler   gin.HandlerFunc

	// Doctor roster endpoints
	CreateDoctorHandler  gin.HandlerFunc
	GetDoctorByIDHandler gin.HandlerFunc
	ListDoctorsHandler   gin.HandlerFunc
	UpdateDoctorHandler  gin.HandlerFunc
	DeleteDoctorHandler  gin.HandlerFunc
	FreeSlotsHandler     gin.HandlerFunc
	UploadDoctorPhoto    gin.HandlerFunc

	// Doctor availability endpoints
	ToggleDayHandler      gin.HandlerFunc
	AddSlotHandler        gin.HandlerFunc
	UpdateSlotHandler     gin.HandlerFunc
	RemoveSlotHandler     gin.HandlerFunc
	AddOverrideHandler    gin.HandlerFunc
	UpdateOverrideHandler gin.HandlerFunc
	RemoveOverrideHandler gin.HandlerFunc

	// Voice agent endpoints
	CreateAgentHandler          gin.HandlerFunc
	GetAgentByIDHandler         gin.HandlerFunc
	ListAgentsHandler           gin.HandlerFunc
	UpdateAgentHandler          gin.HandlerFunc
	DeleteAgentHandler          gin.HandlerFunc
	ListScriptVariablesHandler  gin.HandlerFunc
	InsertScriptVariableHandler gin.HandlerFunc
	PreviewScriptHandler        gin.HandlerFunc

	// Call log endpoints
	IngestCallLogHandler   gin.HandlerFunc
	GetCallLogByIDHandler  gin.HandlerFunc
	ListCallLogsHandler    gin.HandlerFunc
	DeleteCallLogHandler   gin.HandlerFunc

	// Appointment endpoints
	CreateAppointmentHandler       gin.HandlerFunc
	GetAppointmentByIDHandler      gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
	RescheduleAppointmentHandler   gin.HandlerFunc
	DeleteAppointmentHandler       gin.HandlerFunc
}
