package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ridgepark/estate-crm/internal/application/auth"
	"github.com/ridgepark/estate-crm/internal/application/reporting"
	"github.com/ridgepark/estate-crm/internal/application/usecase"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AgentUC     *usecase.AgentUseCase
	CustomerUC  *usecase.CustomerUseCase
	PropertyUC  *usecase.PropertyUseCase
	MessageUC   *usecase.MessageUseCase
	StatsUC     *reporting.StatsUseCase
	ConfigUC    *reporting.FinancialConfigUseCase
	ReportUC    *reporting.ReportUseCase
	NarrativeUC *reporting.NarrativeUseCase
	StatementUC *reporting.StatementUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, /me protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Agents: lectura para todos, gestión solo admin
	agents := protected.Group("/agents")
	agentHandler := NewAgentHandler(deps.AgentUC)
	agents.Get("/", agentHandler.List)
	agents.Post("/", adminOnly, agentHandler.Create)
	agents.Put("/:id/commission", adminOnly, agentHandler.UpdateCommission)
	agents.Put("/:id/targets", adminOnly, agentHandler.UpsertTarget)
	agents.Delete("/:id/targets", adminOnly, agentHandler.RemoveTarget)
	agents.Put("/:id/password", adminOnly, agentHandler.ResetPassword)
	agents.Put("/:id/status", adminOnly, agentHandler.ToggleStatus)
	agents.Delete("/:id", adminOnly, agentHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Properties (protegido)
	properties := protected.Group("/properties")
	propertyHandler := NewPropertyHandler(deps.PropertyUC)
	properties.Get("/", propertyHandler.List)
	properties.Post("/", propertyHandler.Create)
	properties.Put("/:id", propertyHandler.Update)
	properties.Delete("/:id", propertyHandler.Delete)

	// Chat interno (protegido)
	messages := protected.Group("/messages")
	messageHandler := NewMessageHandler(deps.MessageUC)
	messages.Get("/", messageHandler.List)
	messages.Post("/", messageHandler.Send)
	messages.Post("/read", messageHandler.MarkRead)
	messages.Put("/:id", messageHandler.Edit)
	messages.Delete("/:id", messageHandler.Delete)

	// Finanzas (protegido; edición del libro manual solo admin)
	financeHandler := NewFinanceHandler(deps.StatsUC, deps.ConfigUC, deps.ReportUC, deps.NarrativeUC, deps.StatementUC)
	protected.Get("/stats", financeHandler.GetStats)
	protected.Get("/financial-config", financeHandler.GetConfig)
	protected.Put("/financial-config", adminOnly, financeHandler.UpdateConfig)
	protected.Get("/financial-report", financeHandler.GetReport)
	protected.Get("/financial-report/narrative", financeHandler.GetNarrative)
	protected.Get("/financial-report/pdf", financeHandler.ExportPDF)

	// Calendario contable (protegido)
	periodHandler := NewPeriodHandler()
	protected.Get("/periods/month", periodHandler.Month)
}
