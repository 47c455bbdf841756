package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/ridgepark/estate-crm/internal/application/auth"
	"github.com/ridgepark/estate-crm/internal/application/reporting"
	"github.com/ridgepark/estate-crm/internal/application/usecase"
	infraai "github.com/ridgepark/estate-crm/internal/infrastructure/ai"
	"github.com/ridgepark/estate-crm/internal/infrastructure/memstore"
	infrapdf "github.com/ridgepark/estate-crm/internal/infrastructure/pdf"
	httpRouter "github.com/ridgepark/estate-crm/internal/interfaces/http"
	"github.com/ridgepark/estate-crm/pkg/config"
	"github.com/ridgepark/estate-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	store := memstore.New(memstore.WithLatency(cfg.Store.Latency()))
	if cfg.Store.SeedDemo {
		if err := memstore.SeedDemo(ctx, store); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	agentRepo := memstore.NewAgentRepository(store)
	customerRepo := memstore.NewCustomerRepository(store)
	propertyRepo := memstore.NewPropertyRepository(store)
	messageRepo := memstore.NewMessageRepository(store)
	configRepo := memstore.NewFinancialConfigRepository(store)
	txRunner := memstore.NewTxRunner(store)

	agentUC := usecase.NewAgentUseCase(agentRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, txRunner)
	propertyUC := usecase.NewPropertyUseCase(propertyRepo)
	messageUC := usecase.NewMessageUseCase(messageRepo)

	statsUC := reporting.NewStatsUseCase(agentRepo, customerRepo, propertyRepo)
	configUC := reporting.NewFinancialConfigUseCase(configRepo, agentRepo)
	reportUC := reporting.NewReportUseCase(agentRepo, customerRepo, propertyRepo, configRepo)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	narrativeUC := reporting.NewNarrativeUseCase(reportUC, anthropicSvc)

	statementGen := infrapdf.NewMarotoStatementGenerator()
	statementUC := reporting.NewStatementUseCase(reportUC, statementGen)

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}
	// El admin no vive en el almacén: su identidad sale de la configuración y
	// la contraseña se hashea una sola vez al arrancar.
	if cfg.Admin.Password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD es requerido")
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña de admin")
	}
	authUC := auth.NewAuthUseCase(agentRepo, auth.AdminAccount{
		ID:           "admin-1",
		Email:        cfg.Admin.Email,
		Name:         cfg.Admin.Name,
		PasswordHash: string(adminHash),
	}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RIDGE PARK CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AgentUC:     agentUC,
		CustomerUC:  customerUC,
		PropertyUC:  propertyUC,
		MessageUC:   messageUC,
		StatsUC:     statsUC,
		ConfigUC:    configUC,
		ReportUC:    reportUC,
		NarrativeUC: narrativeUC,
		StatementUC: statementUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		addr := cfg.HTTP.Addr()
		log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("servidor detenido")
}
