package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/sims-backend/internal/application/auth"
	"github.com/tu-usuario/sims-backend/internal/application/notify"
	"github.com/tu-usuario/sims-backend/internal/application/usecase"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/backup"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/export"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/jsonfile"
	httpRouter "github.com/tu-usuario/sims-backend/internal/interfaces/http"
	"github.com/tu-usuario/sims-backend/pkg/config"
	"github.com/tu-usuario/sims-backend/pkg/logger"
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
		Str("data_dir", cfg.Storage.DataDir).
		Msg("iniciando aplicación")

	// Un archivo por colección; cada repositorio carga su snapshot al arrancar
	dataDir := cfg.Storage.DataDir
	itemRepo := jsonfile.NewItemRepository(filepath.Join(dataDir, "items.json"))
	userRepo := jsonfile.NewUserRepository(filepath.Join(dataDir, "users.json"))
	supplierRepo := jsonfile.NewSupplierRepository(filepath.Join(dataDir, "suppliers.json"))
	txLog := jsonfile.NewTransactionLog(filepath.Join(dataDir, "transactions.log"))

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Cuenta admin inicial si la colección de usuarios está vacía
	if created, err := authUC.Bootstrap(cfg.Boot.AdminUser, cfg.Boot.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("bootstrap de la cuenta admin")
	} else if created {
		log.Info().Str("username", cfg.Boot.AdminUser).Msg("cuenta admin inicial creada")
	}

	itemUC := usecase.NewItemUseCase(itemRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	reportUC := usecase.NewReportUseCase(itemRepo)
	pdfGen := export.NewPDFReportGenerator(cfg.App.Name)
	exportUC := usecase.NewExportUseCase(itemRepo, pdfGen, cfg.Storage.ExportDir)
	backupSvc := backup.NewService(dataDir, cfg.Storage.BackupDir)
	center := notify.NewCenter()

	// Notificaciones del día a partir del snapshot cargado
	if items, err := itemRepo.All(); err == nil {
		center.GenerateDaily(items)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:     itemUC,
		SupplierUC: supplierUC,
		UserUC:     userUC,
		ReportUC:   reportUC,
		ExportUC:   exportUC,
		AuthUC:     authUC,
		Backup:     backupSvc,
		TxLog:      txLog,
		Notify:     center,
		ItemRepo:   itemRepo,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
