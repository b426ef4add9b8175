package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sims-backend/internal/application/dto"
	"github.com/tu-usuario/sims-backend/internal/application/usecase"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/backup"
)

// ExportHandler exportaciones (CSV, PDF) y backups del directorio de datos.
type ExportHandler struct {
	uc     *usecase.ExportUseCase
	backup *backup.Service
	auditor
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase, b *backup.Service, a auditor) *ExportHandler {
	return &ExportHandler{uc: uc, backup: b, auditor: a}
}

// CSV descarga el inventario completo como CSV.
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	filename, data, err := h.uc.CSV()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.record(c, entity.ActionExport, "Exported inventory to CSV: "+filename)
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// PDF descarga el reporte PDF del inventario.
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	filename, data, err := h.uc.PDF()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.record(c, entity.ActionExport, "Exported inventory to PDF: "+filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// CreateBackup comprime el directorio de datos con rotación de los 10 más recientes.
func (h *ExportHandler) CreateBackup(c *fiber.Ctx) error {
	name, err := h.backup.Create()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.record(c, entity.ActionBackup, "Created backup: "+name)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"backup": name})
}

// ListBackups nombres de los backups disponibles.
func (h *ExportHandler) ListBackups(c *fiber.Ctx) error {
	names, err := h.backup.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"backups": names})
}
