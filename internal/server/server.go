// Package server exposes the extractor over HTTP: an upload page, a JSON
// extraction endpoint and a CSV download endpoint.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"fjacquet/ccstmt-csv/internal/common"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"
	"fjacquet/ccstmt-csv/internal/parsererror"
	"fjacquet/ccstmt-csv/internal/report"
	"fjacquet/ccstmt-csv/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// User-facing messages.
const (
	UploadPrompt     = "Upload a credit card statement PDF to extract details like cardholder name, due date, and total amount due."
	NoRecordsMessage = "No valid records found. Please check if 'Cardholder Name:' exists in your PDF."
	DownloadName     = "parsed_results.csv"
	formField        = "file"
)

// RecordParser extracts records from an uploaded document.
type RecordParser interface {
	Parse(r io.Reader) ([]models.CardRecord, error)
}

// ExtractResponse is the JSON body of /api/extract.
type ExtractResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error,omitempty"`
	Message string              `json:"message,omitempty"`
	Count   int                 `json:"count"`
	Records []models.CardRecord `json:"records"`
	CSV     string              `json:"csv,omitempty"`
	Summary *report.Summary     `json:"summary,omitempty"`
}

// Server holds the fiber application and its dependencies.
type Server struct {
	app    *fiber.App
	parser RecordParser
	csv    common.Exporter
	logger logging.Logger
}

// New builds the server. Uploads larger than maxUploadMB are rejected by
// fiber before reaching a handler.
func New(parser RecordParser, csv common.Exporter, logger logging.Logger, maxUploadMB int) *Server {
	if maxUploadMB <= 0 {
		maxUploadMB = 32
	}
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "ccstmt-csv",
			BodyLimit:             maxUploadMB << 20,
			DisableStartupMessage: true,
		}),
		parser: parser,
		csv:    csv,
		logger: logger,
	}

	s.app.Use(recover.New())
	s.app.Get("/", s.handleIndex)
	s.app.Get("/api/health", s.handleHealth)
	s.app.Post("/api/extract", s.handleExtract)
	s.app.Post("/api/extract/csv", s.handleDownload)
	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called or the listener fails.
func (s *Server) Listen(addr string) error {
	s.logger.Info("Starting HTTP server", logging.Field{Key: logging.FieldAddress, Value: addr})
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(indexPage)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// extract runs the pipeline on the uploaded file. On failure it returns the
// HTTP status and message to report.
func (s *Server) extract(c *fiber.Ctx) ([]models.CardRecord, int, string) {
	fh, err := c.FormFile(formField)
	if err != nil {
		return nil, fiber.StatusBadRequest, UploadPrompt
	}
	if !validation.IsPDFName(fh.Filename) {
		return nil, fiber.StatusBadRequest, "Only PDF files are supported. " + UploadPrompt
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fiber.StatusBadRequest, UploadPrompt
	}
	defer func() { _ = file.Close() }()

	s.logger.Info("Processing uploaded statement",
		logging.Field{Key: logging.FieldFile, Value: fh.Filename})

	records, err := s.parser.Parse(file)
	switch {
	case err == nil:
		return records, fiber.StatusOK, ""
	case errors.Is(err, parsererror.ErrNoRecords):
		return nil, fiber.StatusUnprocessableEntity, NoRecordsMessage
	case parsererror.IsSourceOpen(err):
		s.logger.WithError(err).Warn("Uploaded PDF could not be read",
			logging.Field{Key: logging.FieldFile, Value: fh.Filename})
		return nil, fiber.StatusUnprocessableEntity, "PDF extraction failed: the file could not be read as a PDF."
	default:
		s.logger.WithError(err).Error("Extraction failed",
			logging.Field{Key: logging.FieldFile, Value: fh.Filename})
		return nil, fiber.StatusInternalServerError, "Extraction failed."
	}
}

func (s *Server) handleExtract(c *fiber.Ctx) error {
	records, status, msg := s.extract(c)
	if status != fiber.StatusOK {
		return c.Status(status).JSON(ExtractResponse{Success: false, Error: msg, Records: []models.CardRecord{}})
	}

	var buf bytes.Buffer
	if err := s.csv.Write(&buf, records); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ExtractResponse{
			Success: false, Error: "CSV generation failed.", Records: []models.CardRecord{},
		})
	}

	summary := report.Summarize(records)
	return c.JSON(ExtractResponse{
		Success: true,
		Message: fmt.Sprintf("Extracted %d records successfully!", len(records)),
		Count:   len(records),
		Records: records,
		CSV:     buf.String(),
		Summary: &summary,
	})
}

func (s *Server) handleDownload(c *fiber.Ctx) error {
	records, status, msg := s.extract(c)
	if status != fiber.StatusOK {
		return c.Status(status).SendString(msg)
	}

	var buf bytes.Buffer
	if err := s.csv.Write(&buf, records); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("CSV generation failed.")
	}

	c.Attachment(DownloadName)
	c.Set(fiber.HeaderContentType, s.csv.ContentType())
	return c.Send(buf.Bytes())
}
