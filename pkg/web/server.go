// Package web serves a computed foveation report over HTTP.
// The report is fixed when the server is built; handlers only read it.
package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/teslashibe/go-foveate/internal/log"
	"github.com/teslashibe/go-foveate/pkg/foveation"
)

// Server is the report server
type Server struct {
	app  *fiber.App
	port string

	report foveation.Report
	sweep  []foveation.RateResult
}

// NewServer creates a server for report and the optional sweep rows
func NewServer(port string, report foveation.Report, sweep []foveation.RateResult) *Server {
	s := &Server{
		port:   port,
		report: report,
		sweep:  sweep,
	}

	app := fiber.New(fiber.Config{
		AppName:               "foveate",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
	}))

	app.Get("/healthz", s.handleHealth)

	api := app.Group("/api")
	api.Get("/report", s.handleReport)
	api.Get("/report/text", s.handleReportText)
	api.Get("/scenarios/:name", s.handleScenario)
	api.Get("/sweep", s.handleSweep)

	s.app = app
	return s
}

// App exposes the fiber app, mainly for app.Test in tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on the configured port and blocks
func (s *Server) Start() error {
	log.Info("report server listening", "port", s.port, "run", s.report.ID)
	return s.app.Listen(":" + s.port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
