package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/teslashibe/go-foveate/pkg/foveation"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "run": s.report.ID})
}

// handleReport returns the full report as JSON
func (s *Server) handleReport(c *fiber.Ctx) error {
	return c.JSON(s.report)
}

// handleReportText returns the same text the CLI prints
func (s *Server) handleReportText(c *fiber.Ctx) error {
	var b strings.Builder
	if err := foveation.WriteText(&b, s.report); err != nil {
		return err
	}
	if len(s.sweep) > 0 {
		if err := foveation.WriteSweep(&b, s.sweep); err != nil {
			return err
		}
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(b.String())
}

// handleScenario returns a single scenario by name
func (s *Server) handleScenario(c *fiber.Ctx) error {
	name := c.Params("name")
	for _, sc := range s.report.Scenarios() {
		if sc.Name == name {
			return c.JSON(sc)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "unknown scenario: " + name,
	})
}

// handleSweep returns the sampling-rate sweep, empty when none was requested
func (s *Server) handleSweep(c *fiber.Ctx) error {
	rows := s.sweep
	if rows == nil {
		rows = []foveation.RateResult{}
	}
	return c.JSON(rows)
}
