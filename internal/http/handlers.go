package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sunbird-energy/sunbird/internal/repository"
	"github.com/sunbird-energy/sunbird/internal/service"
)

func Register(app *fiber.App, svcs *service.Services) {
	api := app.Group("/api")

	api.Get("/sites/:id/savings", func(c *fiber.Ctx) error {
		result, err := svcs.SiteSavings(c.UserContext(), c.Params("id"), c.Query("period"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(result)
	})

	api.Get("/sites/:id/recommendations", func(c *fiber.Ctx) error {
		recs, err := svcs.SiteRecommendations(c.UserContext(), c.Params("id"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(recs)
	})

	api.Get("/sites/:id/devices", func(c *fiber.Ctx) error {
		items, err := svcs.Repos.ListDevices(c.UserContext(), c.Params("id"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(items)
	})

	api.Get("/sites/:id/alerts", func(c *fiber.Ctx) error {
		items, err := svcs.Repos.ListAlerts(c.UserContext(), c.Params("id"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(items)
	})

	api.Get("/organizations/:id/sdg/impact", func(c *fiber.Ctx) error {
		impact, err := svcs.SDG.CalculateSDGImpact(c.UserContext(), c.Params("id"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(impact)
	})

	api.Post("/sdg/comparison", func(c *fiber.Ctx) error {
		var body struct {
			OrganizationIDs []string `json:"organizationIds"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
		}
		comparison, err := svcs.SDG.GetSDGComparison(c.UserContext(), body.OrganizationIDs)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(comparison)
	})

	api.Get("/organizations/:id/sdg/report", func(c *fiber.Ctx) error {
		start, end, err := reportWindow(c.Query("start"), c.Query("end"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		report, url, err := svcs.OrganizationReport(c.UserContext(), c.Params("id"), start, end)
		if err != nil {
			return errorResponse(c, err)
		}
		if url != "" {
			return c.JSON(fiber.Map{"report": report, "downloadUrl": url})
		}
		return c.JSON(fiber.Map{"report": report})
	})

	api.Get("/organizations/:id/sdg/alignment", func(c *fiber.Ctx) error {
		score, err := svcs.SDG.GetSDGAlignmentScore(c.UserContext(), c.Params("id"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(score)
	})

	registerStubs(api)
}

// reportWindow parses the optional start/end query params, defaulting to
// the last 30 days.
func reportWindow(start, end string) (time.Time, time.Time, error) {
	now := time.Now()
	s, e := now.AddDate(0, 0, -30), now
	var err error
	if start != "" {
		if s, err = time.Parse("2006-01-02", start); err != nil {
			return time.Time{}, time.Time{}, errors.New("start must be YYYY-MM-DD")
		}
	}
	if end != "" {
		if e, err = time.Parse("2006-01-02", end); err != nil {
			return time.Time{}, time.Time{}, errors.New("end must be YYYY-MM-DD")
		}
	}
	if !e.After(s) {
		return time.Time{}, time.Time{}, errors.New("end must be after start")
	}
	return s, e, nil
}

func errorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrOrganizationNotFound) || errors.Is(err, repository.ErrSiteNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// registerStubs keeps the dashboard's CRUD surface responding while those
// screens are built out.
func registerStubs(api fiber.Router) {
	stub := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "coming soon"})
	}
	api.Get("/devices", stub)
	api.Post("/devices", stub)
	api.Get("/alerts", stub)
	api.Post("/alerts", stub)
	api.Get("/users", stub)
	api.Post("/users", stub)
}
