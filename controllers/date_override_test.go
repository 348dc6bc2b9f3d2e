package controllers

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotwise/booking-app/models"
)

func overrideTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/tenants/:tenantId/date-overrides", CreateDateOverride)
	app.Patch("/tenants/:tenantId/date-overrides/:id", UpdateDateOverride)
	app.Delete("/tenants/:tenantId/date-overrides/:id", DeleteDateOverride)
	return app
}

func TestDateOverride_RecreateAfterDelete(t *testing.T) {
	openTestDB(t)
	app := overrideTestApp()

	payload := dateOverrideRequest{Date: "2026-12-25", IsOpen: false, Reason: "holiday"}

	resp, err := app.Test(jsonRequest("POST", "/tenants/1/date-overrides", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.DateOverride
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp, err = app.Test(jsonRequest("DELETE", fmt.Sprintf("/tenants/1/date-overrides/%d", created.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// The holiday comes back the next year's planning pass; the freed
	// (tenant, date) pair must be reusable.
	resp, err = app.Test(jsonRequest("POST", "/tenants/1/date-overrides", payload))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestDateOverride_DuplicateDateRejected(t *testing.T) {
	openTestDB(t)
	app := overrideTestApp()

	payload := dateOverrideRequest{Date: "2026-12-25", IsOpen: false, Reason: "holiday"}

	resp, err := app.Test(jsonRequest("POST", "/tenants/1/date-overrides", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/tenants/1/date-overrides", payload))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUpdateDateOverride_MovingOntoOccupiedDate(t *testing.T) {
	openTestDB(t)
	app := overrideTestApp()

	resp, err := app.Test(jsonRequest("POST", "/tenants/1/date-overrides",
		dateOverrideRequest{Date: "2026-12-25", IsOpen: false, Reason: "holiday"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/tenants/1/date-overrides",
		dateOverrideRequest{Date: "2026-12-26", IsOpen: false, Reason: "holiday"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var second models.DateOverride
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))

	resp, err = app.Test(jsonRequest("PATCH", fmt.Sprintf("/tenants/1/date-overrides/%d", second.ID),
		dateOverrideRequest{Date: "2026-12-25", IsOpen: false, Reason: "holiday"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
