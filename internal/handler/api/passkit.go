package api

import (
	"net/http"
	"time"

	reqdto "loyalty-wallet/internal/handler/dto/request"
	resdto "loyalty-wallet/internal/handler/dto/response"
	"loyalty-wallet/internal/handler/httperr"
	"loyalty-wallet/internal/usecase"
	"loyalty-wallet/internal/usecase/commands"
	"loyalty-wallet/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// maxPushTokenBody bounds the registration payload read from the device.
const maxPushTokenBody = 4 << 10

type PassKitHandler struct {
	commands  commands.RegistrationCommands
	queries   queries.PassQueries
	generator usecase.PassGenerator
}

func NewPassKitHandler(
	cmds commands.RegistrationCommands,
	q queries.PassQueries,
	generator usecase.PassGenerator,
) *PassKitHandler {
	return &PassKitHandler{
		commands:  cmds,
		queries:   q,
		generator: generator,
	}
}

// @Summary Register device for pass updates
// @Tags passkit
// @Accept json,plain
// @Param deviceLibraryId path string true "Device library identifier"
// @Param passTypeId path string true "Pass type identifier"
// @Param serialNumber path string true "Serial number"
// @Success 201 "Registration created"
// @Success 200 "Registration updated"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Security ApplePass
// @Router /v1/devices/{deviceLibraryId}/registrations/{passTypeId}/{serialNumber} [post]
func (h *PassKitHandler) Register(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPushTokenBody)
	body, err := c.GetRawData()
	if err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	created, err := h.commands.RegisterDevice(c.Request.Context(), commands.RegisterDeviceRequest{
		DeviceLibraryID: c.Param("deviceLibraryId"),
		PassTypeID:      c.Param("passTypeId"),
		SerialNumber:    c.Param("serialNumber"),
		Body:            body,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	if created {
		c.Status(http.StatusCreated)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Unregister device
// @Tags passkit
// @Param deviceLibraryId path string true "Device library identifier"
// @Param passTypeId path string true "Pass type identifier"
// @Param serialNumber path string true "Serial number"
// @Success 200 "Registration removed"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Security ApplePass
// @Router /v1/devices/{deviceLibraryId}/registrations/{passTypeId}/{serialNumber} [delete]
func (h *PassKitHandler) Unregister(c *gin.Context) {
	err := h.commands.UnregisterDevice(
		c.Request.Context(),
		c.Param("deviceLibraryId"),
		c.Param("passTypeId"),
		c.Param("serialNumber"),
	)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary List updatable passes
// @Description Serial numbers of passes registered on the device that changed after the tag
// @Tags passkit
// @Produce json
// @Param deviceLibraryId path string true "Device library identifier"
// @Param passTypeId path string true "Pass type identifier"
// @Param passesUpdatedSince query string false "Update tag from a previous response"
// @Success 200 {object} resdto.UpdatedPassesResponse
// @Success 204 "No updates"
// @Failure 400 {object} httperr.Response
// @Router /v1/devices/{deviceLibraryId}/registrations/{passTypeId} [get]
func (h *PassKitHandler) ListUpdated(c *gin.Context) {
	view, err := h.queries.UpdatedSerials(
		c.Request.Context(),
		c.Param("deviceLibraryId"),
		c.Param("passTypeId"),
		c.Query("passesUpdatedSince"),
	)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if view == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdatedPasses(view))
}

// @Summary Latest version of a pass
// @Tags passkit
// @Produce application/vnd.apple.pkpass
// @Param passTypeId path string true "Pass type identifier"
// @Param serialNumber path string true "Serial number"
// @Param If-Modified-Since header string false "HTTP date of the cached copy"
// @Success 200 {file} binary
// @Success 304 "Not modified"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Security ApplePass
// @Router /v1/passes/{passTypeId}/{serialNumber} [get]
func (h *PassKitHandler) LatestPass(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := h.queries.PassBySerial(ctx, c.Param("passTypeId"), c.Param("serialNumber"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	// HTTP dates carry whole seconds only
	modified := view.LastModified.UTC().Truncate(time.Second)
	if since, err := http.ParseTime(c.GetHeader("If-Modified-Since")); err == nil && !modified.After(since) {
		c.Status(http.StatusNotModified)
		return
	}

	buf, err := h.generator.RenderStoredPass(ctx, view.UserID, view.Snapshot)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Last-Modified", modified.Format(http.TimeFormat))
	c.Data(http.StatusOK, usecase.PKPassMimeType, buf)
}

// @Summary Device log sink
// @Tags passkit
// @Accept json
// @Param request body reqdto.DeviceLogRequest true "Log lines"
// @Success 200 "Accepted"
// @Failure 429 {object} httperr.Response
// @Router /v1/log [post]
func (h *PassKitHandler) Log(c *gin.Context) {
	var req reqdto.DeviceLogRequest
	// malformed payloads are still acknowledged
	_ = c.ShouldBindJSON(&req)
	h.commands.RecordDeviceLogs(c.Request.Context(), req.Logs)
	c.Status(http.StatusOK)
}
