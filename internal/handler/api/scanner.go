package api

import (
	"net/http"

	reqdto "loyalty-wallet/internal/handler/dto/request"
	resdto "loyalty-wallet/internal/handler/dto/response"
	"loyalty-wallet/internal/handler/httperr"
	"loyalty-wallet/internal/handler/middleware"
	"loyalty-wallet/internal/usecase/commands"
	"loyalty-wallet/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScannerHandler struct {
	commands commands.ScannerCommands
	queries  queries.PassQueries
}

func NewScannerHandler(cmds commands.ScannerCommands, q queries.PassQueries) *ScannerHandler {
	return &ScannerHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Look up a card
// @Description Resolve a scanned USER or COFFEE code to the card state
// @Tags scanner
// @Accept json
// @Produce json
// @Param request body reqdto.ScanRequest true "Scanned code"
// @Success 200 {object} resdto.CardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Security BearerAuth
// @Router /api/scanner/lookup [post]
func (h *ScannerHandler) Lookup(c *gin.Context) {
	var req reqdto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	view, err := h.queries.CardByCode(c.Request.Context(), req.Code)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardView(view))
}

// @Summary Add stamps
// @Tags scanner
// @Accept json
// @Produce json
// @Param request body reqdto.AddStampsRequest true "Code and stamp count"
// @Success 200 {object} resdto.CardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Security BearerAuth
// @Router /api/scanner/stamps [post]
func (h *ScannerHandler) Stamps(c *gin.Context) {
	var req reqdto.AddStampsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errStaffMissing, httperr.MsgUnauthorized, nil)
		return
	}

	view, err := h.commands.AddStamps(c.Request.Context(), req.Code, req.Count, staffID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardView(view))
}

// @Summary Redeem reward
// @Tags scanner
// @Accept json
// @Produce json
// @Param request body reqdto.ScanRequest true "Scanned code"
// @Success 200 {object} resdto.CardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Security BearerAuth
// @Router /api/scanner/redeem [post]
func (h *ScannerHandler) Redeem(c *gin.Context) {
	var req reqdto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errStaffMissing, httperr.MsgUnauthorized, nil)
		return
	}

	view, err := h.commands.Redeem(c.Request.Context(), req.Code, staffID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardView(view))
}
