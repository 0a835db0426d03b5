package api

import (
	"net/http"

	reqdto "loyalty-wallet/internal/handler/dto/request"
	resdto "loyalty-wallet/internal/handler/dto/response"
	"loyalty-wallet/internal/handler/httperr"
	"loyalty-wallet/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PassHandler struct {
	generator usecase.PassGenerator
}

func NewPassHandler(generator usecase.PassGenerator) *PassHandler {
	return &PassHandler{generator: generator}
}

// @Summary Generate wallet pass
// @Description Issue an Apple pass, a Google Wallet save link or a PWA fallback URL depending on the client platform
// @Tags passes
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePassRequest true "Pass request"
// @Success 200 {object} resdto.PassResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/passes [post]
func (h *PassHandler) Create(c *gin.Context) {
	var req reqdto.CreatePassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	in, err := req.ToUseCase(c.GetHeader("User-Agent"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.generator.GeneratePassForPlatform(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPassResult(result))
}

// @Summary Download Apple pass
// @Description Download a signed .pkpass for the user
// @Tags passes
// @Produce application/vnd.apple.pkpass
// @Param userId path string true "User ID"
// @Param stampCount query int false "Stamp count"
// @Param cardType query string false "Card type"
// @Success 200 {file} binary
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/passes/{userId}/apple [get]
func (h *PassHandler) DownloadApple(c *gin.Context) {
	var q reqdto.DownloadPassQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	buf, serial, err := h.generator.ApplePass(c.Request.Context(), usecase.PassRequest{
		UserID:     c.Param("userId"),
		StampCount: q.StampCount,
		CardType:   q.CardType,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+serial+`.pkpass"`)
	c.Data(http.StatusOK, usecase.PKPassMimeType, buf)
}
