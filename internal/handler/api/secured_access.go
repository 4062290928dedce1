package api

import (
	"log/slog"
	"net/http"

	resdto "secured-access-demo/internal/handler/dto/response"
	"secured-access-demo/internal/handler/httperr"
	"secured-access-demo/internal/handler/middleware"
	"secured-access-demo/internal/pkg/errs"
	"secured-access-demo/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SecuredAccessHandler struct {
	securedAccess usecase.SecuredAccessUseCase
}

func NewSecuredAccessHandler(securedAccess usecase.SecuredAccessUseCase) *SecuredAccessHandler {
	return &SecuredAccessHandler{
		securedAccess: securedAccess,
	}
}

// @Summary Secured access demo
// @Description Logs in at the login service, then calls an authorized and a forbidden secured resource with the token
// @Tags demo
// @Produce json
// @Success 200 {object} resdto.SecuredAccessResponse
// @Failure 502 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/access-secured-demo [get]
func (h *SecuredAccessHandler) Get(c *gin.Context) {
	report, err := h.securedAccess.Run(c.Request.Context())
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrAuthenticationUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, httperr.MsgAuthenticationUnavailable, nil)
		default:
			slog.Error("secured access demo failed",
				"request_id", middleware.GetRequestID(c),
				"stack", errs.ExtractStackLines(err, 12),
			)
			httperr.AbortInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewSecuredAccessResponse(report))
}
