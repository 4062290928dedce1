package response

import "secured-access-demo/internal/domain/access"

type SecuredAccessResponse struct {
	AuthorizedStatusCode int    `json:"authorizedStatusCode" example:"200"`
	AuthorizedBody       string `json:"authorizedBody" example:"Acesso permitido"`
	ForbiddenStatusCode  int    `json:"forbiddenStatusCode" example:"403"`
	ForbiddenBody        string `json:"forbiddenBody" example:""`
}

func NewSecuredAccessResponse(report *access.Report) SecuredAccessResponse {
	return SecuredAccessResponse{
		AuthorizedStatusCode: report.Authorized.StatusCode,
		AuthorizedBody:       report.Authorized.Body,
		ForbiddenStatusCode:  report.Forbidden.StatusCode,
		ForbiddenBody:        report.Forbidden.Body,
	}
}
