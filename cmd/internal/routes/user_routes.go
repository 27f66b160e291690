package routes

import (
	"clinicdesk/cmd/internal/service"
	"clinicdesk/cmd/internal/utils/apierror"
	"clinicdesk/cmd/internal/utils/token"
	"github.com/labstack/echo/v4"
	"net/http"
)

type UserService interface {
	Login(req *service.UserLoginRequest) (*service.UserLoginResponse, apierror.ErrorResponse)
	GetUser(id int) (*service.UserResponse, apierror.ErrorResponse)
}

type TokenParser interface {
	ParseTokenDataCtx(c echo.Context) (*token.TokenData, error)
}

type DefaultUserRoute struct {
	UserService UserService
	Tokens      TokenParser
}

func NewUserDefault(userService UserService, tokens TokenParser) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService, Tokens: tokens}
}

func (u *DefaultUserRoute) CreateLogin(c echo.Context) error {
	var req service.UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) GetMe(c echo.Context) error {
	data, err := u.Tokens.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(401, apierror.InvalidAuthTokenError)
	}

	user, apierr := u.UserService.GetUser(data.UserID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "user": user})
}
