package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/BurhanAsghar/teacherportal/core"
	"github.com/BurhanAsghar/teacherportal/core/user"
)

type userApi struct {
	opts *Options
}

func registerUserAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := userApi{opts: opts}

	// un-authed endpoints
	g.POST("/signup", api.signup)
	g.POST("/login", api.login)

	// authed endpoints
	g.POST("/logout", api.logout, jwt)
}

// Handlers

func (api *userApi) signup(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}

	reqCtx := ctx.Request().Context()
	if err := data.Validate(reqCtx, api.opts.Validate, api.opts.UserSvc); err != nil {
		return err
	}

	usr, err := api.opts.UserSvc.Register(reqCtx, data)
	if err != nil {
		// a concurrent signup may win the race past CheckUniqueness
		switch errors.Cause(err) {
		case user.ErrEmailExists:
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: user.ErrEmailExists.Error()})
		case user.ErrUsernameExists:
			return core.NewValidationError(err, core.FieldError{Field: "username", Error: user.ErrUsernameExists.Error()})
		}
		return errors.Wrap(err, "registering user")
	}

	token, err := GenerateToken(GetUserClaims(usr, api.opts.Conf), api.opts.Conf)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusCreated, TokenResponse{Token: token})
}

func (api *userApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}

	claims, err := authenticate(ctx.Request().Context(), data.Email, data.Password, api.opts.UserSvc, api.opts.Conf)
	if err != nil {
		return err
	}
	token, err := GenerateToken(claims, api.opts.Conf)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// logout is stateless: it only requires a valid token and returns a
// confirmation. Issued tokens remain usable until natural expiry; a token
// denylist would slot in here if that ever becomes unacceptable.
func (api *userApi) logout(ctx echo.Context) error {
	if _, err := getContextClaims(ctx); err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Logout successful"})
}

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return validate.Struct(lr)
}
