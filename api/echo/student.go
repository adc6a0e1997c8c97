package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/BurhanAsghar/teacherportal/core/student"
)

type studentApi struct {
	opts *Options
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := studentApi{opts: opts}

	// every operation is scoped to the authenticated teacher; a roll number
	// is only meaningful within that teacher's records
	tg := g.Group("/teacher", jwt)
	tg.POST("/addstudent", api.create)
	tg.GET("/students", api.query)

	sg := tg.Group("/student/:rollno")
	sg.GET("", api.retrieve)
	sg.PUT("", api.update)
	sg.DELETE("", api.destroy)
}

// Handlers

func (api *studentApi) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}

	std, err := api.opts.StudentSvc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, StudentResponse{Student: std})
}

func (api *studentApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	students, err := api.opts.StudentSvc.QueryByOwner(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, StudentListResponse{Students: students})
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	std, err := api.opts.StudentSvc.GetByRollNo(ctx.Request().Context(), claims.Subject, ctx.Param("rollno"))
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errStudentNotFound
		}
		return errors.Wrap(err, "finding student by roll number")
	}
	return ctx.JSON(http.StatusOK, StudentResponse{Student: std})
}

func (api *studentApi) update(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}

	std, err := api.opts.StudentSvc.Update(ctx.Request().Context(), claims.Subject, ctx.Param("rollno"), data)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errStudentNotFound
		}
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, StudentResponse{Student: std})
}

func (api *studentApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	if err := api.opts.StudentSvc.Delete(ctx.Request().Context(), claims.Subject, ctx.Param("rollno")); err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errStudentNotFound
		}
		return errors.Wrap(err, "deleting student")
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Student deleted"})
}

type (
	StudentResponse struct {
		Student student.Student `json:"student"`
	}

	StudentListResponse struct {
		Students []student.Student `json:"students"`
	}
)
