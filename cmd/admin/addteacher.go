package main

import (
	"context"

	"github.com/BurhanAsghar/teacherportal/core"
	"github.com/BurhanAsghar/teacherportal/core/user"
)

// addTeacher creates a teacher account.
func (cli *commandLine) addTeacher(uname, email, pwd string) error {
	ctx := context.Background()
	nu := user.NewUser{
		Username: core.CleanString(uname, true /* lower */),
		Email:    core.CleanString(email, true /* lower */),
		Password: pwd,
	}

	if err := cli.usrSvc.CheckUniqueness(ctx, nu.Username, nu.Email); err != nil {
		return err
	}
	_, err := cli.usrSvc.Register(ctx, nu)
	return err
}
