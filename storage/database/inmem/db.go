package inmemdb

import (
	"sync"

	"github.com/BurhanAsghar/teacherportal/core/student"
	"github.com/BurhanAsghar/teacherportal/core/user"
)

type (
	DB struct {
		user    *userTable
		student *studentTable
	}

	userTable struct {
		mutex sync.RWMutex
		table map[string]*user.User // by ID
	}

	studentTable struct {
		mutex sync.RWMutex
		table map[string]*student.Student // by ID
	}
)

func NewDB() *DB {
	return &DB{
		user:    &userTable{table: make(map[string]*user.User)},
		student: &studentTable{table: make(map[string]*student.Student)},
	}
}
