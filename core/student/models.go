package student

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BurhanAsghar/teacherportal/core"
)

// Student is a record owned by exactly one teacher.
// TeacherID is set on creation and never changes afterwards.
type Student struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	RollNo    string    `json:"rollno" db:"rollno"`
	Subject   string    `json:"subject" db:"subject"`
	TeacherID string    `json:"teacher_id" db:"teacher_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // UTC
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name    string `json:"name" validate:"required"`
	RollNo  string `json:"rollno" validate:"required"`
	Subject string `json:"subject" validate:"required"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.RollNo = core.CleanString(ns.RollNo)
	ns.Subject = core.CleanString(ns.Subject)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. An empty field is left unchanged; roll number and
// owner are immutable.
type UpdateStudent struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	us.Subject = core.CleanString(us.Subject)
	return validate.Struct(us)
}
