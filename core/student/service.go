package student

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/BurhanAsghar/teacherportal/core"
)

var (
	ErrNotFound     = errors.New("student not found")
	ErrRollNoExists = errors.New("a student with this roll number already exists")
)

type (
	// Repository implementations must scope every lookup/mutation by the
	// (teacherID, rollno) pair; a roll number alone identifies nothing.
	Repository interface {
		CreateStudent(ctx context.Context, std Student) (Student, error)
		QueryStudentsByTeacher(ctx context.Context, teacherID string) ([]Student, error)
		GetStudentByRollNo(ctx context.Context, teacherID, rollno string) (Student, error)
		// UpdateStudent only saves set fields (Name, Subject).
		UpdateStudent(ctx context.Context, std Student) (Student, error)
		DeleteStudent(ctx context.Context, teacherID, rollno string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new Student owned by teacherID. The roll number must be
// unique within that teacher's records only; other teachers may reuse it.
func (svc *Service) Create(ctx context.Context, teacherID string, ns NewStudent) (Student, error) {
	if _, err := svc.repo.GetStudentByRollNo(ctx, teacherID, ns.RollNo); err == nil {
		return Student{}, core.NewValidationError(ErrRollNoExists, core.FieldError{Field: "rollno", Error: ErrRollNoExists.Error()})
	} else if errors.Cause(err) != ErrNotFound {
		return Student{}, errors.Wrap(err, "checking roll number")
	}

	now := time.Now().UTC()
	std := Student{
		ID:        uuid.New().String(),
		Name:      ns.Name,
		RollNo:    ns.RollNo,
		Subject:   ns.Subject,
		TeacherID: teacherID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	std, err := svc.repo.CreateStudent(ctx, std)
	if err != nil {
		// concurrent create; the store enforces the scoped uniqueness too
		if errors.Cause(err) == ErrRollNoExists {
			return Student{}, core.NewValidationError(err, core.FieldError{Field: "rollno", Error: ErrRollNoExists.Error()})
		}
		return Student{}, err
	}
	return std, nil
}

func (svc *Service) QueryByOwner(ctx context.Context, teacherID string) ([]Student, error) {
	return svc.repo.QueryStudentsByTeacher(ctx, teacherID)
}

func (svc *Service) GetByRollNo(ctx context.Context, teacherID, rollno string) (Student, error) {
	return svc.repo.GetStudentByRollNo(ctx, teacherID, rollno)
}

// Update applies a partial update; empty fields keep their prior values.
func (svc *Service) Update(ctx context.Context, teacherID, rollno string, us UpdateStudent) (Student, error) {
	std := Student{
		Name:      us.Name,
		RollNo:    rollno,
		Subject:   us.Subject,
		TeacherID: teacherID,
		UpdatedAt: time.Now().UTC(),
	}
	return svc.repo.UpdateStudent(ctx, std)
}

func (svc *Service) Delete(ctx context.Context, teacherID, rollno string) error {
	return svc.repo.DeleteStudent(ctx, teacherID, rollno)
}
