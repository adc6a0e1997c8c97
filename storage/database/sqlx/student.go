package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/BurhanAsghar/teacherportal/core/student"
)

var studentConstraints = map[string]error{
	"students_teacher_id_rollno_key": student.ErrRollNoExists,
}

type studentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	_, err := repo.db.ExecContext(
		ctx,
		`INSERT INTO students (id, name, rollno, subject, teacher_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		std.ID, std.Name, std.RollNo, std.Subject, std.TeacherID, std.CreatedAt, std.UpdatedAt,
	)
	if err != nil {
		return student.Student{}, constraintErr(err, studentConstraints)
	}
	return std, nil
}

func (repo *studentRepository) QueryStudentsByTeacher(ctx context.Context, teacherID string) ([]student.Student, error) {
	students := make([]student.Student, 0)
	err := repo.db.SelectContext(
		ctx, &students,
		`SELECT id, name, rollno, subject, teacher_id, created_at, updated_at
		 FROM students WHERE teacher_id = $1`,
		teacherID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying students by teacher")
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByRollNo(ctx context.Context, teacherID, rollno string) (student.Student, error) {
	var std student.Student
	err := repo.db.GetContext(
		ctx, &std,
		`SELECT id, name, rollno, subject, teacher_id, created_at, updated_at
		 FROM students WHERE teacher_id = $1 AND rollno = $2`,
		teacherID, rollno,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, errors.Wrap(err, "querying student by roll number")
	}
	return std, nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	var updated student.Student
	err := repo.db.GetContext(
		ctx, &updated,
		`UPDATE students
		 SET name = COALESCE(NULLIF($3, ''), name),
		     subject = COALESCE(NULLIF($4, ''), subject),
		     updated_at = $5
		 WHERE teacher_id = $1 AND rollno = $2
		 RETURNING id, name, rollno, subject, teacher_id, created_at, updated_at`,
		std.TeacherID, std.RollNo, std.Name, std.Subject, std.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, errors.Wrap(err, "updating student")
	}
	return updated, nil
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, teacherID, rollno string) error {
	res, err := repo.db.ExecContext(
		ctx,
		`DELETE FROM students WHERE teacher_id = $1 AND rollno = $2`,
		teacherID, rollno,
	)
	if err != nil {
		return errors.Wrap(err, "deleting student")
	}
	if n, err := res.RowsAffected(); err != nil {
		return errors.Wrap(err, "deleting student")
	} else if n == 0 {
		return student.ErrNotFound
	}
	return nil
}
