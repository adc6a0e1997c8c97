package inmemdb

import (
	"context"

	"github.com/BurhanAsghar/teacherportal/core/student"
)

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

// get must be called with the mutex held.
func (repo *studentRepository) get(teacherID, rollno string) (*student.Student, bool) {
	for _, std := range repo.db.table {
		if std.TeacherID == teacherID && std.RollNo == rollno {
			return std, true
		}
	}
	return nil, false
}

func (repo *studentRepository) CreateStudent(_ context.Context, std student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.get(std.TeacherID, std.RollNo); ok {
		return student.Student{}, student.ErrRollNoExists
	}
	repo.db.table[std.ID] = &std
	return std, nil
}

func (repo *studentRepository) QueryStudentsByTeacher(_ context.Context, teacherID string) ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	students := make([]student.Student, 0)
	for _, std := range repo.db.table {
		if std.TeacherID == teacherID {
			students = append(students, *std)
		}
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByRollNo(_ context.Context, teacherID, rollno string) (student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if std, ok := repo.get(teacherID, rollno); ok {
		return *std, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) UpdateStudent(_ context.Context, std student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// only save set fields
	origStd, ok := repo.get(std.TeacherID, std.RollNo)
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	if std.Name != "" {
		origStd.Name = std.Name
	}
	if std.Subject != "" {
		origStd.Subject = std.Subject
	}
	origStd.UpdatedAt = std.UpdatedAt
	return *origStd, nil
}

func (repo *studentRepository) DeleteStudent(_ context.Context, teacherID, rollno string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if std, ok := repo.get(teacherID, rollno); ok {
		delete(repo.db.table, std.ID)
		return nil
	}
	return student.ErrNotFound
}
