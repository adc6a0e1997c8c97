package student_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurhanAsghar/teacherportal/core"
	"github.com/BurhanAsghar/teacherportal/core/student"
	inmemdb "github.com/BurhanAsghar/teacherportal/storage/database/inmem"
)

func newService() *student.Service {
	return student.NewService(inmemdb.NewStudentRepository(inmemdb.NewDB()))
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	std, err := svc.Create(ctx, "teacher-a", student.NewStudent{Name: "Alice", RollNo: "R1", Subject: "Maths"})
	require.NoError(t, err)
	assert.NotEmpty(t, std.ID)
	assert.Equal(t, "teacher-a", std.TeacherID)
	assert.Equal(t, std.CreatedAt, std.UpdatedAt)

	t.Run("duplicate rollno for the same teacher", func(t *testing.T) {
		_, err := svc.Create(ctx, "teacher-a", student.NewStudent{Name: "Bob", RollNo: "R1", Subject: "Physics"})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "rollno", vErr.Fields[0].Field)
	})

	t.Run("another teacher may reuse the rollno", func(t *testing.T) {
		std, err := svc.Create(ctx, "teacher-b", student.NewStudent{Name: "Carol", RollNo: "R1", Subject: "Biology"})
		require.NoError(t, err)
		assert.Equal(t, "teacher-b", std.TeacherID)
	})
}

func TestService_QueryByOwner(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	stdA1, err := svc.Create(ctx, "teacher-a", student.NewStudent{Name: "Alice", RollNo: "R1", Subject: "Maths"})
	require.NoError(t, err)
	stdA2, err := svc.Create(ctx, "teacher-a", student.NewStudent{Name: "Bob", RollNo: "R2", Subject: "Physics"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "teacher-b", student.NewStudent{Name: "Carol", RollNo: "R1", Subject: "Biology"})
	require.NoError(t, err)

	students, err := svc.QueryByOwner(ctx, "teacher-a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []student.Student{stdA1, stdA2}, students)

	students, err = svc.QueryByOwner(ctx, "teacher-c")
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestService_GetByRollNo(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	std, err := svc.Create(ctx, "teacher-a", student.NewStudent{Name: "Alice", RollNo: "R1", Subject: "Maths"})
	require.NoError(t, err)

	got, err := svc.GetByRollNo(ctx, "teacher-a", "R1")
	require.NoError(t, err)
	assert.Equal(t, std, got)

	// the pair scopes the lookup; the rollno alone matches nothing
	_, err = svc.GetByRollNo(ctx, "teacher-b", "R1")
	assert.Equal(t, student.ErrNotFound, err)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	std, err := svc.Create(ctx, "teacher-a", student.NewStudent{Name: "Alice", RollNo: "R1", Subject: "Maths"})
	require.NoError(t, err)

	t.Run("name only", func(t *testing.T) {
		got, err := svc.Update(ctx, "teacher-a", "R1", student.UpdateStudent{Name: "Alicia"})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.Name)
		assert.Equal(t, std.Subject, got.Subject)
		assert.True(t, got.UpdatedAt.After(std.UpdatedAt))
	})

	t.Run("subject only", func(t *testing.T) {
		got, err := svc.Update(ctx, "teacher-a", "R1", student.UpdateStudent{Subject: "Chemistry"})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.Name)
		assert.Equal(t, "Chemistry", got.Subject)
	})

	t.Run("not the owner", func(t *testing.T) {
		_, err := svc.Update(ctx, "teacher-b", "R1", student.UpdateStudent{Name: "X"})
		assert.Equal(t, student.ErrNotFound, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Create(ctx, "teacher-a", student.NewStudent{Name: "Alice", RollNo: "R1", Subject: "Maths"})
	require.NoError(t, err)

	assert.Equal(t, student.ErrNotFound, svc.Delete(ctx, "teacher-b", "R1"))

	require.NoError(t, svc.Delete(ctx, "teacher-a", "R1"))
	assert.Equal(t, student.ErrNotFound, svc.Delete(ctx, "teacher-a", "R1"))

	_, err = svc.GetByRollNo(ctx, "teacher-a", "R1")
	assert.Equal(t, student.ErrNotFound, err)
}
