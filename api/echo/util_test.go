package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/BurhanAsghar/teacherportal/core"
	"github.com/BurhanAsghar/teacherportal/core/student"
	"github.com/BurhanAsghar/teacherportal/core/user"
	inmemdb "github.com/BurhanAsghar/teacherportal/storage/database/inmem"
)

var (
	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errInvalidToken = httpErr{Error: "invalid or expired jwt"}
)

type testDeps struct {
	conf   *core.Config
	usrSvc *user.Service
	stdSvc *student.Service
}

func newTestConfig() *core.Config {
	conf := &core.Config{
		TestMode:  true,
		Env:       "TEST",
		AppName:   "TeacherPortal",
		SecretKey: []byte("test-secret-key"),
	}
	conf.Server.JWTExpirationDelta = time.Hour
	return conf
}

func setup(t *testing.T) (Server, testDeps) {
	t.Helper()

	conf := newTestConfig()

	// set up DB & repos
	db := inmemdb.NewDB()
	usrSvc := user.NewService(inmemdb.NewUserRepository(db))
	stdSvc := student.NewService(inmemdb.NewStudentRepository(db))

	validate := validator.New()
	translator := newTestTranslator()
	core.InitValidators(validate, translator)

	// set up server
	app := NewServer(
		&Options{
			Conf:           conf,
			Logger:         testLogger{std: log.New(os.Stdout, "TEST : ", log.LstdFlags)},
			UserSvc:        usrSvc,
			StudentSvc:     stdSvc,
			Validate:       validate,
			Translator:     translator,
			DisableReqLogs: true,
		},
	)
	return app, testDeps{conf: conf, usrSvc: usrSvc, stdSvc: stdSvc}
}

func newTestTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type testLogger struct {
	std *log.Logger
}

func (l testLogger) Enable(bool)                           {}
func (l testLogger) Debug(msg string, args ...interface{}) { l.std.Println(msg, args) }
func (l testLogger) Info(msg string, args ...interface{})  { l.std.Println(msg, args) }
func (l testLogger) Warn(msg string, args ...interface{})  { l.std.Println(msg, args) }
func (l testLogger) Error(msg string, args ...interface{}) { l.std.Println(msg, args) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.std.Fatalln(msg, args) }

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func createUser(t *testing.T, deps testDeps, uname, email, pwd string) user.User {
	t.Helper()
	usr, err := deps.usrSvc.Register(context.Background(), user.NewUser{Username: uname, Email: email, Password: pwd})
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func createStudent(t *testing.T, deps testDeps, teacherID, name, rollno, subject string) student.Student {
	t.Helper()
	std, err := deps.stdSvc.Create(context.Background(), teacherID, student.NewStudent{Name: name, RollNo: rollno, Subject: subject})
	if err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return std
}

func getToken(t *testing.T, usr user.User, conf *core.Config) string {
	t.Helper()
	token, err := GenerateToken(GetUserClaims(usr, conf), conf)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func getExpiredToken(t *testing.T, usr user.User, conf *core.Config) string {
	t.Helper()
	claims := GetUserClaims(usr, conf)
	claims.IssuedAt = time.Now().Add(-2 * time.Hour).Unix()
	claims.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	token, err := GenerateToken(claims, conf)
	if err != nil {
		t.Fatalf("getExpiredToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
