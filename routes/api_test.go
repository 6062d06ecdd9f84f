package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/itschibits/sharebnb-api/storage"
)

const testSecret = "testsecret"

// fakeUploader stands in for object storage; set fail to exercise the
// upstream-error paths.
type fakeUploader struct {
	fail bool
}

func (f *fakeUploader) Upload(_ context.Context, r io.Reader, _ int64, filename, _ string) (string, error) {
	if f.fail {
		return "", errors.New("bucket unavailable")
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return "https://cdn.test/" + filename, nil
}

// newTestAPI builds the full route surface on top of an in-memory
// sqlite database and a fake uploader.
func newTestAPI(t *testing.T) (*iris.Application, *API) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// A second connection would see its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	api := &API{
		DB:       db,
		Uploader: &fakeUploader{},
		Secret:   testSecret,
		Logger:   logger,
	}

	app := iris.New()
	app.Validator = validator.New()
	api.RegisterRoutes(app)
	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}

	return app, api
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, contents []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := fw.Write(contents); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	return &buf, w.FormDataContentType()
}

func doSignup(t *testing.T, app *iris.Application, username, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, map[string]string{
		"username": username,
		"email":    email,
		"password": password,
		"bio":      "hi",
		"location": "NYC",
	}, "", "", nil)

	req := httptest.NewRequest(http.MethodPost, "/signup", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func signupToken(t *testing.T, app *iris.Application, username, email string) string {
	t.Helper()

	resp := doSignup(t, app, username, email, "password1")
	if resp.Code != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d: %s", username, resp.Code, resp.Body.String())
	}
	token, _ := decodeJSON(t, resp)["token"].(string)
	if token == "" {
		t.Fatalf("signup %s: no token in %s", username, resp.Body.String())
	}
	return token
}

func doLogin(t *testing.T, app *iris.Application, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func doJSON(t *testing.T, app *iris.Application, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var m map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
	return m
}
