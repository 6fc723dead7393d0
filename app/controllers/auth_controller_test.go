package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/janmarg/CivicPortal/app/models"
	"github.com/janmarg/CivicPortal/internal/pkg/config"
	"github.com/janmarg/CivicPortal/internal/pkg/constants"
)

type fakeCitizenStore struct {
	emailTaken   bool
	aadharTaken  bool
	contactTaken bool
	createErr    error
	created      []*models.Citizen
}

func (f *fakeCitizenStore) Create(c *models.Citizen) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCitizenStore) GetByID(uint) (*models.Citizen, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCitizenStore) GetByEmail(string) (*models.Citizen, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCitizenStore) GetByAadhar(string) (*models.Citizen, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCitizenStore) EmailExists(string) (bool, error)   { return f.emailTaken, nil }
func (f *fakeCitizenStore) AadharExists(string) (bool, error)  { return f.aadharTaken, nil }
func (f *fakeCitizenStore) ContactExists(string) (bool, error) { return f.contactTaken, nil }
func (f *fakeCitizenStore) Count() (int64, error)              { return int64(len(f.created)), nil }

func newRegisterApp(store *fakeCitizenStore) *fiber.App {
	InitializeAuthController(store, config.HCaptchaConfig{})
	app := fiber.New()
	app.Post(constants.RouteRegister, HandleRegister)
	return app
}

func validRegisterForm() url.Values {
	return url.Values{
		"name":          {"Asha Rao"},
		"contact":       {"9876543210"},
		"aadhar_number": {"123456789012"},
		"address":       {"12 MG Road, Ward 12"},
		"email":         {"asha@example.com"},
		"password":      {"secret123"},
	}
}

func postRegister(t *testing.T, app *fiber.App, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, constants.RouteRegister, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleRegister_DuplicateEmailRejected(t *testing.T) {
	store := &fakeCitizenStore{emailTaken: true}
	app := newRegisterApp(store)

	resp := postRegister(t, app, validRegisterForm())

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, constants.RouteRegister, resp.Header.Get("Location"))
	assert.Empty(t, store.created, "no citizen row on a duplicate email")
}

func TestHandleRegister_DuplicateAadharRejected(t *testing.T) {
	store := &fakeCitizenStore{aadharTaken: true}
	app := newRegisterApp(store)

	resp := postRegister(t, app, validRegisterForm())

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, constants.RouteRegister, resp.Header.Get("Location"))
	assert.Empty(t, store.created, "no citizen row on a duplicate Aadhar")
}

func TestHandleRegister_DuplicateContactRejected(t *testing.T) {
	store := &fakeCitizenStore{contactTaken: true}
	app := newRegisterApp(store)

	resp := postRegister(t, app, validRegisterForm())

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, constants.RouteRegister, resp.Header.Get("Location"))
	assert.Empty(t, store.created, "no citizen row on a duplicate contact")
}

// A second registration racing past the pre-checks is still rejected by the
// unique indexes; the handler turns the duplicate-key error into a redirect
// back to the form.
func TestHandleRegister_UniqueIndexBackstop(t *testing.T) {
	store := &fakeCitizenStore{createErr: gorm.ErrDuplicatedKey}
	app := newRegisterApp(store)

	resp := postRegister(t, app, validRegisterForm())

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, constants.RouteRegister, resp.Header.Get("Location"))
	assert.Empty(t, store.created)
}

func TestHandleRegister_MalformedInputRejected(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value string
	}{
		{"short contact", "contact", "12345"},
		{"alphabetic contact", "contact", "98765432ab"},
		{"short aadhar", "aadhar_number", "1234567890"},
		{"missing email", "email", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeCitizenStore{}
			app := newRegisterApp(store)

			form := validRegisterForm()
			form.Set(tc.field, tc.value)
			resp := postRegister(t, app, form)

			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, constants.RouteRegister, resp.Header.Get("Location"))
			assert.Empty(t, store.created)
		})
	}
}
