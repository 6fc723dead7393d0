package complaints

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/janmarg/CivicPortal/app/models"
	"github.com/janmarg/CivicPortal/app/repository"
)

type fakeComplaintRepo struct {
	complaints map[string]*models.Complaint
	images     []models.ComplaintImage
	nextID     uint

	createErr      error
	duplicateFirst int // number of Create calls to reject with ErrDuplicatedKey
	imageErr       error
	listRows       []repository.ComplaintWithCitizen
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: make(map[string]*models.Complaint)}
}

func (f *fakeComplaintRepo) Create(c *models.Complaint) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.duplicateFirst > 0 {
		f.duplicateFirst--
		return gorm.ErrDuplicatedKey
	}
	if _, taken := f.complaints[c.ComplaintNo]; taken {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	c.ID = f.nextID
	stored := *c
	f.complaints[c.ComplaintNo] = &stored
	return nil
}

func (f *fakeComplaintRepo) CreateImage(img *models.ComplaintImage) error {
	if f.imageErr != nil {
		return f.imageErr
	}
	f.images = append(f.images, *img)
	return nil
}

func (f *fakeComplaintRepo) GetByComplaintNo(no string) (*models.Complaint, error) {
	if c, ok := f.complaints[no]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeComplaintRepo) GetByComplaintNoAndAadhar(no, aadharNumber string) (*models.Complaint, error) {
	if c, ok := f.complaints[no]; ok && c.CitizenAadhar == aadharNumber {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeComplaintRepo) ComplaintNoExists(no string) (bool, error) {
	_, ok := f.complaints[no]
	return ok, nil
}

func (f *fakeComplaintRepo) UpdateStatus(id uint, status models.Status) error {
	for _, c := range f.complaints {
		if c.ID == id {
			c.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeComplaintRepo) ListWithCitizens() ([]repository.ComplaintWithCitizen, error) {
	return f.listRows, nil
}

func (f *fakeComplaintRepo) ListByAadhar(aadharNumber string) ([]models.Complaint, error) {
	var out []models.Complaint
	for _, c := range f.complaints {
		if c.CitizenAadhar == aadharNumber {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeComplaintRepo) Count() (int64, error) {
	return int64(len(f.complaints)), nil
}

func (f *fakeComplaintRepo) CountByStatus(status models.Status) (int64, error) {
	var n int64
	for _, c := range f.complaints {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeCitizenRepo struct {
	byAadhar map[string]*models.Citizen
}

func newFakeCitizenRepo(citizens ...*models.Citizen) *fakeCitizenRepo {
	m := make(map[string]*models.Citizen)
	for _, c := range citizens {
		m[c.AadharNumber] = c
	}
	return &fakeCitizenRepo{byAadhar: m}
}

func (f *fakeCitizenRepo) Create(*models.Citizen) error { return nil }
func (f *fakeCitizenRepo) GetByID(uint) (*models.Citizen, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCitizenRepo) GetByEmail(string) (*models.Citizen, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCitizenRepo) GetByAadhar(aadharNumber string) (*models.Citizen, error) {
	if c, ok := f.byAadhar[aadharNumber]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCitizenRepo) EmailExists(string) (bool, error)   { return false, nil }
func (f *fakeCitizenRepo) AadharExists(string) (bool, error)  { return false, nil }
func (f *fakeCitizenRepo) ContactExists(string) (bool, error) { return false, nil }
func (f *fakeCitizenRepo) Count() (int64, error)              { return int64(len(f.byAadhar)), nil }

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func testCitizen() *models.Citizen {
	return &models.Citizen{
		ID:           1,
		Name:         "Asha Rao",
		AadharNumber: "123456789012",
		Email:        "asha@example.com",
	}
}

func validInput() FileInput {
	return FileInput{
		Title:       "Streetlight broken",
		Location:    "MG Road, Ward 12",
		Category:    "Electricity",
		Priority:    "Urgent",
		Description: "The light has been out for a week.",
	}
}

func TestFile_PersistsPendingComplaint(t *testing.T) {
	repo := newFakeComplaintRepo()
	mailer := &fakeMailer{}
	svc := NewService(repo, newFakeCitizenRepo(), mailer)

	complaint, err := svc.File(testCitizen(), validInput())
	require.NoError(t, err)

	assert.Len(t, complaint.ComplaintNo, 6)
	assert.Equal(t, models.StatusPending, complaint.Status)
	assert.Equal(t, models.PriorityUrgent, complaint.Priority)
	assert.Equal(t, "123456789012", complaint.CitizenAadhar)
	assert.Equal(t, models.DefaultAffectedPeople, complaint.AffectedPeople)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "asha@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, complaint.ComplaintNo)
}

func TestFile_InvalidPriorityFallsBackToNormal(t *testing.T) {
	repo := newFakeComplaintRepo()
	svc := NewService(repo, newFakeCitizenRepo(), &fakeMailer{})

	in := validInput()
	in.Priority = "Weird"

	complaint, err := svc.File(testCitizen(), in)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityNormal, complaint.Priority)
	assert.Equal(t, models.PriorityNormal, repo.complaints[complaint.ComplaintNo].Priority)
}

func TestFile_MissingDescriptionPersistsNothing(t *testing.T) {
	repo := newFakeComplaintRepo()
	svc := NewService(repo, newFakeCitizenRepo(), &fakeMailer{})

	in := validInput()
	in.Description = "  "

	_, err := svc.File(testCitizen(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "description", verr.Field)
	assert.Empty(t, repo.complaints)
}

func TestFile_RetriesOnDuplicateComplaintNo(t *testing.T) {
	repo := newFakeComplaintRepo()
	repo.duplicateFirst = 2
	svc := NewService(repo, newFakeCitizenRepo(), &fakeMailer{})

	complaint, err := svc.File(testCitizen(), validInput())
	require.NoError(t, err)
	assert.Len(t, repo.complaints, 1)
	assert.Len(t, complaint.ComplaintNo, 6)
}

func TestFile_MailFailureIsNonFatal(t *testing.T) {
	repo := newFakeComplaintRepo()
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewService(repo, newFakeCitizenRepo(), mailer)

	complaint, err := svc.File(testCitizen(), validInput())

	var nerr *NotifyError
	require.ErrorAs(t, err, &nerr)
	require.NotNil(t, complaint)
	assert.Len(t, repo.complaints, 1, "complaint must stay saved when the email fails")
}

func TestFile_StoresImageRows(t *testing.T) {
	repo := newFakeComplaintRepo()
	svc := NewService(repo, newFakeCitizenRepo(), &fakeMailer{})

	in := validInput()
	in.ImageNames = []string{"abc_pothole.jpg", "def_closeup.png"}

	complaint, err := svc.File(testCitizen(), in)
	require.NoError(t, err)

	require.Len(t, repo.images, 2)
	assert.Equal(t, complaint.ID, repo.images[0].ComplaintID)
	assert.Equal(t, "abc_pothole.jpg", repo.images[0].ImagePath)
}

func TestResolve_UnknownNumber(t *testing.T) {
	svc := NewService(newFakeComplaintRepo(), newFakeCitizenRepo(), &fakeMailer{})

	_, err := svc.Resolve("999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_TransitionsAndNotifies(t *testing.T) {
	repo := newFakeComplaintRepo()
	citizen := testCitizen()
	mailer := &fakeMailer{}
	svc := NewService(repo, newFakeCitizenRepo(citizen), mailer)

	filed, err := svc.File(citizen, validInput())
	require.NoError(t, err)
	mailer.sent = nil

	result, err := svc.Resolve(filed.ComplaintNo)
	require.NoError(t, err)

	assert.False(t, result.AlreadySolved)
	assert.NoError(t, result.NotifyErr)
	assert.Equal(t, models.StatusSolved, repo.complaints[filed.ComplaintNo].Status)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "asha@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, filed.ComplaintNo)
}

func TestResolve_AlreadySolvedIsIdempotent(t *testing.T) {
	repo := newFakeComplaintRepo()
	citizen := testCitizen()
	mailer := &fakeMailer{}
	svc := NewService(repo, newFakeCitizenRepo(citizen), mailer)

	filed, err := svc.File(citizen, validInput())
	require.NoError(t, err)

	_, err = svc.Resolve(filed.ComplaintNo)
	require.NoError(t, err)
	mailer.sent = nil

	result, err := svc.Resolve(filed.ComplaintNo)
	require.NoError(t, err)

	assert.True(t, result.AlreadySolved)
	assert.Equal(t, models.StatusSolved, repo.complaints[filed.ComplaintNo].Status)
	assert.Empty(t, mailer.sent, "no mail on an already-solved complaint")
}

func TestResolve_MailFailurePreservesStatusChange(t *testing.T) {
	repo := newFakeComplaintRepo()
	citizen := testCitizen()
	mailer := &fakeMailer{}
	svc := NewService(repo, newFakeCitizenRepo(citizen), mailer)

	filed, err := svc.File(citizen, validInput())
	require.NoError(t, err)

	mailer.err = errors.New("smtp down")

	result, err := svc.Resolve(filed.ComplaintNo)
	require.NoError(t, err)

	var nerr *NotifyError
	assert.ErrorAs(t, result.NotifyErr, &nerr)
	assert.Equal(t, models.StatusSolved, repo.complaints[filed.ComplaintNo].Status)
}

func TestResolve_MissingCitizenSkipsMail(t *testing.T) {
	repo := newFakeComplaintRepo()
	mailer := &fakeMailer{}
	svc := NewService(repo, newFakeCitizenRepo(), mailer)

	filed, err := svc.File(testCitizen(), validInput())
	require.NoError(t, err)
	mailer.sent = nil

	result, err := svc.Resolve(filed.ComplaintNo)
	require.NoError(t, err)

	assert.NoError(t, result.NotifyErr)
	assert.Empty(t, mailer.sent)
	assert.Equal(t, models.StatusSolved, repo.complaints[filed.ComplaintNo].Status)
}

func TestLookup(t *testing.T) {
	repo := newFakeComplaintRepo()
	citizen := testCitizen()
	svc := NewService(repo, newFakeCitizenRepo(citizen), &fakeMailer{})

	filed, err := svc.File(citizen, validInput())
	require.NoError(t, err)

	found, err := svc.Lookup(citizen.AadharNumber, filed.ComplaintNo)
	require.NoError(t, err)
	assert.Equal(t, filed.ComplaintNo, found.ComplaintNo)

	_, err = svc.Lookup("999999789012", filed.ComplaintNo)
	assert.ErrorIs(t, err, ErrNotFound, "mismatched aadhar/complaint pair must not match")

	_, err = svc.Lookup("", filed.ComplaintNo)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
