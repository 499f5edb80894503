package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"helpize/internal/models"
	"helpize/internal/repositories/memory"
	"helpize/internal/utils"
	"helpize/internal/validators"
	"helpize/pkg/logger"
	"helpize/pkg/sms"
	"helpize/pkg/storage"
)

func newAuth(t *testing.T) (AuthService, context.Context) {
	t.Helper()
	svc := NewAuthService(memory.NewUserRepository(), bcrypt.MinCost, logger.NewNop())
	ctx := context.Background()

	user, password := DefaultUser()
	require.NoError(t, svc.EnsureUser(ctx, user, password))
	return svc, ctx
}

func signupRequest(email string) *validators.SignupRequest {
	return &validators.SignupRequest{
		Email:      email,
		Name:       "New User",
		Age:        "22",
		Phone:      "555-0100",
		BloodGroup: "A+",
		Address:    "1 Elm St",
		Password:   "secret",
	}
}

func TestAuthService_SeededAdminCanLogin(t *testing.T) {
	svc, ctx := newAuth(t)

	user, err := svc.Login(ctx, &validators.LoginRequest{Email: "admin@example.com", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "Admin User", user.Name)
	assert.NotEqual(t, "password", user.Password, "password must be stored hashed")
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, ctx := newAuth(t)

	_, wrongPassword := svc.Login(ctx, &validators.LoginRequest{Email: "admin@example.com", Password: "nope"})
	_, unknownUser := svc.Login(ctx, &validators.LoginRequest{Email: "ghost@example.com", Password: "password"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_Signup(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewAuthService(repo, bcrypt.MinCost, logger.NewNop())
	ctx := context.Background()

	user, err := svc.Signup(ctx, signupRequest("new@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 22, user.Age)

	logged, err := svc.Login(ctx, &validators.LoginRequest{Email: "new@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user.Email, logged.Email)

	profile, err := svc.GetProfile(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1 Elm St", profile.Address)
}

func TestAuthService_DuplicateSignupLeavesDirectoryUnchanged(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewAuthService(repo, bcrypt.MinCost, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest("dup@example.com"))
	require.NoError(t, err)
	before, _ := repo.Count(ctx)

	again := signupRequest("dup@example.com")
	again.Name = "Someone Else"
	_, err = svc.Signup(ctx, again)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	after, _ := repo.Count(ctx)
	assert.Equal(t, before, after)

	profile, err := svc.GetProfile(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "New User", profile.Name)
}

func TestAuthService_SignupValidation(t *testing.T) {
	svc, ctx := newAuth(t)

	req := signupRequest("bad@example.com")
	req.Age = "old"
	_, err := svc.Signup(ctx, req)

	var verrs validators.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has("age"))
}

func TestAuthService_SignupRejectsOverlongPassword(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewAuthService(repo, bcrypt.MinCost, logger.NewNop())
	ctx := context.Background()

	req := signupRequest("long@example.com")
	req.Password = strings.Repeat("a", 80)
	_, err := svc.Signup(ctx, req)

	var verrs validators.ValidationErrors
	require.True(t, errors.As(err, &verrs), "got %v", err)
	assert.True(t, verrs.Has("password"))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAuthService_GetProfileUnknown(t *testing.T) {
	svc, ctx := newAuth(t)
	_, err := svc.GetProfile(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

type recordingNotifier struct {
	alerts []*models.Alert
	err    error
}

func (r *recordingNotifier) NotifyAlert(ctx context.Context, alert *models.Alert) error {
	r.alerts = append(r.alerts, alert)
	return r.err
}

func TestAlertService_CreateAndList(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("provider down")}
	ok := &recordingNotifier{}
	svc := NewAlertService(memory.NewAlertRepository(), logger.NewNop(), failing, ok)
	ctx := context.Background()

	first, err := svc.Create(ctx, "Hall", "fire", nil)
	require.NoError(t, err, "notifier errors must not fail the alert")
	_, err = svc.Create(ctx, "Park", "flood", utils.StringPtr("admin@example.com"))
	require.NoError(t, err)

	assert.False(t, first.ID.IsZero())
	assert.Len(t, failing.alerts, 2)
	assert.Len(t, ok.alerts, 2)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Hall", all[0].Location)
	assert.Equal(t, "Park", all[1].Location)

	mine, err := svc.ListByUser(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "flood", mine[0].Message)
}

type fakeSMS struct {
	requests []*sms.SMSRequest
}

func (f *fakeSMS) SendSMS(ctx context.Context, request *sms.SMSRequest) (*sms.SMSResponse, error) {
	f.requests = append(f.requests, request)
	return &sms.SMSResponse{MessageID: "m1", Status: "sent"}, nil
}

func TestSMSNotifier(t *testing.T) {
	provider := &fakeSMS{}
	notifier := NewSMSNotifier(provider, "+15550100")

	err := notifier.NotifyAlert(context.Background(), &models.Alert{Location: "Hall", Message: "fire"})
	require.NoError(t, err)

	require.Len(t, provider.requests, 1)
	assert.Equal(t, "+15550100", provider.requests[0].To)
	assert.Equal(t, "SOS at Hall from anonymous: fire", provider.requests[0].Message)
}

func TestFormatSOSMessage_Truncates(t *testing.T) {
	msg := FormatSOSMessage(&models.Alert{Message: strings.Repeat("x", 300), User: utils.StringPtr("a@b.c")})
	assert.Len(t, msg, 160)
	assert.True(t, strings.HasPrefix(msg, "SOS at unknown location from a@b.c: "))
}

func TestResourceService_List(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	svc := NewResourceService(memory.NewResourceRepository(memory.DefaultResources()), store, logger.NewNop())
	ctx := context.Background()

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	disaster, err := svc.List(ctx, "Disas")
	require.NoError(t, err)
	require.Len(t, disaster, 1)
	assert.Equal(t, "Emergency Kit Guide", disaster[0].Title)

	none, err := svc.List(ctx, "disaster")
	require.NoError(t, err)
	assert.Empty(t, none, "category match is case-sensitive")
}

func TestResourceService_Upload(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	svc := NewResourceService(memory.NewResourceRepository(nil), store, logger.NewNop())
	ctx := context.Background()

	resp, err := svc.Upload(ctx, "../../etc/My Guide.pdf", strings.NewReader("data"), 4, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "My_Guide.pdf", resp.Key)

	files, err := svc.ListUploads(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "My_Guide.pdf", files[0].Key)

	_, err = svc.Upload(ctx, "../..", strings.NewReader("x"), 1, "")
	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestBlogService(t *testing.T) {
	svc := NewBlogService(memory.NewBlogRepository(memory.DefaultBlogPosts()))

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Placeholder blog content...", posts[0].Content)

	_, err = svc.Get(context.Background(), 42)
	assert.Error(t, err)
}

func fixedClock(day time.Time) func() time.Time {
	return func() time.Time { return day }
}

func TestActivityLog_ScenarioAppendsMatchingRecord(t *testing.T) {
	today := time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC)
	log := NewActivityLog(fixedClock(today), logger.NewNop())

	date := utils.StartOfDay(today)
	record, err := log.Submit(&validators.ActivityRequest{
		RegistrationLink: "https://x.org",
		Date:             &date,
		Place:            "Hall",
		Description:      "desc",
		Cause:            "Health",
		Poster:           "p.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, log.Len())

	var got []models.Activity
	for a := range log.All() {
		got = append(got, a)
	}
	require.Len(t, got, 1)
	assert.Equal(t, record, got[0])
	assert.Equal(t, "https://x.org", got[0].RegistrationLink)
	assert.Equal(t, date, got[0].Date)
	assert.Equal(t, "Hall", got[0].Place)
	assert.Equal(t, "desc", got[0].Description)
	assert.Equal(t, models.CauseHealth, got[0].Cause)
	assert.Equal(t, "p.jpg", got[0].Poster)
	assert.Empty(t, got[0].AttachedFile)
}

func TestActivityLog_RecordKeepsInputExactly(t *testing.T) {
	today := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	log := NewActivityLog(fixedClock(today), logger.NewNop())

	req := &validators.ActivityRequest{
		RegistrationLink: "https://x.org",
		Date:             &today,
		Place:            " Hall ",
		Description:      "desc ",
		Cause:            "Health",
		Poster:           "p.jpg",
	}
	record, err := log.Submit(req)
	require.NoError(t, err)

	assert.Equal(t, " Hall ", req.Place)
	assert.Equal(t, " Hall ", record.Place)
	assert.Equal(t, "desc ", record.Description)
}

func TestActivityLog_IncompleteLeavesLogUnchanged(t *testing.T) {
	today := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	log := NewActivityLog(fixedClock(today), logger.NewNop())

	_, err := log.Submit(&validators.ActivityRequest{RegistrationLink: "https://x.org", Cause: "Select Cause"})

	var verrs validators.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has("cause"))
	assert.True(t, verrs.Has("poster"))
	assert.Equal(t, 0, log.Len())
}

func TestActivityLog_AppendOnlyAndRestartable(t *testing.T) {
	today := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	log := NewActivityLog(fixedClock(today), logger.NewNop())

	places := []string{"Hall", "Park", "School"}
	for _, place := range places {
		d := today
		_, err := log.Submit(&validators.ActivityRequest{
			RegistrationLink: "https://x.org",
			Date:             &d,
			Place:            place,
			Description:      "desc",
			Cause:            "Education",
			Poster:           "p.png",
		})
		require.NoError(t, err)
	}

	collect := func() []string {
		var out []string
		for a := range log.All() {
			out = append(out, a.Place)
		}
		return out
	}

	assert.Equal(t, places, collect())
	assert.Equal(t, places, collect(), "second pass yields the same sequence")

	for a := range log.All() {
		assert.Equal(t, "Hall", a.Place)
		break
	}
	assert.Equal(t, 3, log.Len())
}
