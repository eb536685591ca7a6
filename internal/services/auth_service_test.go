package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
	"gorm.io/gorm"
)

type recordedMail struct {
	to      string
	subject string
	body    string
}

// memMailer captures outgoing mail for assertions instead of delivering it
type memMailer struct {
	sent []recordedMail
	fail bool
}

func (m *memMailer) Send(to, subject, body string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, recordedMail{to: to, subject: subject, body: body})
	return nil
}

func (m *memMailer) lastToken(t *testing.T) string {
	t.Helper()
	if len(m.sent) == 0 {
		t.Fatal("no mail captured")
	}
	body := m.sent[len(m.sent)-1].body
	idx := strings.LastIndex(body, "/")
	if idx < 0 || idx == len(body)-1 {
		t.Fatalf("no token in mail body %q", body)
	}
	return body[idx+1:]
}

func newAuthFixture(t *testing.T) (*gorm.DB, *AuthService, *memMailer) {
	t.Helper()
	db := setupTestDB(t)
	mail := &memMailer{}
	svc := NewAuthService(db, NewProfileService(db), mail, testLogger(), "test-secret", "http://localhost:8080")
	return db, svc, mail
}

func registerReq(username string) *models.RegisterRequest {
	return &models.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "sw0rdfish-pass",
		Password2: "sw0rdfish-pass",
	}
}

func TestRegisterCreatesInactiveUserWithProfile(t *testing.T) {
	db, svc, mail := newAuthFixture(t)

	user, err := svc.Register(registerReq("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.IsActive {
		t.Fatal("new account is active before verification")
	}
	if p := profileOf(t, db, user.ID); p.UserID != user.ID {
		t.Fatalf("profile user_id = %d, want %d", p.UserID, user.ID)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("mails sent = %d, want 1", len(mail.sent))
	}
	if mail.sent[0].to != "alice@example.com" {
		t.Fatalf("mail to = %q, want alice@example.com", mail.sent[0].to)
	}
}

func TestRegisterValidation(t *testing.T) {
	_, svc, _ := newAuthFixture(t)

	req := registerReq("no spaces here")
	if _, err := svc.Register(req); !apperrors.IsValidation(err) {
		t.Fatalf("bad username error = %v, want validation error", err)
	}

	req = registerReq("bob")
	req.Password2 = "different-pass"
	if _, err := svc.Register(req); !apperrors.IsValidation(err) {
		t.Fatalf("mismatched passwords error = %v, want validation error", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	_, svc, _ := newAuthFixture(t)

	if _, err := svc.Register(registerReq("alice")); err != nil {
		t.Fatalf("first register: %v", err)
	}

	if _, err := svc.Register(registerReq("alice")); !apperrors.IsConflict(err) {
		t.Fatalf("duplicate username error = %v, want conflict", err)
	}

	req := registerReq("alice2")
	req.Email = "alice@example.com"
	if _, err := svc.Register(req); !apperrors.IsConflict(err) {
		t.Fatalf("duplicate email error = %v, want conflict", err)
	}
}

func TestRegisterSurvivesMailFailure(t *testing.T) {
	_, svc, mail := newAuthFixture(t)
	mail.fail = true

	user, err := svc.Register(registerReq("alice"))
	if err != nil {
		t.Fatalf("register with failing mailer: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("user not persisted")
	}
}

func TestLoginRequiresVerifiedAccount(t *testing.T) {
	_, svc, mail := newAuthFixture(t)

	if _, err := svc.Register(registerReq("alice")); err != nil {
		t.Fatalf("register: %v", err)
	}

	login := &models.LoginRequest{Username: "alice", Password: "sw0rdfish-pass"}
	if _, _, err := svc.Login(login); !errors.Is(err, apperrors.ErrAccountInactive) {
		t.Fatalf("login before verification error = %v, want ErrAccountInactive", err)
	}

	if err := svc.VerifyEmail(mail.lastToken(t)); err != nil {
		t.Fatalf("verify: %v", err)
	}
	// verifying twice is harmless
	if err := svc.VerifyEmail(mail.lastToken(t)); err != nil {
		t.Fatalf("repeated verify: %v", err)
	}

	token, user, err := svc.Login(login)
	if err != nil {
		t.Fatalf("login after verification: %v", err)
	}
	if token == "" {
		t.Fatal("empty access token")
	}
	if user.LastLogin == nil {
		t.Fatal("last_login not stamped")
	}
}

func TestLoginByEmailAndBadCredentials(t *testing.T) {
	_, svc, mail := newAuthFixture(t)

	if _, err := svc.Register(registerReq("alice")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.VerifyEmail(mail.lastToken(t)); err != nil {
		t.Fatalf("verify: %v", err)
	}

	if _, _, err := svc.Login(&models.LoginRequest{Username: "alice@example.com", Password: "sw0rdfish-pass"}); err != nil {
		t.Fatalf("login by email: %v", err)
	}

	if _, _, err := svc.Login(&models.LoginRequest{Username: "alice", Password: "wrong"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(&models.LoginRequest{Username: "nobody", Password: "whatever"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown user error = %v, want ErrInvalidCredentials", err)
	}
}

func TestChangePassword(t *testing.T) {
	_, svc, mail := newAuthFixture(t)

	user, err := svc.Register(registerReq("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.VerifyEmail(mail.lastToken(t)); err != nil {
		t.Fatalf("verify: %v", err)
	}

	wrong := &models.ChangePasswordRequest{OldPassword: "nope", NewPassword: "brand-new-pass"}
	if err := svc.ChangePassword(user.ID, wrong); !apperrors.IsValidation(err) {
		t.Fatalf("wrong old password error = %v, want validation error", err)
	}

	ok := &models.ChangePasswordRequest{OldPassword: "sw0rdfish-pass", NewPassword: "brand-new-pass"}
	if err := svc.ChangePassword(user.ID, ok); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, _, err := svc.Login(&models.LoginRequest{Username: "alice", Password: "brand-new-pass"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	_, svc, mail := newAuthFixture(t)

	if _, err := svc.Register(registerReq("alice")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.VerifyEmail(mail.lastToken(t)); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// unknown addresses are indistinguishable from known ones
	if err := svc.RequestPasswordReset("ghost@example.com"); err != nil {
		t.Fatalf("reset for unknown email: %v", err)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("mails sent = %d, want 1", len(mail.sent))
	}

	if err := svc.RequestPasswordReset("alice@example.com"); err != nil {
		t.Fatalf("request reset: %v", err)
	}
	if err := svc.ConfirmPasswordReset(mail.lastToken(t), "reset-pass-123"); err != nil {
		t.Fatalf("confirm reset: %v", err)
	}

	if _, _, err := svc.Login(&models.LoginRequest{Username: "alice", Password: "reset-pass-123"}); err != nil {
		t.Fatalf("login after reset: %v", err)
	}
	if _, _, err := svc.Login(&models.LoginRequest{Username: "alice", Password: "sw0rdfish-pass"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("login with old password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestActionTokenPurposeIsEnforced(t *testing.T) {
	_, svc, mail := newAuthFixture(t)

	if _, err := svc.Register(registerReq("alice")); err != nil {
		t.Fatalf("register: %v", err)
	}

	// the verification token must not redeem as a password reset
	verifyToken := mail.lastToken(t)
	if err := svc.ConfirmPasswordReset(verifyToken, "sneaky-pass-123"); !apperrors.IsValidation(err) {
		t.Fatalf("cross-purpose token error = %v, want validation error", err)
	}

	if err := svc.VerifyEmail("not-a-token"); !apperrors.IsValidation(err) {
		t.Fatalf("garbage token error = %v, want validation error", err)
	}
}
