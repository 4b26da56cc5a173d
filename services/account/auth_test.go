package account

import (
	"errors"
	"fmt"
	"testing"

	"medcrm/models"
	"medcrm/utils"
)

// mockAccountRepo is an in-memory AccountRepository.
type mockAccountRepo struct {
	accounts map[string]models.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[string]models.Account)}
}

func (m *mockAccountRepo) GetByID(id string) (*models.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account with id %s not found", id)
	}
	dup := a
	return &dup, nil
}

func (m *mockAccountRepo) GetByEmail(email string) (*models.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			dup := a
			return &dup, nil
		}
	}
	return nil, nil
}

func (m *mockAccountRepo) GetByTokenHash(tokenHash string) (*models.Account, error) {
	for _, a := range m.accounts {
		if a.TokenHash != "" && a.TokenHash == tokenHash {
			dup := a
			return &dup, nil
		}
	}
	return nil, fmt.Errorf("no account matches token hash")
}

func (m *mockAccountRepo) Create(a *models.Account) error {
	m.accounts[a.ID] = *a
	return nil
}

func (m *mockAccountRepo) Update(a *models.Account) error {
	if _, ok := m.accounts[a.ID]; !ok {
		return fmt.Errorf("account with id %s not found", a.ID)
	}
	m.accounts[a.ID] = *a
	return nil
}

func (m *mockAccountRepo) Delete(id string) error {
	delete(m.accounts, id)
	return nil
}

func TestRegisterAndSignIn(t *testing.T) {
	svc, _ := NewDefaultAccountService(newMockAccountRepo())

	resp, err := svc.Register(models.RegisterAccountRequest{
		Email:    "admin@clinic.test",
		FullName: "Sam Admin",
		Password: "correct-horse",
		Role:     models.RoleAdmin,
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" {
		t.Error("registration must return a session token")
	}
	if resp.Account.PasswordHash == "correct-horse" {
		t.Error("password must not be stored in the clear")
	}

	// The issued token resolves back to the account via its hash.
	if _, err := utils.ValidateToken(resp.Token); err != nil {
		t.Errorf("issued token does not validate: %v", err)
	}

	signedIn, err := svc.SignIn(models.SignInRequest{
		Email:    "admin@clinic.test",
		Password: "correct-horse",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if signedIn.Account.ID != resp.Account.ID {
		t.Error("sign-in resolved a different account")
	}
	if signedIn.Account.LastLoginAt.IsZero() {
		t.Error("sign-in must stamp last_login_at")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := NewDefaultAccountService(newMockAccountRepo())
	req := models.RegisterAccountRequest{
		Email:    "staff@clinic.test",
		FullName: "Pat Staff",
		Password: "password123",
	}
	if _, err := svc.Register(req, ""); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(req, ""); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	svc, _ := NewDefaultAccountService(newMockAccountRepo())
	if _, err := svc.Register(models.RegisterAccountRequest{
		Email:    "staff@clinic.test",
		FullName: "Pat Staff",
		Password: "password123",
	}, ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.SignIn(models.SignInRequest{
		Email:    "staff@clinic.test",
		Password: "wrong",
	}, ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}

	if _, err := svc.SignIn(models.SignInRequest{
		Email:    "nobody@clinic.test",
		Password: "password123",
	}, ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDefaultsToStaffRole(t *testing.T) {
	svc, _ := NewDefaultAccountService(newMockAccountRepo())
	resp, err := svc.Register(models.RegisterAccountRequest{
		Email:    "x@clinic.test",
		FullName: "X",
		Password: "password123",
		Role:     "superuser",
	}, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Account.Role != models.RoleStaff {
		t.Errorf("role = %s, want staff", resp.Account.Role)
	}
}

func TestSignOutRevokesToken(t *testing.T) {
	repo := newMockAccountRepo()
	svc, _ := NewDefaultAccountService(repo)
	resp, err := svc.Register(models.RegisterAccountRequest{
		Email:    "y@clinic.test",
		FullName: "Y",
		Password: "password123",
	}, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	hash := utils.HashToken(resp.Token)
	if _, err := repo.GetByTokenHash(hash); err != nil {
		t.Fatalf("token hash should resolve before sign-out: %v", err)
	}

	if err := svc.SignOut(resp.Account.ID); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if _, err := repo.GetByTokenHash(hash); err == nil {
		t.Error("token hash must stop resolving after sign-out")
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := NewDefaultAccountService(newMockAccountRepo())
	resp, err := svc.Register(models.RegisterAccountRequest{
		Email:    "z@clinic.test",
		FullName: "Z",
		Password: "password123",
	}, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	id := resp.Account.ID

	if err := svc.ChangePassword(id, "wrong", "newpassword1"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("err = %v, want ErrWrongPassword", err)
	}
	if err := svc.ChangePassword(id, "password123", "newpassword1"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.SignIn(models.SignInRequest{Email: "z@clinic.test", Password: "password123"}, ""); err == nil {
		t.Error("old password must stop working")
	}
	if _, err := svc.SignIn(models.SignInRequest{Email: "z@clinic.test", Password: "newpassword1"}, ""); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}
