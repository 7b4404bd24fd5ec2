package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdcastano/stock-control-api/internal/application/auth"
	"github.com/jdcastano/stock-control-api/internal/application/dto"
	"github.com/jdcastano/stock-control-api/internal/domain"
	"github.com/jdcastano/stock-control-api/internal/domain/entity"
	pkgjwt "github.com/jdcastano/stock-control-api/pkg/jwt"
)

// memUserRepo fake en memoria de repository.UserRepository.
type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) Delete(id string) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func buildAuthUC() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "stock-control-test",
	})
	return uc, repo
}

func TestRegister_CreaUsuarioConTokenValido(t *testing.T) {
	uc, repo := buildAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "abc@mail.com",
		Password: "adminpass1",
		Name:     "Rachel Thomas",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "abc@mail.com", out.User.Email)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.NotEmpty(t, out.Token)

	// El token emitido debe llevar los claims del usuario.
	userID, email, role, err := pkgjwt.Parse("test-secret-key-for-unit-tests", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "abc@mail.com", email)
	assert.Equal(t, entity.RoleAdmin, role)

	// El password se persiste hasheado, nunca plano.
	stored, err := repo.GetByEmail("abc@mail.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "adminpass1", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_SinRol_AsignaStaff(t *testing.T) {
	uc, _ := buildAuthUC()
	out, err := uc.Register(dto.RegisterRequest{
		Email:    "mmm@mail.com",
		Password: "staffpass1",
		Name:     "Peter Nelson",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.User.Role)
}

func TestRegister_RolInvalido_Rechazado(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{
		Email:    "abc@mail.com",
		Password: "adminpass1",
		Name:     "Rachel Thomas",
		Role:     "SUPERUSER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado_Rechazado(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{
		Email: "abc@mail.com", Password: "adminpass1", Name: "Rachel Thomas",
	})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{
		Email: "abc@mail.com", Password: "otra-password", Name: "Otro Nombre",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{
		Email: "non@mail.com", Password: "managerpass", Name: "Alex Jackson", Role: entity.RoleManager,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "non@mail.com", Password: "managerpass"})
	require.NoError(t, err)
	assert.Equal(t, "non@mail.com", out.User.Email)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_EmailDesconocido_Unauthorized(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@mail.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{
		Email: "non@mail.com", Password: "managerpass", Name: "Alex Jackson",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "non@mail.com", Password: "password-mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"password incorrecto debe devolver el mismo error que email desconocido")
}
