package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/LuisMtz-24/Panaderia-final/internal/application/dto"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/entity"
	"github.com/LuisMtz-24/Panaderia-final/internal/domain/repository"
)

// MinPasswordLen longitud mínima de contraseña al registrarse.
const MinPasswordLen = 6

// Usecase maneja cuentas y sesiones. Las contraseñas se guardan con
// bcrypt y el token de sesión es opaco: la sesión vive en la base y
// borrarla la invalida de inmediato.
type Usecase struct {
	customerRepo repository.CustomerRepository
	sessionRepo  repository.SessionRepository
	sessionTTL   time.Duration
}

func NewUsecase(customerRepo repository.CustomerRepository, sessionRepo repository.SessionRepository, sessionTTL time.Duration) *Usecase {
	return &Usecase{customerRepo: customerRepo, sessionRepo: sessionRepo, sessionTTL: sessionTTL}
}

// Register da de alta una cuenta con rol cliente.
func (u *Usecase) Register(req dto.RegisterRequest) (*entity.Customer, error) {
	usuario := strings.TrimSpace(req.Usuario)
	if usuario == "" || len(req.Password) < MinPasswordLen {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	c := &entity.Customer{
		Username:     usuario,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.NombreReal),
		Email:        strings.TrimSpace(req.Email),
		Role:         entity.RoleCliente,
	}
	if err := u.customerRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Login valida credenciales y abre una sesión nueva.
// Usuario inexistente y contraseña errada devuelven el mismo error.
func (u *Usecase) Login(req dto.LoginRequest) (*entity.Session, *entity.Customer, error) {
	usuario := strings.TrimSpace(req.Usuario)
	if usuario == "" || req.Password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	c, err := u.customerRepo.GetByUsername(usuario)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	s := &entity.Session{
		Token:      uuid.NewString(),
		CustomerID: c.ID,
		Username:   c.Username,
		Role:       c.Role,
		ExpiresAt:  time.Now().Add(u.sessionTTL),
	}
	if err := u.sessionRepo.Create(s); err != nil {
		return nil, nil, err
	}
	return s, c, nil
}

// Logout cierra la sesión del token. Token desconocido no es error.
func (u *Usecase) Logout(token string) error {
	if token == "" {
		return nil
	}
	return u.sessionRepo.Delete(token)
}

// GetSession devuelve la sesión vigente del token, o nil si no hay.
func (u *Usecase) GetSession(token string) (*entity.Session, error) {
	if token == "" {
		return nil, nil
	}
	return u.sessionRepo.Get(token)
}

// Profile devuelve la cuenta del cliente autenticado.
func (u *Usecase) Profile(customerID int64) (*entity.Customer, error) {
	c, err := u.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// CleanupExpired purga sesiones vencidas. Pensado para correr periódicamente.
func (u *Usecase) CleanupExpired() (int64, error) {
	return u.sessionRepo.DeleteExpired()
}
