package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/camisetasbahia/catalogo-api/internal/application/dto"
	"github.com/camisetasbahia/catalogo-api/internal/domain"
	"github.com/camisetasbahia/catalogo-api/pkg/config"
	"github.com/camisetasbahia/catalogo-api/pkg/jwt"
	"github.com/camisetasbahia/catalogo-api/pkg/logger"
)

// adminUserID la tienda tiene un único administrador.
const adminUserID = "1"

// UseCase autenticación del administrador contra las credenciales de
// configuración. No hay tabla de usuarios: un solo admin, rol fijo.
type UseCase struct {
	admin config.AdminConfig
	jwt   config.JWTConfig
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(admin config.AdminConfig, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{admin: admin, jwt: jwtCfg, log: log}
}

// Login valida email y contraseña y devuelve un token de sesión con
// {id, email, role}. Credenciales inválidas devuelven domain.ErrUnauthorized
// sin distinguir cuál de las dos falló.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if !strings.EqualFold(email, uc.admin.Email) || !uc.passwordMatches(in.Password) {
		uc.log.Warn().Str("email", email).Msg("intento de login fallido")
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwt.Secret, adminUserID, uc.admin.Email, "admin", uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		uc.log.Error().Err(err).Msg("generar token")
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    adminUserID,
			Email: uc.admin.Email,
			Role:  "admin",
		},
	}, nil
}

func (uc *UseCase) passwordMatches(password string) bool {
	if uc.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(uc.admin.Password), []byte(password)) == 1
}
