package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"store_expiry_backend/internal/models"
	"store_expiry_backend/internal/repositories"
	"store_expiry_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrMissingCredentials   = errors.New("role and credential are required")
	ErrInvalidRole          = errors.New("invalid role specified")
	ErrInvalidAdminPassword = errors.New("invalid admin password")
	ErrInvalidAccessCode    = errors.New("invalid access code")
	ErrStaffForCodeNotFound = errors.New("staff member not found for this code")
	ErrTokenGeneration      = errors.New("failed to generate token")
)

// AdminSecret is the server-held admin credential. When PasswordHash is set
// it is a bcrypt hash and takes precedence over Password.
type AdminSecret struct {
	Password     string
	PasswordHash string
}

// AuthService resolves credentials to identities.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
}

type authService struct {
	codeRepo  repositories.AccessCodeRepository
	staffRepo repositories.StaffRepository
	tokens    *utils.TokenManager
	admin     AdminSecret
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(codeRepo repositories.AccessCodeRepository, staffRepo repositories.StaffRepository, tokens *utils.TokenManager, admin AdminSecret) AuthService {
	return &authService{
		codeRepo:  codeRepo,
		staffRepo: staffRepo,
		tokens:    tokens,
		admin:     admin,
	}
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	if creds.Role == "" || creds.Credential == "" {
		return nil, ErrMissingCredentials
	}

	var user *models.User
	var err error
	switch creds.Role {
	case models.RoleAdmin:
		user, err = s.loginAdmin(creds.Credential)
	case models.RoleStaff:
		user, err = s.loginStaff(ctx, creds.Credential)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, creds.Role)
	}
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.Role, user.StaffID, user.StoreID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	return &models.LoginResponse{
		User:      *user,
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
	}, nil
}

// loginAdmin is an exact, case-sensitive match against the configured secret.
func (s *authService) loginAdmin(credential string) (*models.User, error) {
	if !s.adminSecretMatches(credential) {
		return nil, ErrInvalidAdminPassword
	}
	return &models.User{
		Role:    models.RoleAdmin,
		StaffID: models.AdminStaffID,
		Name:    models.AdminName,
	}, nil
}

func (s *authService) adminSecretMatches(credential string) bool {
	if s.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(credential)) == nil
	}
	if s.admin.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), []byte(s.admin.Password)) == 1
}

// loginStaff resolves an access code, then its owner. Which lookup missed
// decides the error.
func (s *authService) loginStaff(ctx context.Context, credential string) (*models.User, error) {
	code := strings.ToUpper(strings.TrimSpace(credential))

	accessCode, err := s.codeRepo.GetAccessCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidAccessCode
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	staff, err := s.staffRepo.GetStaffByID(ctx, accessCode.StaffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffForCodeNotFound
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	return &models.User{
		Role:    models.RoleStaff,
		StaffID: staff.StaffID,
		StoreID: staff.StoreID,
		Name:    staff.Name,
	}, nil
}
