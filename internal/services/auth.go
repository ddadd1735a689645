package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pawfecthome/backend/internal/apperror"
	"github.com/pawfecthome/backend/internal/models"
	"github.com/pawfecthome/backend/internal/repository"
)

const tokenTTL = 7 * 24 * time.Hour

// AuthService owns identity: signup/login, token issuance, profile updates,
// and the admin/user role partition. Passwords are stored and compared as
// submitted, no hashing: login is an exact byte comparison and the wire
// contract depends on that.
type AuthService struct {
	users         repository.UserRepository
	secret        []byte
	adminEmail    string
	adminPassword string
}

func NewAuthService(users repository.UserRepository, jwtSecret, adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		users:         users,
		secret:        []byte(jwtSecret),
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// GenerateToken mints a 7-day HS256 token carrying the user id and role.
// There is no revocation: a token stays valid for its full lifetime.
func (s *AuthService) GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Signup creates an account with the role forced to "user" no matter what
// the request body claimed.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, models.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", models.User{}, apperror.Conflict("user already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", models.User{}, err
	}

	now := time.Now()
	user := models.User{
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", models.User{}, apperror.Conflict("user already exists")
		}
		return "", models.User{}, err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

// Login authenticates by exact byte comparison of the stored password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", models.User{}, apperror.Unauthorized("invalid email or password")
		}
		return "", models.User{}, err
	}

	if user.Password != password {
		return "", models.User{}, apperror.Unauthorized("invalid email or password")
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", models.User{}, err
	}

	// Seeded accounts may have no display name; fall back to the email
	// local-part in the response only, never in the document.
	if user.Name == "" {
		user.Name = strings.SplitN(user.Email, "@", 2)[0]
	}
	return token, user, nil
}

// UpdateProfile overwrites only the provided fields; empty strings keep the
// current value. A new password is stored as given.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name, avatarURL, password string) (models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, apperror.NotFound("user", userID)
		}
		return models.User{}, err
	}

	if name != "" {
		user.Name = name
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	if password != "" {
		user.Password = password
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// AddAdmin is signup with the role forced to "admin". The route-level admin
// middleware is what restricts who may call it.
func (s *AuthService) AddAdmin(ctx context.Context, name, email, password string) (models.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return models.User{}, apperror.Conflict("user already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return models.User{}, err
	}

	now := time.Now()
	admin := models.User{
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, &admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, apperror.Conflict("user already exists")
		}
		return models.User{}, err
	}
	return admin, nil
}

func (s *AuthService) ListAdmins(ctx context.Context) ([]models.User, error) {
	return s.users.ListByRole(ctx, models.RoleAdmin)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListByRole(ctx, models.RoleUser)
}

// PromoteUser flips a user's role to admin.
func (s *AuthService) PromoteUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, apperror.NotFound("user", id)
		}
		return models.User{}, err
	}
	if user.Role == models.RoleAdmin {
		return models.User{}, apperror.Conflict("user is already an admin")
	}

	user.Role = models.RoleAdmin
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DemoteAdmin flips an admin back to user. An admin cannot demote
// themselves; nothing stops an admin from demoting every other admin.
func (s *AuthService) DemoteAdmin(ctx context.Context, callerID, targetID string) (models.User, error) {
	if callerID == targetID {
		return models.User{}, apperror.ValidationFailed("id", "you cannot demote yourself")
	}

	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, apperror.NotFound("user", targetID)
		}
		return models.User{}, err
	}
	if user.Role != models.RoleAdmin {
		return models.User{}, apperror.Conflict("user is not an admin")
	}

	user.Role = models.RoleUser
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser hard-deletes any account regardless of role.
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("user", id)
	}
	return err
}

// SeedAdmin bootstraps the first admin from configuration. It is idempotent
// and deliberately unauthenticated — it is the only way into an empty
// deployment, so it stays a standing public endpoint.
func (s *AuthService) SeedAdmin(ctx context.Context) (string, error) {
	if s.adminEmail == "" || s.adminPassword == "" {
		return "", apperror.ValidationFailed("config", "admin credentials are not configured")
	}

	if _, err := s.users.FindByEmail(ctx, s.adminEmail); err == nil {
		return "Admin already exists", nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	now := time.Now()
	admin := models.User{
		Name:      "Admin",
		Email:     s.adminEmail,
		Password:  s.adminPassword,
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, &admin); err != nil {
		return "", err
	}
	return "Admin user created successfully", nil
}
