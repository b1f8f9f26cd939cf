package usecase

import (
	"context"
	"time"

	"campuscart/internal/domain/entity"
	"campuscart/internal/domain/repository"
	"campuscart/pkg/errors"
	"campuscart/pkg/logger"
	"campuscart/pkg/validation"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Donor     bool
}

type AuthResult struct {
	User         *entity.User
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	firstName := validation.SanitizeText(input.FirstName)
	lastName := validation.SanitizeText(input.LastName)
	email := validation.NormalizeEmail(input.Email)

	if !validation.IsValidName(firstName) {
		return nil, errors.Validation("Please enter a valid first name")
	}
	if !validation.IsValidName(lastName) {
		return nil, errors.Validation("Please enter a valid last name")
	}
	if !validation.IsValidEmail(email) {
		return nil, errors.Validation("Please enter a valid email address")
	}
	if !validation.IsStrongPassword(input.Password) {
		return nil, errors.Validation("Password must be 8-64 characters with at least one letter and one digit")
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, errors.Conflict("Email already in use")
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, email, input.Password, firstName+" "+lastName)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	role := entity.RoleStudent
	if input.Donor {
		role = entity.RoleDonor
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = validation.NormalizeEmail(email)

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	idToken, newRefreshToken, err := uc.firebaseAuth.RefreshIDToken(refreshToken)
	if err != nil {
		return "", "", errors.Unauthorized("Invalid refresh token", err)
	}
	return idToken, newRefreshToken, nil
}

// Logout is handled client-side by discarding tokens; kept for surface
// symmetry with login.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return nil
}

// Session is the role-resolution result the client uses to pick its screen
// graph after each auth transition.
type Session struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	ScreenGroup string `json:"screen_group"`
}

const (
	ScreenGroupShopper = "shopper"
	ScreenGroupLister  = "lister"
)

// ResolveSession fetches the user's profile and maps its role to a screen
// group. A missing profile document or role field defaults to student. The
// result is not re-validated mid-session; an externally persisted role
// change is observed on the next resolution.
func (uc *AuthUseCase) ResolveSession(ctx context.Context, userID string) (*Session, error) {
	session := &Session{
		UserID:      userID,
		Role:        entity.RoleStudent,
		ScreenGroup: ScreenGroupShopper,
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return session, nil
		}
		return nil, err
	}

	session.Role = user.EffectiveRole()
	if user.CanListItems() {
		session.ScreenGroup = ScreenGroupLister
	}

	return session, nil
}
