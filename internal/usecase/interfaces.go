package usecase

import "context"

// FirebaseAuthClient is the slice of the auth provider the usecases need.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (idToken, refreshToken string, err error)
	RefreshIDToken(refreshToken string) (idToken, newRefreshToken string, err error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
}
