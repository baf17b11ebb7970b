package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/repository"
	"github.com/astrodate/astrodate-backend/internal/zodiac"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// BirthDateLayout is the wire format for birth dates.
const BirthDateLayout = "2006-01-02"

const minimumAge = 18

type AuthUseCase struct {
	userRepo  repository.UserRepository
	signs     *zodiac.Index
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	signs *zodiac.Index,
	jwtSecret string,
	jwtExpiryMin int,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		signs:     signs,
		jwtSecret: jwtSecret,
		jwtExpiry: time.Duration(jwtExpiryMin) * time.Minute,
	}
}

// RegisterRequest represents a registration payload.
type RegisterRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required"`
	BirthDate     string  `json:"birth_date" binding:"required,birthdate"`
	Bio           *string `json:"bio"`
	ImageFilename *string `json:"image_filename"`
}

// TokenResponse is the login result.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new user: the password is stored only as a bcrypt
// hash and the zodiac sign is resolved from the birth date exactly
// once. The sign reference is treated as immutable afterwards.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	if req.BirthDate == "" {
		return nil, domain.ErrBirthDateMissing
	}
	birthDate, err := time.Parse(BirthDateLayout, req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth date %q: %w", req.BirthDate, err)
	}

	now := time.Now()
	if birthDate.After(now) {
		return nil, domain.ErrBirthDateInFuture
	}
	if domain.AgeAt(birthDate, now) < minimumAge {
		return nil, domain.ErrUnderage
	}

	if _, err := uc.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:          req.Email,
		HashedPassword: string(hash),
		BirthDate:      birthDate,
		Bio:            req.Bio,
		ImageFilename:  req.ImageFilename,
	}
	if sign := uc.signs.Resolve(int(birthDate.Month()), birthDate.Day()); sign != nil {
		signID := sign.ID
		user.ZodiacSignID = &signID
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token. Every
// failure surfaces as ErrInvalidCredentials so callers cannot tell
// which credential component was wrong.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.issueToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (uc *AuthUseCase) issueToken(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(uc.jwtExpiry).Unix(),
	})
	return token.SignedString([]byte(uc.jwtSecret))
}

// Authenticate validates a bearer token and loads the user it belongs
// to. Tampered and expired tokens fail uniformly with ErrInvalidToken.
func (uc *AuthUseCase) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	email, err := claims.GetSubject()
	if err != nil || email == "" {
		return nil, domain.ErrInvalidToken
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
