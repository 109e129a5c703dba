// services/auth_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"hotel-reservation/models"
	"hotel-reservation/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	ErrUsernameTaken      ErrCode = "USERNAME_TAKEN"
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
)

const tokenTTL = 24 * time.Hour

// UserRepo is the storage surface the auth flow needs.
type UserRepo interface {
	ByUsername(username string) (*models.User, error)
	ByID(id uint) (*models.User, error)
	Create(u *models.User) error
	SaveProfile(p *models.Profile) error
}

type gormUserRepo struct {
	db *gorm.DB
}

func NewGormUserRepo(db *gorm.DB) UserRepo { return &gormUserRepo{db: db} }

func (r *gormUserRepo) ByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Preload("Profile").Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *gormUserRepo) ByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.Preload("Profile").First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *gormUserRepo) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *gormUserRepo) SaveProfile(p *models.Profile) error {
	return r.db.Save(p).Error
}

type AuthService struct {
	Repo   UserRepo
	Secret string
}

func NewAuthService(repo UserRepo, secret string) *AuthService {
	return &AuthService{Repo: repo, Secret: secret}
}

// SignUp registers a user with a bcrypt-hashed password. The Profile row is
// created together with the user, so every user always has one.
func (s *AuthService) SignUp(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	existing, err := s.Repo.ByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, makeErr(ErrUsernameTaken, "username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Profile:  models.Profile{Image: "default.png"},
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignIn verifies credentials and issues a JWT.
func (s *AuthService) SignIn(username, password string) (string, *models.User, error) {
	u, err := s.Repo.ByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, makeErr(ErrInvalidCredentials, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", nil, makeErr(ErrInvalidCredentials, "invalid credentials")
	}

	token, err := utils.IssueToken(s.Secret, u.ID, u.IsStaff, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// GetProfile loads a user with their profile.
func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	u, err := s.Repo.ByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, makeErr(ErrNotFound, "user not found")
	}
	return u, nil
}

// UpdateProfileImage stores a new profile image path for the user.
func (s *AuthService) UpdateProfileImage(userID uint, imagePath string) (*models.User, error) {
	u, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	u.Profile.Image = imagePath
	if err := s.Repo.SaveProfile(&u.Profile); err != nil {
		return nil, err
	}
	return u, nil
}
