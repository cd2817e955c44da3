package services

import (
	"errors"
	"time"

	"shop_manager/internal/models"
	"shop_manager/internal/repository"
	"shop_manager/pkg/imaging"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username       string `json:"username"`
	Gender         string `json:"gender"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	PhoneNumber    string `json:"phoneNumber"`
	CurrentAddress string `json:"currentAddress"`
	Role           string `json:"role"`
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// UpdateUserRequest carries partial profile changes; nil fields are left
// untouched. LoginID, StatusID and the record id are not updatable here.
type UpdateUserRequest struct {
	Username       *string `json:"username"`
	Gender         *string `json:"gender"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	PhoneNumber    *string `json:"phoneNumber"`
	CurrentAddress *string `json:"currentAddress"`
	Role           *string `json:"role"`
}

type UserService interface {
	Register(req RegisterRequest) (*models.User, error)
	Login(username, password string) (*LoginResult, error)
	GetUserByID(id uint) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUser(id uint, req UpdateUserRequest) (*models.User, error)
	SetUserStatus(id uint, statusID int) error
	HardDeleteUser(id uint) error
	UploadUserImage(id uint, imageData []byte) (string, error)
	ParseToken(token string) (*jwt.RegisteredClaims, error)
}

type userService struct {
	userRepo      repository.UserRepository
	jwtSecret     []byte
	tokenLifetime time.Duration
	imageMaxWidth int
}

func NewUserService(userRepo repository.UserRepository, jwtSecret string, tokenLifetime time.Duration, imageMaxWidth int) UserService {
	return &userService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenLifetime: tokenLifetime,
		imageMaxWidth: imageMaxWidth,
	}
}

func (s *userService) Register(req RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" ||
		req.PhoneNumber == "" || req.Gender == "" || req.CurrentAddress == "" || req.Role == "" {
		return nil, NewValidationError("username, gender, email, password, phoneNumber, currentAddress and role are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		LoginID:        models.GenerateLoginID(),
		Username:       req.Username,
		Gender:         req.Gender,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		CurrentAddress: req.CurrentAddress,
		Role:           req.Role,
		Password:       string(hashedPassword),
		StatusID:       1,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateError{Field: "username, email or phone number"}
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed HS256 token. Disabled
// accounts (status_id 0) cannot log in.
func (s *userService) Login(username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, NewValidationError("username and password are required")
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.StatusID != 1 {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenLifetime)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   user.LoginID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *userService) ParseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) UpdateUser(id uint, req UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		if *req.Username == "" {
			return nil, NewValidationError("username cannot be empty")
		}
		user.Username = *req.Username
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, NewValidationError("email cannot be empty")
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, NewValidationError("password cannot be empty")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	if req.PhoneNumber != nil {
		if *req.PhoneNumber == "" {
			return nil, NewValidationError("phoneNumber cannot be empty")
		}
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.CurrentAddress != nil {
		user.CurrentAddress = *req.CurrentAddress
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateError{Field: "username, email or phone number"}
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) SetUserStatus(id uint, statusID int) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	user.StatusID = statusID
	return s.userRepo.Update(user)
}

func (s *userService) HardDeleteUser(id uint) error {
	if _, err := s.GetUserByID(id); err != nil {
		return err
	}
	return s.userRepo.HardDelete(id)
}

func (s *userService) UploadUserImage(id uint, imageData []byte) (string, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return "", err
	}

	encoded, err := imaging.CompressToBase64(imageData, s.imageMaxWidth)
	if err != nil {
		return "", NewValidationError("failed to process image: %v", err)
	}

	user.ImageURL = encoded
	if err := s.userRepo.Update(user); err != nil {
		return "", err
	}
	return encoded, nil
}
