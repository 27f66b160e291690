package service

import (
	"clinicdesk/cmd/internal/domain/entity"
	"clinicdesk/cmd/internal/utils"
	"clinicdesk/cmd/internal/utils/apierror"
	"clinicdesk/cmd/internal/utils/token"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	FindByID(id int) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	Save(user *entity.User) error
}

type TokenIssuer interface {
	Issue(data *token.TokenData) (string, error)
}

type UserLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type UserLoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

type DefaultUserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
	Tokens   TokenIssuer
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, tokens TokenIssuer) *DefaultUserService {
	return &DefaultUserService{UserRepo: userRepo, Validate: validate, Tokens: tokens}
}

func (u *DefaultUserService) Login(req *UserLoginRequest) (*UserLoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.NewSimple(400, "Missing username/password")
	}

	user, err := u.UserRepo.FindByUsername(req.Username)
	if err != nil {
		log.Errorf("failed to fetch user %s: %v", req.Username, err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.InvalidCredentialsError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.InvalidCredentialsError
	}

	tok, err := u.Tokens.Issue(&token.TokenData{UserID: user.ID, Username: user.Username, Name: user.Name, Role: user.Role})
	if err != nil {
		log.Errorf("failed to issue token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}
	return &UserLoginResponse{User: toUserResponse(user), Token: tok}, nil
}

// GetUser resolves the user behind an already verified token.
func (u *DefaultUserService) GetUser(id int) (*UserResponse, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to find user %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.NotFoundError
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}
}
