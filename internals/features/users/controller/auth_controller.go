package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sabeel_backend/internals/configs"
	"sabeel_backend/internals/constants"
	activityModel "sabeel_backend/internals/features/activitylog/model"
	activityService "sabeel_backend/internals/features/activitylog/service"
	"sabeel_backend/internals/features/users/dto"
	"sabeel_backend/internals/features/users/model"
	helper "sabeel_backend/internals/helpers"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB          *gorm.DB
	ActivityLog *activityService.ActivityLogService
}

func NewAuthController(db *gorm.DB, al *activityService.ActivityLogService) *AuthController {
	return &AuthController{DB: db, ActivityLog: al}
}

func signToken(user *model.UserModel, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"role": user.UserRole,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := ctl.DB.Model(&model.UserModel{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "email already registered")
	}

	role := req.Role
	if role == "" {
		role = constants.RoleDonor
	}
	if !constants.IsValidRole(role) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "unknown role: "+role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := model.UserModel{
		UserName:         req.UserName,
		UserEmail:        email,
		UserPasswordHash: string(hash),
		UserRole:         role,
		UserIsActive:     true,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	_ = ctl.ActivityLog.Log(nil, activityModel.ActivityTypeUser,
		"تم تسجيل مستخدم جديد: "+user.UserName,
		"New user registered: "+user.UserName,
		&user.UserID, &user.UserID, "User", nil,
	)

	token, err := signToken(&user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	refresh, err := signToken(&user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue refresh token")
	}

	return helper.JsonCreated(c, "registered", dto.AuthResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         dto.FromModelUser(&user),
	})
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := signToken(&user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	refresh, err := signToken(&user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue refresh token")
	}

	return helper.JsonOK(c, "logged in", dto.AuthResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         dto.FromModelUser(&user),
	})
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}
	return helper.JsonOK(c, "profile fetched", dto.FromModelUser(&user))
}
