package helper

import (
	"cafe_manager/database"
	"cafe_manager/model"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetMemberByMemId(memId string) (*model.Member, error) {
	db := database.DB
	var member model.Member
	if err := db.Where(&model.Member{MemId: memId}).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["memNo"] = tokenClaim.MemNo
	claims["memId"] = tokenClaim.MemId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["memNo"] = tokenClaim.MemNo
	claims["memId"] = tokenClaim.MemId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoMemberFromToken resolves the acting member from the parsed JWT
// stashed by middleware.Protected().
func GetInfoMemberFromToken(c *fiber.Ctx) (model.TokenClaim, *model.Member) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil
	}
	tokenClaim := token.Claims.(jwt.MapClaims)

	memNoRaw, ok := tokenClaim["memNo"].(float64)
	if !ok {
		return model.TokenClaim{}, nil
	}
	claim := model.TokenClaim{
		MemNo: uint(memNoRaw),
	}
	if memId, ok := tokenClaim["memId"].(string); ok {
		claim.MemId = memId
	}
	if role, ok := tokenClaim["role"].(string); ok {
		claim.Role = role
	}

	var member model.Member
	if err := database.DB.First(&member, "mem_no = ?", claim.MemNo).Error; err != nil {
		return claim, nil
	}
	return claim, &member
}
