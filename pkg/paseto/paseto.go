package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam-khode01/Faculty-appraisalSystem/config"
	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
)

var (
	pasetoInstance = paseto.NewV2()
	symmetricKey   []byte
)

func init() {
	cfg := config.LoadConfig()

	var decodedKey []byte
	var err error

	decodedKey, err = base64.URLEncoding.DecodeString(cfg.PasetoSecret)
	if err != nil {
		decodedKey, err = base64.StdEncoding.DecodeString(cfg.PasetoSecret)
		if err != nil {
			panic(fmt.Sprintf("Failed to decode PASETO_SECRET: %v", err))
		}
	}

	if len(decodedKey) != 32 {
		panic(fmt.Sprintf("PASETO_SECRET must be exactly 32 bytes after Base64 decoding, got %d bytes", len(decodedKey)))
	}

	symmetricKey = decodedKey
}

func GenerateToken(admin *models.Admin) (string, error) {
	now := time.Now()
	exp := now.Add(24 * time.Hour)

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	token.Set("admin_id", admin.ID.Hex())
	token.Set("email", admin.Email)
	token.Set("role", admin.Role)

	return pasetoInstance.Encrypt(symmetricKey, token, "")
}

func ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	err := pasetoInstance.Decrypt(tokenString, symmetricKey, &token, &footer)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	var claims models.Claims

	adminIDStr := token.Get("admin_id")
	objectID, err := primitive.ObjectIDFromHex(adminIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid admin_id format: %v", err)
	}
	claims.AdminID = objectID
	claims.Email = token.Get("email")
	claims.Role = token.Get("role")

	return &claims, nil
}
