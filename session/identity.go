package session

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vidhi3000/project-harmony-main/models"
)

// UserFromToken verifies the access token against the shared secret and
// maps its claims onto an application user. Missing profile claims fall
// back the same way the client UI does: the name comes from the email
// local part, the avatar from a seeded placeholder, and everyone signs
// in as a plain member.
func UserFromToken(tokenString, secret string) (*models.User, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("sub claim not found in token")
	}
	email, _ := claims["email"].(string)

	name := ""
	avatar := ""
	if metadata, ok := claims["user_metadata"].(map[string]interface{}); ok {
		name, _ = metadata["full_name"].(string)
		avatar, _ = metadata["avatar_url"].(string)
	}
	if name == "" {
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		} else {
			name = "User"
		}
	}
	if avatar == "" {
		avatar = "https://api.dicebear.com/7.x/avataaars/svg?seed=" + sub
	}

	return &models.User{
		ID:       sub,
		Name:     name,
		Email:    email,
		Avatar:   avatar,
		Role:     models.RoleMember,
		Timezone: "utc+0",
	}, nil
}
