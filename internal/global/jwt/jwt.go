package jwt

import (
	"time"

	"escort-cms/config"

	jwtlib "github.com/golang-jwt/jwt"
)

// 角色等级，middleware.Auth 以此做最小权限判断
const (
	RoleAuthor = 0 // 普通后台用户
	RoleAdmin  = 1 // 管理员，所有写操作要求此角色
)

// Payload 令牌中携带的用户信息
type Payload struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
}

type Claims struct {
	Payload
	jwtlib.StandardClaims
}

// CreateToken 签发 JWT 令牌
func CreateToken(payload Payload) string {
	cfg := config.Get().JWT
	claims := Claims{
		Payload: payload,
		StandardClaims: jwtlib.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Duration(cfg.AccessExpire) * time.Second).Unix(),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

// ParseToken 解析并校验令牌，返回载荷和是否有效
func ParseToken(token string) (*Claims, bool) {
	claims := &Claims{}
	parsed, err := jwtlib.ParseWithClaims(token, claims, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, jwtlib.ErrSignatureInvalid
		}
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, false
	}
	return claims, true
}
