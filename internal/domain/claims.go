package domain

import "github.com/golang-jwt/jwt/v5"

// Claims carregadas no token Bearer emitido pelo CRM
type Claims struct {
	UserID   string `json:"userId"`
	TenantID string `json:"tenantId"`
	jwt.RegisteredClaims
}
