package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenClaims is the verified identity the API reads from a bearer
// token. Customer IDs are numeric to match the catalog tables.
type AccessTokenClaims struct {
	CustomerID uint   `json:"customer_id"`
	Username   string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// AccessTokenPayload is the input for minting a token.
type AccessTokenPayload struct {
	CustomerID uint
	Username   string
	JTI        string
}
