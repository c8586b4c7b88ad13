package envelope

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
)

// Codec encrypts and decrypts the JSON payload envelope exchanged with the
// storefront. Wire format: base64(iv[16] || AES-256-CBC(PKCS7(json))).
type Codec struct {
	key []byte
}

// RequestBody is the shape every encrypted POST body arrives in.
type RequestBody struct {
	Payload string `json:"payload" validate:"required"`
}

// ResponseBody is the shape every encrypted response leaves in.
type ResponseBody struct {
	Success       bool   `json:"success"`
	EncryptedData string `json:"encrypted_data,omitempty"`
	Error         string `json:"error,omitempty"`
}

// New builds a codec from the shared secret. The secret is normalized to
// exactly 32 bytes: right-padded with NUL or truncated, matching the
// storefront's key handling.
func New(secret string) (*Codec, error) {
	if secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "crypto secret is required")
	}
	return &Codec{key: normalizeKey(secret)}, nil
}

func normalizeKey(secret string) []byte {
	key := []byte(secret)
	if len(key) < 32 {
		padded := make([]byte, 32)
		copy(padded, key)
		return padded
	}
	return key[:32]
}

// Encode marshals v to JSON and encrypts it. Total for any JSON-serializable
// value.
func (c *Codec) Encode(v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal payload")
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate iv")
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "init cipher")
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return base64.StdEncoding.EncodeToString(append(iv, ciphertext...)), nil
}

// Decode decrypts an envelope into dst. Any malformed input, bad padding, or
// a mismatched key yields a decode error; callers surface it as a generic
// load failure.
func (c *Codec) Decode(envelope string, dst any) error {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDecode, err, "invalid envelope encoding")
	}
	if len(raw) < aes.BlockSize || len(raw)%aes.BlockSize != 0 {
		return pkgerrors.New(pkgerrors.CodeDecode, "invalid envelope length")
	}

	iv, ciphertext := raw[:aes.BlockSize], raw[aes.BlockSize:]

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "init cipher")
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDecode, err, "invalid envelope padding")
	}

	if err := json.Unmarshal(unpadded, dst); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDecode, err, "invalid envelope payload")
	}
	return nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, fmt.Errorf("invalid padding byte %d", padLen)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}
	return data[:len(data)-padLen], nil
}
