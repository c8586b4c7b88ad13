package validators

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rohitvarpe/stitchkart-backend/pkg/envelope"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
)

type samplePayload struct {
	ProductID uint `json:"product_id" validate:"required"`
	Rating    int  `json:"rating" validate:"required,min=1,max=5"`
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"product_id":1,"rating":5,"bogus":true}`))
	var dest samplePayload
	err := DecodeJSONBody(req, &dest)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyValidates(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"product_id":1,"rating":9}`))
	var dest samplePayload
	err := DecodeJSONBody(req, &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["rating"] == "" {
		t.Fatalf("expected rating detail, got %+v", typed.Details())
	}
}

func TestDecodeEnvelopeBodyRoundTrips(t *testing.T) {
	codec, err := envelope.New("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	sealed, err := codec.Encode(samplePayload{ProductID: 7, Rating: 4})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	body, _ := json.Marshal(map[string]string{"payload": sealed})

	req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
	var dest samplePayload
	if err := DecodeEnvelopeBody(req, codec, &dest); err != nil {
		t.Fatalf("DecodeEnvelopeBody failed: %v", err)
	}
	if dest.ProductID != 7 || dest.Rating != 4 {
		t.Fatalf("unexpected payload %+v", dest)
	}
}

func TestDecodeEnvelopeBodyWrongKeyIsDecodeError(t *testing.T) {
	codec, _ := envelope.New("0123456789abcdef0123456789abcdef")
	other, _ := envelope.New("ffffffffffffffffffffffffffffffff")
	sealed, err := other.Encode(samplePayload{ProductID: 7, Rating: 4})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	body, _ := json.Marshal(map[string]string{"payload": sealed})

	req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
	var dest samplePayload
	err = DecodeEnvelopeBody(req, codec, &dest)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDecode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestDecodeEnvelopeBodyMissingPayload(t *testing.T) {
	codec, _ := envelope.New("0123456789abcdef0123456789abcdef")
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{}`))
	var dest samplePayload
	err := DecodeEnvelopeBody(req, codec, &dest)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
