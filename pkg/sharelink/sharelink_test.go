package sharelink

import (
	"reflect"
	"strings"
	"testing"

	"github.com/governos/roi-calculator/internal/config"
)

func TestRoundTripIdentity(t *testing.T) {
	original := config.DefaultAssumptions()

	token, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasPrefix(token, "v1.") {
		t.Errorf("token %q missing version prefix", token)
	}

	restored, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if !reflect.DeepEqual(original, restored) {
		t.Errorf("round-trip mismatch:\noriginal: %+v\nrestored: %+v", original, restored)
	}
}

func TestTokenIsURLSafe(t *testing.T) {
	token, err := Encode(config.DefaultAssumptions())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	// Everything after the version prefix must survive a URL path segment
	// without escaping.
	if strings.ContainsAny(token, "+/= &?#%") {
		t.Errorf("token contains URL-unsafe characters: %q", token)
	}
}

func TestRoundTripModifiedRecord(t *testing.T) {
	original := config.DefaultAssumptions()
	original.Profile.Currency = "EUR"
	original.Finance.Scenario = config.ScenarioOptimistic
	original.ValueLevers.TicketDeflection = 0.45
	original.Finance.HorizonYears = 7

	token, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	restored, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if !reflect.DeepEqual(original, restored) {
		t.Errorf("round-trip mismatch for modified record")
	}
}

func TestDecodeRejectsMalformedTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"Empty", ""},
		{"Missing prefix", "eyJmb28iOiJiYXIifQ"},
		{"Wrong version", "v2.eyJmb28iOiJiYXIifQ"},
		{"Invalid base64", "v1.!!!not-base64!!!"},
		{"Valid base64, not deflate", "v1.aGVsbG8gd29ybGQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.token); err == nil {
				t.Errorf("Decode(%q) error = nil, expected error", tt.token)
			}
		})
	}
}
