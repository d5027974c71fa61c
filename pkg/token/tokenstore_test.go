package tokenstore

import "testing"

func TestRevokeAndCheck(t *testing.T) {
	jti := "test-jti-1"
	if IsRevoked(jti) {
		t.Fatalf("expected fresh jti to be unrevoked")
	}
	RevokeToken(jti)
	if !IsRevoked(jti) {
		t.Fatalf("expected revoked jti to be flagged")
	}
}

func TestEmptyJTI(t *testing.T) {
	RevokeToken("")
	if IsRevoked("") {
		t.Fatalf("empty jti must never read as revoked")
	}
}
