package identity

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"testing"
)

func TestGenerateSelfSignedLoadsAsKeyPair(t *testing.T) {
	certPEM, keyPEM, err := GenerateSelfSigned("aap-headunit-test")
	if err != nil {
		t.Fatalf("GenerateSelfSigned: %v", err)
	}
	if _, err := tls.X509KeyPair(certPEM, keyPEM); err != nil {
		t.Fatalf("X509KeyPair: %v", err)
	}
}

func TestGenerateSelfSignedSetsCommonName(t *testing.T) {
	certPEM, _, err := GenerateSelfSigned("my-head-unit")
	if err != nil {
		t.Fatalf("GenerateSelfSigned: %v", err)
	}
	block, _ := pem.Decode(certPEM)
	if block == nil {
		t.Fatal("pem.Decode returned nil block")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}
	if cert.Subject.CommonName != "my-head-unit" {
		t.Fatalf("CommonName = %q, want %q", cert.Subject.CommonName, "my-head-unit")
	}
}
