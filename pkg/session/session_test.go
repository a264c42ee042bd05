package session

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/binary"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/aaphost/aapcore/pkg/channel"
	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/frame"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
	"github.com/aaphost/aapcore/pkg/transport"
)

func selfSignedPEM(t *testing.T) (certPEM, keyPEM []byte) {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "aap-test"},
		NotBefore:    time.Unix(0, 0),
		NotAfter:     time.Unix(0, 0).Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &priv.PublicKey, priv)
	if err != nil {
		t.Fatalf("create certificate: %v", err)
	}
	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyDER, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		t.Fatalf("marshal key: %v", err)
	}
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM
}

// TestNegotiateVersionAcceptsResponse exercises scenarios 1-2: the head
// unit's VersionRequest is well-formed and a status-0 VersionResponse
// moves the session past PhaseVersionSent.
func TestNegotiateVersionAcceptsResponse(t *testing.T) {
	certPEM, keyPEM := selfSignedPEM(t)
	pipe := transport.NewPipe()
	defer pipe.Close()
	huBulk, phoneBulk := pipe.Endpoints()

	s, err := New(Config{Bulk: huBulk, CertPEM: certPEM, KeyPEM: keyPEM})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	phoneErr := make(chan error, 1)
	go func() {
		phoneErr <- answerVersionRequest(phoneBulk)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.negotiateVersion(ctx); err != nil {
		t.Fatalf("negotiateVersion: %v", err)
	}
	if err := <-phoneErr; err != nil {
		t.Fatalf("fake phone: %v", err)
	}
	if s.Phase() != PhaseVersionSent {
		t.Fatalf("phase = %s, want %s", s.Phase(), PhaseVersionSent)
	}
}

// TestNegotiateVersionRejectsNonZeroStatus confirms a status!=0
// VersionResponse fails negotiation instead of silently proceeding.
func TestNegotiateVersionRejectsNonZeroStatus(t *testing.T) {
	certPEM, keyPEM := selfSignedPEM(t)
	pipe := transport.NewPipe()
	defer pipe.Close()
	huBulk, phoneBulk := pipe.Endpoints()

	s, err := New(Config{Bulk: huBulk, CertPEM: certPEM, KeyPEM: keyPEM})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	go func() {
		var scanner frame.Scanner
		readBuf := make([]byte, transport.MaxBulkRead)
		reasm := frame.NewReassembler()
		for {
			n, err := phoneBulk.ReadRaw(readBuf)
			if err != nil || n == 0 {
				if err != nil {
					return
				}
				continue
			}
			scanner.Feed(readBuf[:n])
			for {
				fr, ok, err := scanner.Next()
				if err != nil || !ok {
					break
				}
				r, done, err := reasm.Push(fr)
				if err != nil || !done {
					continue
				}
				if message.ControlTag(r.MsgType) != message.ControlVersionRequest {
					continue
				}
				resp := make([]byte, 4)
				binary.BigEndian.PutUint16(resp, 1)
				binary.BigEndian.PutUint16(resp[2:], 1) // nonzero status: rejected
				out := message.New(0, true, false, uint16(message.ControlVersionResponse), resp)
				for _, f := range out.Fragment(0) {
					phoneBulk.WriteRaw(f.Encode())
				}
				return
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.negotiateVersion(ctx); err != ErrVersionMismatch {
		t.Fatalf("negotiateVersion error = %v, want %v", err, ErrVersionMismatch)
	}
}

func answerVersionRequest(bulk transport.Bulk) error {
	var scanner frame.Scanner
	readBuf := make([]byte, transport.MaxBulkRead)
	reasm := frame.NewReassembler()
	for {
		n, err := bulk.ReadRaw(readBuf)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		scanner.Feed(readBuf[:n])
		for {
			fr, ok, err := scanner.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			r, done, err := reasm.Push(fr)
			if err != nil {
				return err
			}
			if !done {
				continue
			}
			if message.ControlTag(r.MsgType) != message.ControlVersionRequest {
				continue
			}
			resp := make([]byte, 4)
			binary.BigEndian.PutUint16(resp, 1)
			binary.BigEndian.PutUint16(resp[2:], 0)
			out := message.New(0, true, false, uint16(message.ControlVersionResponse), resp)
			for _, f := range out.Fragment(0) {
				if err := bulk.WriteRaw(f.Encode()); err != nil {
					return err
				}
			}
			return nil
		}
	}
}

// TestDiscoveryAdvertisesRegisteredChannels exercises scenario 4: the
// discovery catalogue lists exactly the channels registered on the
// session's Table.
func TestDiscoveryAdvertisesRegisteredChannels(t *testing.T) {
	certPEM, keyPEM := selfSignedPEM(t)
	pipe := transport.NewPipe()
	defer pipe.Close()
	huBulk, _ := pipe.Endpoints()

	sensorCh := channel.New(1, schema.Service{ID: 1, SensorSource: &schema.SensorSourceService{
		Sensors: []schema.Sensor{{Type: schema.SensorTypeDrivingStatus}},
	}}, noopDelegate{}, 4)
	videoCh := channel.New(2, schema.Service{ID: 2, MediaSink: &schema.MediaSinkService{
		AvailableType: schema.MediaCodecVideoH264BP,
	}}, noopDelegate{}, 4)
	table := channel.NewTable(sensorCh, videoCh)

	s, err := New(Config{
		Bulk:     huBulk,
		CertPEM:  certPEM,
		KeyPEM:   keyPEM,
		Channels: table,
		Identity: Identity{Make: "aaphost", Model: "core", HeadUnitMake: "aaphost"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	disco := s.DiscoveryFor()
	if disco.Make != "aaphost" {
		t.Fatalf("Make = %q", disco.Make)
	}
	if len(disco.Services) != 2 {
		t.Fatalf("Services len = %d, want 2", len(disco.Services))
	}
}

type noopDelegate struct{}

func (noopDelegate) OnMessage(ctx context.Context, cc *connctx.Context, msg message.Message) error {
	return nil
}
