// Package tlsconn implements the TLS adapter: during the handshake
// phase it tunnels TLS records inside unencrypted control-message
// frames on channel 0; afterwards it encrypts/decrypts the plaintext
// carried by individual Messages so the session loop can emit them as
// ciphertext frames. The head unit always takes the TLS client role
// (the phone presents the server certificate).
package tlsconn

import (
	"context"
	"crypto/tls"

	"github.com/aaphost/aapcore/pkg/frame"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/transport"
	"github.com/pion/logging"
)

// Config configures an Adapter.
type Config struct {
	// Cert/Key are the head unit's PEM-encoded certificate and private
	// key presented during the handshake.
	CertPEM []byte
	KeyPEM  []byte

	// ChunkSize bounds outbound fragmentation of handshake records that
	// exceed a single frame. <=0 selects frame.DefaultChunkSize.
	ChunkSize int

	LoggerFactory logging.LoggerFactory
}

// Adapter drives a crypto/tls.Conn over the bridge seam described in
// bridge.go.
type Adapter struct {
	bridge    *bridge
	conn      *tls.Conn
	chunkSize int
	log       logging.LeveledLogger
}

// New builds an Adapter pinned to TLS 1.2, presenting the given
// certificate, and accepting whatever certificate the phone presents.
// The peer-verify-None posture mirrors the reference head unit; see
// DESIGN.md for the tradeoff this carries.
func New(cfg Config) (*Adapter, error) {
	cert, err := tls.X509KeyPair(cfg.CertPEM, cfg.KeyPEM)
	if err != nil {
		return nil, err
	}

	tlsCfg := &tls.Config{
		Certificates:       []tls.Certificate{cert},
		MinVersion:         tls.VersionTLS12,
		MaxVersion:         tls.VersionTLS12,
		InsecureSkipVerify: true,
	}

	var log logging.LeveledLogger
	if cfg.LoggerFactory != nil {
		log = cfg.LoggerFactory.NewLogger("tlsconn")
	} else {
		log = logging.NewDefaultLoggerFactory().NewLogger("tlsconn")
	}

	b := newBridge()
	return &Adapter{
		bridge:    b,
		conn:      tls.Client(b, tlsCfg),
		chunkSize: cfg.ChunkSize,
		log:       log,
	}, nil
}

// DoHandshake drives the handshake-over-frames loop to completion: TLS
// records the engine wants to send are wrapped as the payload of
// unencrypted channel-0 Handshake control frames and written to bulk;
// frames read back off bulk are validated as the same shape and fed
// back to the engine. Any other frame arriving during this phase is a
// protocol violation.
func (a *Adapter) DoHandshake(ctx context.Context, bulk transport.Bulk) error {
	done := make(chan error, 1)
	go func() {
		done <- a.conn.HandshakeContext(ctx)
	}()

	var scanner frame.Scanner
	readBuf := make([]byte, transport.MaxBulkRead)

	flush := func() error {
		for _, chunk := range a.bridge.drainOutbound() {
			m := message.New(0, true, false, uint16(message.ControlHandshake), chunk)
			for _, f := range m.Fragment(a.chunkSize) {
				if err := bulk.WriteRaw(f.Encode()); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for {
		if err := flush(); err != nil {
			return err
		}

		select {
		case err := <-done:
			if ferr := flush(); ferr != nil {
				return ferr
			}
			if err != nil {
				return err
			}
			a.log.Debug("tls handshake complete")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

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
			if fr.Header.ChannelID != 0 || fr.Header.Encrypted {
				return ErrUnexpectedFrame
			}
			msg := message.FromReassembled(frame.Reassembled{
				ChannelID: fr.Header.ChannelID,
				Control:   fr.Header.Control,
				Encrypted: fr.Header.Encrypted,
				MsgType:   uint16(fr.Payload[0])<<8 | uint16(fr.Payload[1]),
				Payload:   fr.Payload[2:],
			})
			if message.ControlTag(msg.MsgType) != message.ControlHandshake {
				return ErrUnexpectedFrame
			}
			a.bridge.feed(msg.Payload)
		}
	}
}

// EncryptMessage encrypts plaintext (already msg_type-prefixed by the
// caller) and returns the ciphertext ready to be wrapped in one or more
// encrypted frames.
func (a *Adapter) EncryptMessage(plaintext []byte) ([]byte, error) {
	if _, err := a.conn.Write(plaintext); err != nil {
		return nil, err
	}
	var out []byte
	for _, chunk := range a.bridge.drainOutbound() {
		out = append(out, chunk...)
	}
	return out, nil
}

// DecryptFrame feeds one reassembled ciphertext payload (everything
// written by the peer's matching EncryptMessage call) and returns the
// decrypted msg_type-prefixed plaintext. It assumes the fed bytes are a
// complete set of TLS records, which holds because the sender emits
// exactly one EncryptMessage per Message before the session loop frames
// it — no partial record is ever split across two distinct Messages.
func (a *Adapter) DecryptFrame(ciphertext []byte) ([]byte, error) {
	a.bridge.feed(ciphertext)

	var out []byte
	buf := make([]byte, transport.MaxBulkRead)
	for {
		n, err := a.conn.Read(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err != nil {
			return out, err
		}
		a.bridge.mu.Lock()
		empty := len(a.bridge.inbuf) == 0
		a.bridge.mu.Unlock()
		if empty {
			return out, nil
		}
	}
}

// Close releases the underlying bridge, unblocking any pending Read.
func (a *Adapter) Close() error {
	a.bridge.close()
	return a.conn.Close()
}
