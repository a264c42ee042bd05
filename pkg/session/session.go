package session

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/aaphost/aapcore/pkg/channel"
	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/frame"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
	"github.com/aaphost/aapcore/pkg/tlsconn"
	"github.com/aaphost/aapcore/pkg/transport"
	"github.com/google/uuid"
	"github.com/pion/logging"
)

// Identity carries the vehicle/head-unit strings advertised in
// ServiceDiscoveryResponse.
type Identity struct {
	Make                    string
	Model                   string
	Year                    string
	VehicleID               string
	HeadUnitMake            string
	HeadUnitModel           string
	HeadUnitSoftwareBuild   string
	HeadUnitSoftwareVersion string
}

// Config configures a Session.
type Config struct {
	Bulk transport.Bulk

	// CertPEM/KeyPEM are the head unit's TLS identity, handed to
	// tlsconn.Adapter unchanged.
	CertPEM []byte
	KeyPEM  []byte

	// SupportedVersions are offered in order of preference in the
	// VersionRequest; the first entry is the head unit's primary
	// version.
	SupportedVersions []Version

	ChunkSize int
	Identity  Identity
	Channels  *channel.Table

	LoggerFactory logging.LoggerFactory
}

// Version is a major.minor protocol version pair.
type Version struct {
	Major uint16
	Minor uint16
}

// Session drives one head-unit-to-phone connection through the
// version/handshake/running state machine and, once Running, the
// channel-multiplexer loop.
type Session struct {
	cfg Config
	log logging.LeveledLogger

	// ID correlates every log line this session emits with one
	// physical connection, so interleaved output from concurrent
	// channel goroutines can still be traced back to its session.
	ID string

	mu    sync.RWMutex
	phase Phase

	tls     *tlsconn.Adapter
	cc      *connctx.Context
	scanner frame.Scanner
	reasm   *frame.Reassembler

	// startedMu guards started, the set of channel IDs whose worker
	// goroutine has been launched. A channel starts lazily, on its
	// first ChannelOpenRequest, not unconditionally at PhaseRunning
	// entry: a peer that waits for ChannelOpenResponse before using a
	// channel must see nothing on the wire for it before asking.
	startedMu sync.Mutex
	started   map[uint8]bool
}

// New builds a Session in PhaseInit. It does not touch the network
// until Run is called.
func New(cfg Config) (*Session, error) {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = frame.DefaultChunkSize
	}
	if len(cfg.SupportedVersions) == 0 {
		cfg.SupportedVersions = []Version{{Major: 1, Minor: 7}}
	}

	tls, err := tlsconn.New(tlsconn.Config{
		CertPEM:       cfg.CertPEM,
		KeyPEM:        cfg.KeyPEM,
		ChunkSize:     cfg.ChunkSize,
		LoggerFactory: cfg.LoggerFactory,
	})
	if err != nil {
		return nil, err
	}

	var log logging.LeveledLogger
	if cfg.LoggerFactory != nil {
		log = cfg.LoggerFactory.NewLogger("session")
	} else {
		log = logging.NewDefaultLoggerFactory().NewLogger("session")
	}

	id := uuid.NewString()
	return &Session{
		cfg:     cfg,
		log:     log,
		ID:      id,
		phase:   PhaseInit,
		tls:     tls,
		cc:      connctx.New(32),
		reasm:   frame.NewReassembler(),
		started: make(map[uint8]bool),
	}, nil
}

// Phase returns the session's current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *Session) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
	s.log.Debugf("[%s] phase -> %s", s.ID, p)
}

// Context returns the connctx.Context channel workers should use to
// post outbound messages.
func (s *Session) Context() *connctx.Context {
	return s.cc
}

// Run drives the session to completion: version negotiation, TLS
// handshake, then the Running-phase mux loop, until ctx is cancelled
// or a fatal error per §7 occurs.
func (s *Session) Run(ctx context.Context) error {
	if err := s.negotiateVersion(ctx); err != nil {
		s.setPhase(PhaseTerminated)
		return err
	}

	s.setPhase(PhaseTlsHandshaking)
	if err := s.tls.DoHandshake(ctx, s.cfg.Bulk); err != nil {
		s.setPhase(PhaseTerminated)
		return err
	}
	ok := message.New(0, true, false, uint16(message.ControlHandshakeOk), []byte{0x08, 0x00})
	for _, f := range ok.Fragment(s.cfg.ChunkSize) {
		if err := s.cfg.Bulk.WriteRaw(f.Encode()); err != nil {
			s.setPhase(PhaseTerminated)
			return err
		}
	}
	s.cfg.Bulk.FinishHandshake()

	s.setPhase(PhaseRunning)

	err := s.muxLoop(ctx)
	s.setPhase(PhaseTerminated)
	return err
}

// startChannel launches channelID's worker goroutine the first time
// it is asked for; subsequent requests for an already-started channel
// are a no-op. Returns false if no channel is registered for that ID.
func (s *Session) startChannel(ctx context.Context, channelID uint8) bool {
	if s.cfg.Channels == nil {
		return false
	}
	c, ok := s.cfg.Channels.Lookup(channelID)
	if !ok {
		return false
	}

	s.startedMu.Lock()
	defer s.startedMu.Unlock()
	if s.started[channelID] {
		return true
	}
	s.started[channelID] = true
	go c.Run(ctx, s.cc, func(channelID uint8, err error) {
		s.log.Errorf("[%s] channel %d: %v", s.ID, channelID, err)
	})
	return true
}

// negotiateVersion sends the VersionRequest and blocks for the
// VersionResponse. It runs entirely unencrypted on channel 0.
func (s *Session) negotiateVersion(ctx context.Context) error {
	payload := make([]byte, 4*len(s.cfg.SupportedVersions))
	for i, v := range s.cfg.SupportedVersions {
		binary.BigEndian.PutUint16(payload[i*4:], v.Major)
		binary.BigEndian.PutUint16(payload[i*4+2:], v.Minor)
	}
	req := message.New(0, false, false, uint16(message.ControlVersionRequest), payload)
	for _, f := range req.Fragment(s.cfg.ChunkSize) {
		if err := s.cfg.Bulk.WriteRaw(f.Encode()); err != nil {
			return err
		}
	}
	s.setPhase(PhaseVersionSent)

	readBuf := make([]byte, transport.MaxBulkRead)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := s.cfg.Bulk.ReadRaw(readBuf)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		s.scanner.Feed(readBuf[:n])
		for {
			fr, ok, err := s.scanner.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			r, done, err := s.reasm.Push(fr)
			if err != nil {
				return err
			}
			if !done {
				continue
			}
			if r.ChannelID != 0 || message.ControlTag(r.MsgType) != message.ControlVersionResponse {
				continue
			}
			if len(r.Payload) < 4 {
				return ErrVersionMismatch
			}
			status := binary.BigEndian.Uint16(r.Payload[2:4])
			if status != 0 {
				return ErrVersionMismatch
			}
			return nil
		}
	}
}

// muxLoop is the Running-phase loop: it alternates draining queued
// outbound commands with a bounded read of the transport, mirroring
// the flush/read alternation tlsconn.Adapter.DoHandshake uses for the
// handshake phase.
func (s *Session) muxLoop(ctx context.Context) error {
	readBuf := make([]byte, transport.MaxBulkRead)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out, ok := <-s.cc.Commands:
			if !ok {
				return nil
			}
			if err := s.send(out); err != nil {
				return err
			}
			continue
		default:
		}

		n, err := s.cfg.Bulk.ReadRaw(readBuf)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		s.scanner.Feed(readBuf[:n])
		for {
			fr, ok, err := s.scanner.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			r, done, err := s.reasm.Push(fr)
			if err != nil {
				return err
			}
			if !done {
				continue
			}
			if err := s.dispatch(ctx, r); err != nil {
				s.log.Errorf("[%s] dispatch: %v", s.ID, err)
			}
		}
	}
}

// send encrypts (if requested) and frames an outbound message, then
// writes it to the transport.
func (s *Session) send(out connctx.Outbound) error {
	msg := out.Message
	if out.Encrypted {
		plaintext := make([]byte, 2+len(msg.Payload))
		binary.BigEndian.PutUint16(plaintext, msg.MsgType)
		copy(plaintext[2:], msg.Payload)
		ciphertext, err := s.tls.EncryptMessage(plaintext)
		if err != nil {
			return err
		}
		msg = message.New(msg.ChannelID, msg.Control, true, 0, ciphertext)
	}
	for _, f := range msg.Fragment(s.cfg.ChunkSize) {
		if err := s.cfg.Bulk.WriteRaw(f.Encode()); err != nil {
			return err
		}
	}
	return nil
}

// dispatch routes one reassembled, still-possibly-encrypted message to
// the control handler or a registered channel.
func (s *Session) dispatch(ctx context.Context, r frame.Reassembled) error {
	msg := message.FromReassembled(r)
	if msg.Encrypted {
		plaintext, err := s.tls.DecryptFrame(msg.Payload)
		if err != nil {
			return err
		}
		if len(plaintext) < 2 {
			return nil
		}
		msg = message.Message{
			ChannelID: r.ChannelID,
			Control:   r.Control,
			Encrypted: true,
			MsgType:   binary.BigEndian.Uint16(plaintext),
			Payload:   plaintext[2:],
		}
	}

	if msg.ChannelID == 0 {
		return s.handleControl(ctx, msg)
	}
	if s.cfg.Channels == nil {
		return ErrUnknownChannel
	}
	ch, ok := s.cfg.Channels.Lookup(msg.ChannelID)
	if !ok {
		return ErrUnknownChannel
	}
	return ch.Deliver(ctx, msg)
}

// handleControl answers the control-channel requests the session loop
// itself owns (service discovery, ping, channel open, audio focus and
// bye-bye); an unrecognized tag is logged and dropped, and any other
// recognized tag is dropped silently.
func (s *Session) handleControl(ctx context.Context, msg message.Message) error {
	tag := message.ControlTag(msg.MsgType)
	switch tag {
	case message.ControlServiceDiscoveryRequest:
		resp := s.cfg.Channels.Discovery(
			s.cfg.Identity.Make, s.cfg.Identity.Model, s.cfg.Identity.Year, s.cfg.Identity.VehicleID,
			s.cfg.Identity.HeadUnitMake, s.cfg.Identity.HeadUnitModel,
			s.cfg.Identity.HeadUnitSoftwareBuild, s.cfg.Identity.HeadUnitSoftwareVersion,
		)
		data, err := resp.Marshal()
		if err != nil {
			return err
		}
		out := message.New(0, true, true, uint16(message.ControlServiceDiscoveryResponse), data)
		return s.cc.Post(ctx, out, true)
	case message.ControlPingRequest:
		out := message.New(0, true, true, uint16(message.ControlPingResponse), msg.Payload)
		return s.cc.Post(ctx, out, true)
	case message.ControlChannelOpenRequest:
		var req schema.ChannelOpenRequest
		if err := req.Unmarshal(msg.Payload); err != nil {
			return err
		}
		if !s.startChannel(ctx, req.ChannelID) {
			s.log.Warnf("[%s] ChannelOpenRequest for unknown channel %d", s.ID, req.ChannelID)
		}
		resp := schema.ChannelOpenResponse{Status: schema.MessageStatusOk}
		data, err := resp.Marshal()
		if err != nil {
			return err
		}
		out := message.New(0, true, true, uint16(message.ControlChannelOpenResponse), data)
		return s.cc.Post(ctx, out, true)
	case message.ControlAudioFocusRequestNotification:
		var req schema.AudioFocusRequestNotification
		if err := req.Unmarshal(msg.Payload); err != nil {
			return err
		}
		state := schema.AudioFocusStateGain
		if req.FocusType == schema.AudioFocusRequestRelease {
			state = schema.AudioFocusStateLoss
		}
		notif := schema.AudioFocusNotification{FocusState: state}
		data, err := notif.Marshal()
		if err != nil {
			return err
		}
		out := message.New(0, true, true, uint16(message.ControlAudioFocusNotification), data)
		return s.cc.Post(ctx, out, true)
	case message.ControlByeByeRequest:
		out := message.New(0, true, true, uint16(message.ControlByeByeResponse), nil)
		if err := s.cc.Post(ctx, out, true); err != nil {
			return err
		}
		return ErrTerminated
	default:
		if !tag.Recognized() {
			s.log.Warnf("[%s] unrecognized control message %#x, dropping", s.ID, msg.MsgType)
		}
		return nil
	}
}

// DiscoveryFor builds the ServiceDiscoveryResponse this session would
// advertise right now, primarily useful for tests and logging.
func (s *Session) DiscoveryFor() schema.ServiceDiscoveryResponse {
	return s.cfg.Channels.Discovery(
		s.cfg.Identity.Make, s.cfg.Identity.Model, s.cfg.Identity.Year, s.cfg.Identity.VehicleID,
		s.cfg.Identity.HeadUnitMake, s.cfg.Identity.HeadUnitModel,
		s.cfg.Identity.HeadUnitSoftwareBuild, s.cfg.Identity.HeadUnitSoftwareVersion,
	)
}
