package schema

import "github.com/aaphost/aapcore/pkg/wire"

// MediaSetupRequest opens a media sink channel. It carries no fields:
// its presence on the channel is the entire request.
type MediaSetupRequest struct{}

func (m *MediaSetupRequest) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error {
		if err := w.StartStructure(wire.Anonymous()); err != nil {
			return err
		}
		return w.EndContainer()
	})
}

func (m *MediaSetupRequest) Unmarshal(data []byte) error {
	return unmarshalTop(data, func(r *wire.Reader) error {
		if err := r.EnterContainer(); err != nil {
			return err
		}
		return r.ExitContainer()
	})
}

// Config is the head unit's reply to a MediaSetupRequest, fixing the
// sink's operating configuration.
type Config struct {
	Status               ConfigStatus
	MaxUnacked           int32
	ConfigurationIndices []int32
}

const (
	configTagStatus               = 0
	configTagMaxUnacked           = 1
	configTagConfigurationIndices = 2
)

func (c *Config) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return c.EncodeWithTag(w, wire.Anonymous()) })
}

func (c *Config) Unmarshal(data []byte) error {
	return unmarshalTop(data, c.DecodeFrom)
}

func (c *Config) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(configTagStatus), int64(c.Status)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(configTagMaxUnacked), int64(c.MaxUnacked)); err != nil {
		return err
	}
	if err := w.StartArray(wire.ContextTag(configTagConfigurationIndices)); err != nil {
		return err
	}
	for _, idx := range c.ConfigurationIndices {
		if err := w.PutInt(wire.Anonymous(), int64(idx)); err != nil {
			return err
		}
	}
	if err := w.EndContainer(); err != nil {
		return err
	}
	return w.EndContainer()
}

func (c *Config) DecodeFrom(r *wire.Reader) error {
	if err := r.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := r.Next(); err != nil {
			if r.IsEndOfContainer() {
				break
			}
			return err
		}
		if r.IsEndOfContainer() {
			break
		}
		switch r.Tag().TagNumber() {
		case configTagStatus:
			v, err := r.Int()
			if err != nil {
				return err
			}
			c.Status = ConfigStatus(v)
		case configTagMaxUnacked:
			v, err := r.Int()
			if err != nil {
				return err
			}
			c.MaxUnacked = int32(v)
		case configTagConfigurationIndices:
			if err := r.EnterContainer(); err != nil {
				return err
			}
			for {
				if err := r.Next(); err != nil {
					if r.IsEndOfContainer() {
						break
					}
					return err
				}
				if r.IsEndOfContainer() {
					break
				}
				v, err := r.Int()
				if err != nil {
					return err
				}
				c.ConfigurationIndices = append(c.ConfigurationIndices, int32(v))
			}
			if err := r.ExitContainer(); err != nil {
				return err
			}
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}
	return r.ExitContainer()
}

// VideoFocusRequestNotification asks the head unit for video focus.
type VideoFocusRequestNotification struct {
	Mode   VideoFocusMode
	Reason int32
}

const (
	videoFocusReqTagMode   = 0
	videoFocusReqTagReason = 1
)

func (v *VideoFocusRequestNotification) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return v.EncodeWithTag(w, wire.Anonymous()) })
}

func (v *VideoFocusRequestNotification) Unmarshal(data []byte) error {
	return unmarshalTop(data, v.DecodeFrom)
}

func (v *VideoFocusRequestNotification) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(videoFocusReqTagMode), int64(v.Mode)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(videoFocusReqTagReason), int64(v.Reason)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (v *VideoFocusRequestNotification) DecodeFrom(r *wire.Reader) error {
	if err := r.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := r.Next(); err != nil {
			if r.IsEndOfContainer() {
				break
			}
			return err
		}
		if r.IsEndOfContainer() {
			break
		}
		val, err := r.Int()
		if err != nil {
			return err
		}
		switch r.Tag().TagNumber() {
		case videoFocusReqTagMode:
			v.Mode = VideoFocusMode(val)
		case videoFocusReqTagReason:
			v.Reason = int32(val)
		}
	}
	return r.ExitContainer()
}

// VideoFocusNotification is the head unit's reply granting or
// revoking video focus.
type VideoFocusNotification struct {
	Mode        VideoFocusMode
	Unsolicited bool
}

const (
	videoFocusNotifTagMode        = 0
	videoFocusNotifTagUnsolicited = 1
)

func (v *VideoFocusNotification) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return v.EncodeWithTag(w, wire.Anonymous()) })
}

func (v *VideoFocusNotification) Unmarshal(data []byte) error {
	return unmarshalTop(data, v.DecodeFrom)
}

func (v *VideoFocusNotification) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(videoFocusNotifTagMode), int64(v.Mode)); err != nil {
		return err
	}
	if err := w.PutBool(wire.ContextTag(videoFocusNotifTagUnsolicited), v.Unsolicited); err != nil {
		return err
	}
	return w.EndContainer()
}

func (v *VideoFocusNotification) DecodeFrom(r *wire.Reader) error {
	if err := r.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := r.Next(); err != nil {
			if r.IsEndOfContainer() {
				break
			}
			return err
		}
		if r.IsEndOfContainer() {
			break
		}
		switch r.Tag().TagNumber() {
		case videoFocusNotifTagMode:
			val, err := r.Int()
			if err != nil {
				return err
			}
			v.Mode = VideoFocusMode(val)
		case videoFocusNotifTagUnsolicited:
			val, err := r.Bool()
			if err != nil {
				return err
			}
			v.Unsolicited = val
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}
	return r.ExitContainer()
}

// Start begins media delivery on a sink channel under the given
// session.
type Start struct {
	SessionID int32
}

const startTagSessionID = 0

func (s *Start) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return s.EncodeWithTag(w, wire.Anonymous()) })
}

func (s *Start) Unmarshal(data []byte) error {
	return unmarshalTop(data, s.DecodeFrom)
}

func (s *Start) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(startTagSessionID), int64(s.SessionID)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (s *Start) DecodeFrom(r *wire.Reader) error {
	if err := r.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := r.Next(); err != nil {
			if r.IsEndOfContainer() {
				break
			}
			return err
		}
		if r.IsEndOfContainer() {
			break
		}
		if r.Tag().TagNumber() == startTagSessionID {
			v, err := r.Int()
			if err != nil {
				return err
			}
			s.SessionID = int32(v)
		} else if err := r.Skip(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}

// Ack acknowledges receipt of buffered media frames up to Ack, within
// SessionID.
type Ack struct {
	SessionID int32
	Ack       int32
}

const (
	ackTagSessionID = 0
	ackTagAck       = 1
)

func (a *Ack) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return a.EncodeWithTag(w, wire.Anonymous()) })
}

func (a *Ack) Unmarshal(data []byte) error {
	return unmarshalTop(data, a.DecodeFrom)
}

func (a *Ack) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(ackTagSessionID), int64(a.SessionID)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(ackTagAck), int64(a.Ack)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (a *Ack) DecodeFrom(r *wire.Reader) error {
	if err := r.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := r.Next(); err != nil {
			if r.IsEndOfContainer() {
				break
			}
			return err
		}
		if r.IsEndOfContainer() {
			break
		}
		val, err := r.Int()
		if err != nil {
			return err
		}
		switch r.Tag().TagNumber() {
		case ackTagSessionID:
			a.SessionID = int32(val)
		case ackTagAck:
			a.Ack = int32(val)
		}
	}
	return r.ExitContainer()
}
