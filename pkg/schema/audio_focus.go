package schema

import "github.com/aaphost/aapcore/pkg/wire"

// AudioFocusRequestNotification is sent by the phone on the control
// channel (channel 0) to gain or release audio focus.
type AudioFocusRequestNotification struct {
	FocusType AudioFocusRequestType
}

const audioFocusReqTagType = 0

func (m *AudioFocusRequestNotification) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return m.EncodeWithTag(w, wire.Anonymous()) })
}

func (m *AudioFocusRequestNotification) Unmarshal(data []byte) error {
	return unmarshalTop(data, m.DecodeFrom)
}

func (m *AudioFocusRequestNotification) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(audioFocusReqTagType), int64(m.FocusType)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (m *AudioFocusRequestNotification) DecodeFrom(r *wire.Reader) error {
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
		if r.Tag().TagNumber() == audioFocusReqTagType {
			v, err := r.Int()
			if err != nil {
				return err
			}
			m.FocusType = AudioFocusRequestType(v)
		} else if err := r.Skip(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}

// AudioFocusNotification is the head unit's reply granting or denying
// the requested focus state.
type AudioFocusNotification struct {
	FocusState  AudioFocusStateType
	Unsolicited bool
}

const (
	audioFocusNotifTagState       = 0
	audioFocusNotifTagUnsolicited = 1
)

func (m *AudioFocusNotification) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return m.EncodeWithTag(w, wire.Anonymous()) })
}

func (m *AudioFocusNotification) Unmarshal(data []byte) error {
	return unmarshalTop(data, m.DecodeFrom)
}

func (m *AudioFocusNotification) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(audioFocusNotifTagState), int64(m.FocusState)); err != nil {
		return err
	}
	if err := w.PutBool(wire.ContextTag(audioFocusNotifTagUnsolicited), m.Unsolicited); err != nil {
		return err
	}
	return w.EndContainer()
}

func (m *AudioFocusNotification) DecodeFrom(r *wire.Reader) error {
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
		case audioFocusNotifTagState:
			v, err := r.Int()
			if err != nil {
				return err
			}
			m.FocusState = AudioFocusStateType(v)
		case audioFocusNotifTagUnsolicited:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.Unsolicited = v
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}
	return r.ExitContainer()
}
