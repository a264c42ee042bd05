package schema

import "github.com/aaphost/aapcore/pkg/wire"

// KeyBindingRequest asks the head unit to confirm it can source the
// given scancodes on the input channel.
type KeyBindingRequest struct {
	Scancodes []int32
}

const keyBindingReqTagScancodes = 0

func (k *KeyBindingRequest) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return k.EncodeWithTag(w, wire.Anonymous()) })
}

func (k *KeyBindingRequest) Unmarshal(data []byte) error {
	return unmarshalTop(data, k.DecodeFrom)
}

func (k *KeyBindingRequest) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.StartArray(wire.ContextTag(keyBindingReqTagScancodes)); err != nil {
		return err
	}
	for _, sc := range k.Scancodes {
		if err := w.PutInt(wire.Anonymous(), int64(sc)); err != nil {
			return err
		}
	}
	if err := w.EndContainer(); err != nil {
		return err
	}
	return w.EndContainer()
}

func (k *KeyBindingRequest) DecodeFrom(r *wire.Reader) error {
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
		if r.Tag().TagNumber() != keyBindingReqTagScancodes {
			if err := r.Skip(); err != nil {
				return err
			}
			continue
		}
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
			k.Scancodes = append(k.Scancodes, int32(v))
		}
		if err := r.ExitContainer(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}

// BindingResponse answers a KeyBindingRequest.
type BindingResponse struct {
	Status MessageStatus
}

const bindingRespTagStatus = 0

func (b *BindingResponse) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return b.EncodeWithTag(w, wire.Anonymous()) })
}

func (b *BindingResponse) Unmarshal(data []byte) error {
	return unmarshalTop(data, b.DecodeFrom)
}

func (b *BindingResponse) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(bindingRespTagStatus), int64(b.Status)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (b *BindingResponse) DecodeFrom(r *wire.Reader) error {
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
		if r.Tag().TagNumber() == bindingRespTagStatus {
			v, err := r.Int()
			if err != nil {
				return err
			}
			b.Status = MessageStatus(v)
		} else if err := r.Skip(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}

// Key is a single key press or release.
type Key struct {
	Down    bool
	Keycode uint32
}

const (
	keyTagDown    = 0
	keyTagKeycode = 1
)

func (k *Key) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutBool(wire.ContextTag(keyTagDown), k.Down); err != nil {
		return err
	}
	if err := w.PutUint(wire.ContextTag(keyTagKeycode), uint64(k.Keycode)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (k *Key) DecodeFrom(r *wire.Reader) error {
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
		case keyTagDown:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			k.Down = v
		case keyTagKeycode:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			k.Keycode = uint32(v)
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}
	return r.ExitContainer()
}

// KeyEvent groups the keys that changed state in a single report.
type KeyEvent struct {
	Keys []Key
}

const keyEventTagKeys = 0

func (ke *KeyEvent) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.StartArray(wire.ContextTag(keyEventTagKeys)); err != nil {
		return err
	}
	for i := range ke.Keys {
		if err := ke.Keys[i].EncodeWithTag(w, wire.Anonymous()); err != nil {
			return err
		}
	}
	if err := w.EndContainer(); err != nil {
		return err
	}
	return w.EndContainer()
}

func (ke *KeyEvent) DecodeFrom(r *wire.Reader) error {
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
		if r.Tag().TagNumber() != keyEventTagKeys {
			if err := r.Skip(); err != nil {
				return err
			}
			continue
		}
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
			var k Key
			if err := k.DecodeFrom(r); err != nil {
				return err
			}
			ke.Keys = append(ke.Keys, k)
		}
		if err := r.ExitContainer(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}

// RelativeEventPointer is a single touch or pointer sample within a
// RelativeEvent.
type RelativeEventPointer struct {
	X           int32
	Y           int32
	ActionIndex int32
	Action      int32
}

const (
	relPointerTagX           = 0
	relPointerTagY           = 1
	relPointerTagActionIndex = 2
	relPointerTagAction      = 3
)

func (p *RelativeEventPointer) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(relPointerTagX), int64(p.X)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(relPointerTagY), int64(p.Y)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(relPointerTagActionIndex), int64(p.ActionIndex)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(relPointerTagAction), int64(p.Action)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (p *RelativeEventPointer) DecodeFrom(r *wire.Reader) error {
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
		case relPointerTagX:
			p.X = int32(val)
		case relPointerTagY:
			p.Y = int32(val)
		case relPointerTagActionIndex:
			p.ActionIndex = int32(val)
		case relPointerTagAction:
			p.Action = int32(val)
		}
	}
	return r.ExitContainer()
}

// RelativeEvent carries a batch of touchpad-style pointer samples.
type RelativeEvent struct {
	Pointers []RelativeEventPointer
}

const relEventTagPointers = 0

func (re *RelativeEvent) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.StartArray(wire.ContextTag(relEventTagPointers)); err != nil {
		return err
	}
	for i := range re.Pointers {
		if err := re.Pointers[i].EncodeWithTag(w, wire.Anonymous()); err != nil {
			return err
		}
	}
	if err := w.EndContainer(); err != nil {
		return err
	}
	return w.EndContainer()
}

func (re *RelativeEvent) DecodeFrom(r *wire.Reader) error {
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
		if r.Tag().TagNumber() != relEventTagPointers {
			if err := r.Skip(); err != nil {
				return err
			}
			continue
		}
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
			var p RelativeEventPointer
			if err := p.DecodeFrom(r); err != nil {
				return err
			}
			re.Pointers = append(re.Pointers, p)
		}
		if err := r.ExitContainer(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}

// InputReport carries one timestamped batch of key or relative input,
// sent by the head unit to the phone on the head unit's input source
// channel (pushed unprompted, not a reply to a request).
type InputReport struct {
	Timestamp     uint64
	KeyEvent      *KeyEvent
	RelativeEvent *RelativeEvent
}

const (
	inputReportTagTimestamp     = 0
	inputReportTagKeyEvent      = 1
	inputReportTagRelativeEvent = 2
)

func (ir *InputReport) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return ir.EncodeWithTag(w, wire.Anonymous()) })
}

func (ir *InputReport) Unmarshal(data []byte) error {
	return unmarshalTop(data, ir.DecodeFrom)
}

func (ir *InputReport) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutUint(wire.ContextTag(inputReportTagTimestamp), ir.Timestamp); err != nil {
		return err
	}
	if ir.KeyEvent != nil {
		if err := ir.KeyEvent.EncodeWithTag(w, wire.ContextTag(inputReportTagKeyEvent)); err != nil {
			return err
		}
	}
	if ir.RelativeEvent != nil {
		if err := ir.RelativeEvent.EncodeWithTag(w, wire.ContextTag(inputReportTagRelativeEvent)); err != nil {
			return err
		}
	}
	return w.EndContainer()
}

func (ir *InputReport) DecodeFrom(r *wire.Reader) error {
	hasTimestamp := false
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
		case inputReportTagTimestamp:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			ir.Timestamp = v
			hasTimestamp = true
		case inputReportTagKeyEvent:
			var ke KeyEvent
			if err := ke.DecodeFrom(r); err != nil {
				return err
			}
			ir.KeyEvent = &ke
		case inputReportTagRelativeEvent:
			var re RelativeEvent
			if err := re.DecodeFrom(r); err != nil {
				return err
			}
			ir.RelativeEvent = &re
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}
	if err := r.ExitContainer(); err != nil {
		return err
	}
	if !hasTimestamp {
		return ErrMissingField
	}
	return nil
}
