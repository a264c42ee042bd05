package schema

import "github.com/aaphost/aapcore/pkg/wire"

// ChannelOpenRequest asks the head unit to start servicing a channel.
type ChannelOpenRequest struct {
	ChannelID uint8
	Priority  int32
}

const (
	channelOpenReqTagChannelID = 0
	channelOpenReqTagPriority  = 1
)

func (c *ChannelOpenRequest) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return c.EncodeWithTag(w, wire.Anonymous()) })
}

func (c *ChannelOpenRequest) Unmarshal(data []byte) error {
	return unmarshalTop(data, c.DecodeFrom)
}

func (c *ChannelOpenRequest) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutUint(wire.ContextTag(channelOpenReqTagChannelID), uint64(c.ChannelID)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(channelOpenReqTagPriority), int64(c.Priority)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (c *ChannelOpenRequest) DecodeFrom(r *wire.Reader) error {
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
		case channelOpenReqTagChannelID:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			c.ChannelID = uint8(v)
		case channelOpenReqTagPriority:
			v, err := r.Int()
			if err != nil {
				return err
			}
			c.Priority = int32(v)
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}
	return r.ExitContainer()
}

// ChannelOpenResponse answers a ChannelOpenRequest.
type ChannelOpenResponse struct {
	Status MessageStatus
}

const channelOpenRespTagStatus = 0

func (c *ChannelOpenResponse) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return c.EncodeWithTag(w, wire.Anonymous()) })
}

func (c *ChannelOpenResponse) Unmarshal(data []byte) error {
	return unmarshalTop(data, c.DecodeFrom)
}

func (c *ChannelOpenResponse) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(channelOpenRespTagStatus), int64(c.Status)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (c *ChannelOpenResponse) DecodeFrom(r *wire.Reader) error {
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
		if r.Tag().TagNumber() == channelOpenRespTagStatus {
			v, err := r.Int()
			if err != nil {
				return err
			}
			c.Status = MessageStatus(v)
			continue
		}
		if err := r.Skip(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}
