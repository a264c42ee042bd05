package service

import (
	"context"

	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

// Standard AAP keycodes the reference head unit advertises support
// for: directional pad, rotary controller, and the two hardware keys
// it is willing to source (Home/Back).
const (
	KeycodeDPadUp            = 19
	KeycodeDPadDown          = 20
	KeycodeDPadLeft          = 21
	KeycodeDPadRight         = 22
	KeycodeRotaryController  = 1000
	KeycodeDPadCenter        = 23
	KeycodeHome              = 3
	KeycodeBack              = 4
)

// Input answers key-binding requests and forwards InputReport batches
// built from key events. Unlike the sink channels, SendKeyEvent is the
// primary entry point: the phone consumes InputReports pushed by the
// head unit, it does not request them.
type Input struct {
	ChannelID uint8
}

// NewInputChannel builds the advertised input-source descriptor and
// its delegate.
func NewInputChannel(channelID uint8) (schema.Service, *Input) {
	svc := schema.Service{
		ID: uint32(channelID),
		InputSource: &schema.InputSourceService{
			KeycodesSupported: []uint32{
				KeycodeDPadUp, KeycodeDPadDown, KeycodeDPadLeft, KeycodeDPadRight,
				KeycodeRotaryController, KeycodeDPadCenter, KeycodeHome, KeycodeBack,
			},
		},
	}
	return svc, &Input{ChannelID: channelID}
}

func (in *Input) OnMessage(ctx context.Context, cc *connctx.Context, msg message.Message) error {
	switch message.InputTag(msg.MsgType) {
	case message.InputBindingRequest:
		var req schema.KeyBindingRequest
		if err := req.Unmarshal(msg.Payload); err != nil {
			return err
		}
		resp := schema.BindingResponse{Status: schema.MessageStatusOk}
		data, err := resp.Marshal()
		if err != nil {
			return err
		}
		out := message.New(in.ChannelID, false, true, uint16(message.InputBindingResponse), data)
		return cc.Post(ctx, out, true)
	default:
		return nil
	}
}

// SendKeyEvent reports one timestamped batch of key presses/releases.
func (in *Input) SendKeyEvent(ctx context.Context, cc *connctx.Context, timestampNanos uint64, keys []schema.Key) error {
	report := schema.InputReport{
		Timestamp: timestampNanos,
		KeyEvent:  &schema.KeyEvent{Keys: keys},
	}
	data, err := report.Marshal()
	if err != nil {
		return err
	}
	out := message.New(in.ChannelID, false, true, uint16(message.InputReport), data)
	return cc.Post(ctx, out, true)
}
