package service

import (
	"context"

	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

// VideoFrameHandler receives decoded H.264 access units as they arrive
// on the video sink channel. Actual decode/render is out of scope;
// the head unit only forwards the bytes.
type VideoFrameHandler func(codecConfig bool, data []byte)

// Video answers the setup/start/focus handshake for the video sink
// channel and forwards media/codec-config frames to an external
// handler.
type Video struct {
	ChannelID uint8
	OnFrame   VideoFrameHandler
	session   int32

	// codecConfig is the SPS/PPS prefix handed over by the most recent
	// MediaCodecData message; it is prepended to every subsequent
	// MediaData access unit before OnFrame sees it.
	codecConfig []byte
}

// NewVideoChannel builds the advertised video-sink descriptor and its
// delegate. resolution/frameRate/density mirror the single video mode
// the reference head unit advertises.
func NewVideoChannel(channelID uint8, onFrame VideoFrameHandler) (schema.Service, *Video) {
	svc := schema.Service{
		ID: uint32(channelID),
		MediaSink: &schema.MediaSinkService{
			AvailableType:        schema.MediaCodecVideoH264BP,
			AudioType:            schema.AudioStreamNone,
			AvailableWhileInCall: true,
			VideoConfigs: []schema.VideoConfiguration{
				{CodecResolution: schema.VideoResolution1280x720, FrameRate: schema.VideoFrameRate30, Density: 216},
			},
		},
	}
	return svc, &Video{ChannelID: channelID, OnFrame: onFrame}
}

func (v *Video) OnMessage(ctx context.Context, cc *connctx.Context, msg message.Message) error {
	switch message.MediaTag(msg.MsgType) {
	case message.MediaSetupRequest:
		cfg := schema.Config{Status: schema.ConfigStatusHeadUnit, MaxUnacked: 1, ConfigurationIndices: []int32{0}}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		out := message.New(v.ChannelID, false, true, uint16(message.MediaConfigResponse), data)
		return cc.Post(ctx, out, true)

	case message.MediaVideoFocusRequestNotification:
		var req schema.VideoFocusRequestNotification
		if err := req.Unmarshal(msg.Payload); err != nil {
			return err
		}
		notif := schema.VideoFocusNotification{Mode: schema.VideoFocusFocused}
		data, err := notif.Marshal()
		if err != nil {
			return err
		}
		out := message.New(v.ChannelID, false, true, uint16(message.MediaVideoFocusNotification), data)
		return cc.Post(ctx, out, true)

	case message.MediaStartRequest:
		var start schema.Start
		if err := start.Unmarshal(msg.Payload); err != nil {
			return err
		}
		v.session = start.SessionID
		return nil

	case message.MediaData:
		if v.OnFrame != nil && len(msg.Payload) >= 8 {
			frame := append(append([]byte{}, v.codecConfig...), msg.Payload[8:]...)
			v.OnFrame(false, frame)
		}
		ack := schema.Ack{SessionID: v.session, Ack: 1}
		data, err := ack.Marshal()
		if err != nil {
			return err
		}
		out := message.New(v.ChannelID, false, true, uint16(message.MediaAck), data)
		return cc.Post(ctx, out, true)

	case message.MediaCodecData:
		v.codecConfig = append([]byte{}, msg.Payload...)
		if v.OnFrame != nil {
			v.OnFrame(true, msg.Payload)
		}
		return nil

	default:
		return nil
	}
}
