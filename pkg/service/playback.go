package service

import (
	"context"

	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

// PlaybackStatusHandler observes playback status/metadata pushed by
// the phone. The reference head unit parses both but does not act on
// them; an embedder can wire OnStatus/OnMeta to drive a cluster
// display.
type PlaybackStatusHandler func(status schema.MediaPlaybackStatus)

// MetaDataHandler observes metadata pushed alongside playback status.
type MetaDataHandler func(meta schema.MediaMetaData)

// Playback is the media-playback-status channel's delegate.
type Playback struct {
	ChannelID uint8
	OnStatus  PlaybackStatusHandler
	OnMeta    MetaDataHandler
}

// NewPlaybackChannel builds the advertised media-playback-status
// descriptor and its delegate.
func NewPlaybackChannel(channelID uint8, onStatus PlaybackStatusHandler, onMeta MetaDataHandler) (schema.Service, *Playback) {
	svc := schema.Service{
		ID:                  uint32(channelID),
		MediaPlaybackStatus: &schema.MediaPlaybackStatusService{},
	}
	return svc, &Playback{ChannelID: channelID, OnStatus: onStatus, OnMeta: onMeta}
}

func (p *Playback) OnMessage(ctx context.Context, cc *connctx.Context, msg message.Message) error {
	switch message.PlaybackTag(msg.MsgType) {
	case message.PlaybackMediaPlaybackStatus:
		var status schema.MediaPlaybackStatus
		if err := status.Unmarshal(msg.Payload); err != nil {
			return err
		}
		if p.OnStatus != nil {
			p.OnStatus(status)
		}
		return nil
	case message.PlaybackMediaPlaybackMetaData:
		var meta schema.MediaMetaData
		if err := meta.Unmarshal(msg.Payload); err != nil {
			return err
		}
		if p.OnMeta != nil {
			p.OnMeta(meta)
		}
		return nil
	default:
		return nil
	}
}
