// Package service implements the per-channel protocol workers: the
// handlers that answer each advertised AAP service's requests. Every
// worker is a channel.Delegate driven by the channel's own goroutine;
// replies are posted to the shared connctx.Context rather than
// written to the transport directly.
package service

import (
	"context"

	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

// Sensor answers StartRequest with StartResponse and a single
// DrivingStatus SensorBatch reporting the vehicle as unrestricted,
// mirroring the reference head unit's behavior: it never implements
// real vehicle sensors, only the minimum the phone requires to start
// projecting.
type Sensor struct {
	ChannelID uint8
}

// NewSensorChannel builds the Sensor delegate's advertised descriptor
// alongside the delegate itself.
func NewSensorChannel(channelID uint8) (schema.Service, *Sensor) {
	svc := schema.Service{
		ID: uint32(channelID),
		SensorSource: &schema.SensorSourceService{
			Sensors: []schema.Sensor{{Type: schema.SensorTypeDrivingStatus}},
		},
	}
	return svc, &Sensor{ChannelID: channelID}
}

func (s *Sensor) OnMessage(ctx context.Context, cc *connctx.Context, msg message.Message) error {
	switch message.SensorTag(msg.MsgType) {
	case message.SensorStartRequest:
		var req schema.SensorRequest
		if err := req.Unmarshal(msg.Payload); err != nil {
			return err
		}
		resp := schema.SensorResponse{Status: schema.MessageStatusOk}
		data, err := resp.Marshal()
		if err != nil {
			return err
		}
		out := message.New(s.ChannelID, false, true, uint16(message.SensorStartResponse), data)
		if err := cc.Post(ctx, out, true); err != nil {
			return err
		}

		batch := schema.SensorBatch{DrivingStatus: []schema.DrivingStatusData{
			{Status: schema.DrivingStatusUnrestricted},
		}}
		batchData, err := batch.Marshal()
		if err != nil {
			return err
		}
		event := message.New(s.ChannelID, false, true, uint16(message.SensorEvent), batchData)
		return cc.Post(ctx, event, true)
	default:
		return nil
	}
}
