package service

import (
	"testing"

	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

func TestSensorStartRequestRespondsAndPushesDrivingStatus(t *testing.T) {
	p := newTestPair()
	s := &Sensor{ChannelID: 4}

	req := schema.SensorRequest{Type: schema.SensorTypeDrivingStatus}
	data, err := req.Marshal()
	if err != nil {
		t.Fatalf("Marshal SensorRequest: %v", err)
	}
	p.deliver(t, s, message.New(4, false, true, uint16(message.SensorStartRequest), data))

	out := p.next(t, testTimeout)
	if message.SensorTag(out.Message.MsgType) != message.SensorStartResponse {
		t.Fatalf("msg type = %#x, want SensorStartResponse", out.Message.MsgType)
	}
	var resp schema.SensorResponse
	if err := resp.Unmarshal(out.Message.Payload); err != nil {
		t.Fatalf("Unmarshal SensorResponse: %v", err)
	}
	if resp.Status != schema.MessageStatusOk {
		t.Fatalf("SensorResponse.Status = %v, want MessageStatusOk", resp.Status)
	}

	out = p.next(t, testTimeout)
	if message.SensorTag(out.Message.MsgType) != message.SensorEvent {
		t.Fatalf("msg type = %#x, want SensorEvent", out.Message.MsgType)
	}
	var batch schema.SensorBatch
	if err := batch.Unmarshal(out.Message.Payload); err != nil {
		t.Fatalf("Unmarshal SensorBatch: %v", err)
	}
	if len(batch.DrivingStatus) != 1 || batch.DrivingStatus[0].Status != schema.DrivingStatusUnrestricted {
		t.Fatalf("SensorBatch.DrivingStatus = %+v, want one entry with DrivingStatusUnrestricted", batch.DrivingStatus)
	}
}
