package service

import (
	"bytes"
	"testing"

	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

func TestVideoCodecDataThenMediaDataPrependsCodecConfig(t *testing.T) {
	p := newTestPair()
	var got []byte
	var gotCodecConfig bool
	_, v := NewVideoChannel(1, func(codecConfig bool, data []byte) {
		gotCodecConfig = codecConfig
		got = data
	})

	codecConfig := []byte{0x01, 0x02, 0x03}
	p.deliver(t, v, message.New(1, false, true, uint16(message.MediaCodecData), codecConfig))
	if gotCodecConfig != true {
		t.Fatalf("MediaCodecData: OnFrame codecConfig flag = %v, want true", gotCodecConfig)
	}
	if !bytes.Equal(got, codecConfig) {
		t.Fatalf("MediaCodecData: OnFrame data = %x, want %x", got, codecConfig)
	}

	timestamp := make([]byte, 8)
	unit := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	payload := append(append([]byte{}, timestamp...), unit...)
	p.deliver(t, v, message.New(1, false, true, uint16(message.MediaData), payload))

	want := append(append([]byte{}, codecConfig...), unit...)
	if gotCodecConfig != false {
		t.Fatalf("MediaData: OnFrame codecConfig flag = %v, want false", gotCodecConfig)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("MediaData: OnFrame data = %x, want %x", got, want)
	}

	out := p.next(t, testTimeout)
	if message.MediaTag(out.Message.MsgType) != message.MediaAck {
		t.Fatalf("msg type = %#x, want MediaAck", out.Message.MsgType)
	}
	var ack schema.Ack
	if err := ack.Unmarshal(out.Message.Payload); err != nil {
		t.Fatalf("Unmarshal Ack: %v", err)
	}
	if ack.Ack != 1 {
		t.Fatalf("Ack.Ack = %d, want 1", ack.Ack)
	}
}

func TestVideoMediaDataAcksEvenWithoutCodecConfig(t *testing.T) {
	p := newTestPair()
	_, v := NewVideoChannel(2, nil)

	timestamp := make([]byte, 8)
	unit := []byte{0x01}
	payload := append(append([]byte{}, timestamp...), unit...)
	p.deliver(t, v, message.New(2, false, true, uint16(message.MediaData), payload))

	out := p.next(t, testTimeout)
	var ack schema.Ack
	if err := ack.Unmarshal(out.Message.Payload); err != nil {
		t.Fatalf("Unmarshal Ack: %v", err)
	}
	if ack.Ack != 1 {
		t.Fatalf("Ack.Ack = %d, want 1", ack.Ack)
	}
}

func TestVideoSetupAndFocusHandshake(t *testing.T) {
	p := newTestPair()
	_, v := NewVideoChannel(3, nil)

	p.deliver(t, v, message.New(3, false, true, uint16(message.MediaSetupRequest), nil))
	out := p.next(t, testTimeout)
	if message.MediaTag(out.Message.MsgType) != message.MediaConfigResponse {
		t.Fatalf("msg type = %#x, want MediaConfigResponse", out.Message.MsgType)
	}
	var cfg schema.Config
	if err := cfg.Unmarshal(out.Message.Payload); err != nil {
		t.Fatalf("Unmarshal Config: %v", err)
	}
	if cfg.Status != schema.ConfigStatusHeadUnit {
		t.Fatalf("Config.Status = %v, want ConfigStatusHeadUnit", cfg.Status)
	}

	req := schema.VideoFocusRequestNotification{}
	data, err := req.Marshal()
	if err != nil {
		t.Fatalf("Marshal VideoFocusRequestNotification: %v", err)
	}
	p.deliver(t, v, message.New(3, false, true, uint16(message.MediaVideoFocusRequestNotification), data))
	out = p.next(t, testTimeout)
	if message.MediaTag(out.Message.MsgType) != message.MediaVideoFocusNotification {
		t.Fatalf("msg type = %#x, want MediaVideoFocusNotification", out.Message.MsgType)
	}
	var notif schema.VideoFocusNotification
	if err := notif.Unmarshal(out.Message.Payload); err != nil {
		t.Fatalf("Unmarshal VideoFocusNotification: %v", err)
	}
	if notif.Mode != schema.VideoFocusFocused {
		t.Fatalf("VideoFocusNotification.Mode = %v, want VideoFocusFocused", notif.Mode)
	}
}
