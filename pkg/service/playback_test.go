package service

import (
	"testing"

	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

func TestPlaybackStatusAndMetaDataCallbacks(t *testing.T) {
	p := newTestPair()

	var gotStatus schema.MediaPlaybackStatus
	var gotMeta schema.MediaMetaData
	statusCalled, metaCalled := false, false
	pb := &Playback{
		ChannelID: 8,
		OnStatus: func(status schema.MediaPlaybackStatus) {
			statusCalled = true
			gotStatus = status
		},
		OnMeta: func(meta schema.MediaMetaData) {
			metaCalled = true
			gotMeta = meta
		},
	}

	status := schema.MediaPlaybackStatus{State: 2, Position: 1000, Shuffle: true, Repeat: 1}
	data, err := status.Marshal()
	if err != nil {
		t.Fatalf("Marshal MediaPlaybackStatus: %v", err)
	}
	p.deliver(t, pb, message.New(8, false, true, uint16(message.PlaybackMediaPlaybackStatus), data))
	if !statusCalled {
		t.Fatal("OnStatus not called")
	}
	if gotStatus != status {
		t.Fatalf("OnStatus got %+v, want %+v", gotStatus, status)
	}

	meta := schema.MediaMetaData{Song: "a", Artist: "b", Album: "c"}
	data, err = meta.Marshal()
	if err != nil {
		t.Fatalf("Marshal MediaMetaData: %v", err)
	}
	p.deliver(t, pb, message.New(8, false, true, uint16(message.PlaybackMediaPlaybackMetaData), data))
	if !metaCalled {
		t.Fatal("OnMeta not called")
	}
	if gotMeta != meta {
		t.Fatalf("OnMeta got %+v, want %+v", gotMeta, meta)
	}
}

func TestPlaybackNilCallbacksDoNotPanic(t *testing.T) {
	p := newTestPair()
	pb := &Playback{ChannelID: 9}

	status := schema.MediaPlaybackStatus{State: 1}
	data, err := status.Marshal()
	if err != nil {
		t.Fatalf("Marshal MediaPlaybackStatus: %v", err)
	}
	p.deliver(t, pb, message.New(9, false, true, uint16(message.PlaybackMediaPlaybackStatus), data))
}
