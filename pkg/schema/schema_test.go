package schema

import (
	"reflect"
	"testing"

	"github.com/aaphost/aapcore/pkg/wire"
)

func TestServiceDiscoveryResponseRoundtrip(t *testing.T) {
	want := ServiceDiscoveryResponse{
		Make:                  "aaphost",
		Model:                 "head-unit",
		Year:                  "2024",
		VehicleID:             "0001",
		HeadUnitMake:          "aaphost",
		HeadUnitModel:         "core",
		HeadUnitSoftwareBuild: "1",
		HeadUnitSoftwareVersion: "0.1.0",
		Services: []Service{
			{ID: 1, SensorSource: &SensorSourceService{Sensors: []Sensor{{Type: SensorTypeDrivingStatus}}}},
			{ID: 2, MediaSink: &MediaSinkService{
				AvailableType: MediaCodecVideoH264BP,
				AudioType:     AudioStreamNone,
				VideoConfigs: []VideoConfiguration{
					{CodecResolution: VideoResolution1280x720, FrameRate: VideoFrameRate30, Density: 216},
				},
			}},
			{ID: 3, InputSource: &InputSourceService{KeycodesSupported: []uint32{1, 2, 3}}},
			{ID: 8, MediaPlaybackStatus: &MediaPlaybackStatusService{}},
		},
	}

	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got ServiceDiscoveryResponse
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestAudioFocusRoundtrip(t *testing.T) {
	tests := []struct {
		name string
		req  AudioFocusRequestNotification
	}{
		{name: "gain", req: AudioFocusRequestNotification{FocusType: AudioFocusRequestGain}},
		{name: "release", req: AudioFocusRequestNotification{FocusType: AudioFocusRequestRelease}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.req.Marshal()
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var got AudioFocusRequestNotification
			if err := got.Unmarshal(data); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got != tt.req {
				t.Fatalf("got %+v, want %+v", got, tt.req)
			}
		})
	}

	notif := AudioFocusNotification{FocusState: AudioFocusStateGain, Unsolicited: true}
	data, err := notif.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var gotNotif AudioFocusNotification
	if err := gotNotif.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if gotNotif != notif {
		t.Fatalf("got %+v, want %+v", gotNotif, notif)
	}
}

func TestConfigRoundtrip(t *testing.T) {
	want := Config{Status: ConfigStatusHeadUnit, MaxUnacked: 1, ConfigurationIndices: []int32{0}}
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Config
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestAckRoundtrip(t *testing.T) {
	want := Ack{SessionID: 7, Ack: 4096}
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Ack
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestKeyBindingRoundtrip(t *testing.T) {
	req := KeyBindingRequest{Scancodes: []int32{30, 31, 32}}
	data, err := req.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var gotReq KeyBindingRequest
	if err := gotReq.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(req, gotReq) {
		t.Fatalf("got %+v, want %+v", gotReq, req)
	}

	resp := BindingResponse{Status: MessageStatusOk}
	data, err = resp.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var gotResp BindingResponse
	if err := gotResp.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if gotResp != resp {
		t.Fatalf("got %+v, want %+v", gotResp, resp)
	}
}

func TestInputReportRoundtrip(t *testing.T) {
	want := InputReport{
		Timestamp: 123456789,
		KeyEvent: &KeyEvent{Keys: []Key{
			{Down: true, Keycode: 4},
			{Down: false, Keycode: 4},
		}},
	}
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got InputReport
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestInputReportRejectsMissingTimestamp(t *testing.T) {
	data, err := marshalTop(func(w *wire.Writer) error {
		if err := w.StartStructure(wire.Anonymous()); err != nil {
			return err
		}
		return w.EndContainer()
	})
	if err != nil {
		t.Fatalf("marshalTop: %v", err)
	}
	var ir InputReport
	if err := ir.Unmarshal(data); err == nil {
		t.Fatal("expected error decoding InputReport with no timestamp")
	}
}

func TestSensorBatchRoundtrip(t *testing.T) {
	want := SensorBatch{DrivingStatus: []DrivingStatusData{{Status: DrivingStatusUnrestricted}}}
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got SensorBatch
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestMediaMetaDataOmitsEmptyFields(t *testing.T) {
	want := MediaMetaData{Song: "Track", Artist: "Artist"}
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got MediaMetaData
	if err := got.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
