package message

// ControlTag enumerates the channel-0 (control) msg_type values.
type ControlTag uint16

const (
	ControlVersionRequest               ControlTag = 0x01
	ControlVersionResponse              ControlTag = 0x02
	ControlHandshake                    ControlTag = 0x03
	ControlHandshakeOk                  ControlTag = 0x04
	ControlServiceDiscoveryRequest      ControlTag = 0x05
	ControlServiceDiscoveryResponse     ControlTag = 0x06
	ControlChannelOpenRequest           ControlTag = 0x07
	ControlChannelOpenResponse          ControlTag = 0x08
	ControlChannelCloseNotification     ControlTag = 0x09
	ControlPingRequest                  ControlTag = 0x0B
	ControlPingResponse                 ControlTag = 0x0C
	ControlNavFocusRequestNotification  ControlTag = 0x0D
	ControlNavFocusNotification         ControlTag = 0x0E
	ControlByeByeRequest                ControlTag = 0x0F
	ControlByeByeResponse               ControlTag = 0x10
	ControlVoiceSessionNotification     ControlTag = 0x11
	ControlAudioFocusRequestNotification ControlTag = 0x12
	ControlAudioFocusNotification       ControlTag = 0x13
	ControlCarConnectedDevicesRequest   ControlTag = 0x20
	ControlCarConnectedDevicesResponse  ControlTag = 0x21
	ControlUserSwitchRequest            ControlTag = 0x22
	ControlBatteryStatusNotification    ControlTag = 0x23
	ControlCallAvailabilityStatus       ControlTag = 0x24
	ControlUserSwitchResponse           ControlTag = 0x25
	ControlServiceDiscoveryUpdate       ControlTag = 0x26
	ControlUnexpectedMessage            ControlTag = 0xFF
	ControlFramingError                 ControlTag = 0xFFFF
)

var controlTagNames = map[ControlTag]string{
	ControlVersionRequest:               "VersionRequest",
	ControlVersionResponse:              "VersionResponse",
	ControlHandshake:                    "Handshake",
	ControlHandshakeOk:                  "HandshakeOk",
	ControlServiceDiscoveryRequest:      "ServiceDiscoveryRequest",
	ControlServiceDiscoveryResponse:     "ServiceDiscoveryResponse",
	ControlChannelOpenRequest:           "ChannelOpenRequest",
	ControlChannelOpenResponse:          "ChannelOpenResponse",
	ControlChannelCloseNotification:     "ChannelCloseNotification",
	ControlPingRequest:                  "PingRequest",
	ControlPingResponse:                 "PingResponse",
	ControlNavFocusRequestNotification:  "NavFocusRequestNotification",
	ControlNavFocusNotification:         "NavFocusNotification",
	ControlByeByeRequest:                "ByeByeRequest",
	ControlByeByeResponse:               "ByeByeResponse",
	ControlVoiceSessionNotification:     "VoiceSessionNotification",
	ControlAudioFocusRequestNotification: "AudioFocusRequestNotification",
	ControlAudioFocusNotification:       "AudioFocusNotification",
	ControlCarConnectedDevicesRequest:   "CarConnectedDevicesRequest",
	ControlCarConnectedDevicesResponse:  "CarConnectedDevicesResponse",
	ControlUserSwitchRequest:            "UserSwitchRequest",
	ControlBatteryStatusNotification:    "BatteryStatusNotification",
	ControlCallAvailabilityStatus:       "CallAvailabilityStatus",
	ControlUserSwitchResponse:           "UserSwitchResponse",
	ControlServiceDiscoveryUpdate:       "ServiceDiscoveryUpdate",
	ControlUnexpectedMessage:            "UnexpectedMessage",
	ControlFramingError:                 "FramingError",
}

func (t ControlTag) String() string {
	if s, ok := controlTagNames[t]; ok {
		return s
	}
	return "Unknown"
}

// Recognized reports whether t has a name in the control enum. An
// unrecognized tag on the control channel is a SchemaError: logged and
// dropped, never fatal.
func (t ControlTag) Recognized() bool {
	_, ok := controlTagNames[t]
	return ok
}

// MediaTag enumerates msg_type values shared by the video sink and the
// three audio sinks (speech/system/media).
type MediaTag uint16

const (
	MediaData                      MediaTag = 0x00
	MediaCodecData                 MediaTag = 0x01
	MediaSetupRequest               MediaTag = 0x8000
	MediaStartRequest               MediaTag = 0x8001
	MediaStopRequest                MediaTag = 0x8002
	MediaConfigResponse              MediaTag = 0x8003
	MediaAck                        MediaTag = 0x8004
	MediaMicRequest                  MediaTag = 0x8005
	MediaMicResponse                 MediaTag = 0x8006
	MediaVideoFocusRequestNotification MediaTag = 0x8007
	MediaVideoFocusNotification      MediaTag = 0x8008
)

var mediaTagNames = map[MediaTag]string{
	MediaData:                       "MediaData",
	MediaCodecData:                  "CodecData",
	MediaSetupRequest:               "SetupRequest",
	MediaStartRequest:               "StartRequest",
	MediaStopRequest:                "StopRequest",
	MediaConfigResponse:             "ConfigResponse",
	MediaAck:                        "Ack",
	MediaMicRequest:                 "MicRequest",
	MediaMicResponse:                "MicResponse",
	MediaVideoFocusRequestNotification: "VideoFocusRequestNotification",
	MediaVideoFocusNotification:     "VideoFocusNotification",
}

func (t MediaTag) String() string {
	if s, ok := mediaTagNames[t]; ok {
		return s
	}
	return "Unknown"
}

func (t MediaTag) Recognized() bool {
	_, ok := mediaTagNames[t]
	return ok
}

// InputTag enumerates the input channel's msg_type values.
type InputTag uint16

const (
	InputReport          InputTag = 0x8001
	InputBindingRequest  InputTag = 0x8002
	InputBindingResponse InputTag = 0x8003
)

var inputTagNames = map[InputTag]string{
	InputReport:          "InputReport",
	InputBindingRequest:  "BindingRequest",
	InputBindingResponse: "BindingResponse",
}

func (t InputTag) String() string {
	if s, ok := inputTagNames[t]; ok {
		return s
	}
	return "Unknown"
}

func (t InputTag) Recognized() bool {
	_, ok := inputTagNames[t]
	return ok
}

// SensorTag enumerates the sensor channel's msg_type values.
type SensorTag uint16

const (
	SensorStartRequest  SensorTag = 0x8001
	SensorStartResponse SensorTag = 0x8002
	SensorEvent         SensorTag = 0x8003
)

var sensorTagNames = map[SensorTag]string{
	SensorStartRequest:  "StartRequest",
	SensorStartResponse: "StartResponse",
	SensorEvent:         "Event",
}

func (t SensorTag) String() string {
	if s, ok := sensorTagNames[t]; ok {
		return s
	}
	return "Unknown"
}

func (t SensorTag) Recognized() bool {
	_, ok := sensorTagNames[t]
	return ok
}

// PlaybackTag enumerates the media playback status channel's msg_type
// values.
type PlaybackTag uint16

const (
	PlaybackMediaPlaybackStatus      PlaybackTag = 0x8001
	PlaybackMediaPlaybackStartResponse PlaybackTag = 0x8002
	PlaybackMediaPlaybackMetaData     PlaybackTag = 0x8003
)

var playbackTagNames = map[PlaybackTag]string{
	PlaybackMediaPlaybackStatus:       "MediaPlaybackStatus",
	PlaybackMediaPlaybackStartResponse: "MediaPlaybackStartResponse",
	PlaybackMediaPlaybackMetaData:     "MediaPlaybackMetaData",
}

func (t PlaybackTag) String() string {
	if s, ok := playbackTagNames[t]; ok {
		return s
	}
	return "Unknown"
}

func (t PlaybackTag) Recognized() bool {
	_, ok := playbackTagNames[t]
	return ok
}
