package schema

// These enums mirror the shape of the service-discovery and media
// schema fragments the reference head unit exchanges with the phone.
// The numeric values are internal to this module (see DESIGN.md): the
// real wire-format schema is explicitly out of scope, so there is no
// external definition to match byte-for-byte against.

type SensorType int32

const (
	SensorTypeUnknown       SensorType = 0
	SensorTypeDrivingStatus SensorType = 1
)

type AudioStreamType int32

const (
	AudioStreamNone   AudioStreamType = 0
	AudioStreamMedia  AudioStreamType = 1
	AudioStreamSpeech AudioStreamType = 2
	AudioStreamSystem AudioStreamType = 3
)

type MediaCodecType int32

const (
	MediaCodecUnknown        MediaCodecType = 0
	MediaCodecAudioPCM       MediaCodecType = 1
	MediaCodecVideoH264BP    MediaCodecType = 2
)

type VideoCodecResolutionType int32

const (
	VideoResolution800x480  VideoCodecResolutionType = 0
	VideoResolution1280x720 VideoCodecResolutionType = 1
	VideoResolution1920x1080 VideoCodecResolutionType = 2
)

type VideoFrameRateType int32

const (
	VideoFrameRate30 VideoFrameRateType = 0
	VideoFrameRate60 VideoFrameRateType = 1
)

type AudioFocusRequestType int32

const (
	AudioFocusRequestNone                AudioFocusRequestType = 0
	AudioFocusRequestGain                AudioFocusRequestType = 1
	AudioFocusRequestGainTransient       AudioFocusRequestType = 2
	AudioFocusRequestGainTransientMayDuck AudioFocusRequestType = 3
	AudioFocusRequestRelease             AudioFocusRequestType = 4
)

type AudioFocusStateType int32

const (
	AudioFocusStateNone                  AudioFocusStateType = 0
	AudioFocusStateGain                  AudioFocusStateType = 1
	AudioFocusStateGainTransient         AudioFocusStateType = 2
	AudioFocusStateLossTransientCanDuck  AudioFocusStateType = 3
	AudioFocusStateLoss                  AudioFocusStateType = 4
)

type ConfigStatus int32

const (
	ConfigStatusWaiting ConfigStatus = 0
	ConfigStatusHeadUnit ConfigStatus = 1
)

type VideoFocusMode int32

const (
	VideoFocusNone     VideoFocusMode = 0
	VideoFocusFocused  VideoFocusMode = 1
	VideoFocusUnfocused VideoFocusMode = 2
)

// MessageStatus is the generic status code carried by most xxxResponse
// messages.
type MessageStatus int32

const (
	MessageStatusOk       MessageStatus = 0
	MessageStatusFail     MessageStatus = 1
)

type DrivingStatusValue int32

const (
	DrivingStatusUnrestricted   DrivingStatusValue = 0
	DrivingStatusNoVideo        DrivingStatusValue = 1
	DrivingStatusNoKeyboard     DrivingStatusValue = 2
	DrivingStatusLimitedMessage DrivingStatusValue = 4
)
