package schema

import "github.com/aaphost/aapcore/pkg/wire"

// Context tags for ServiceDiscoveryResponse.
const (
	discoTagMake                    = 0
	discoTagModel                   = 1
	discoTagYear                    = 2
	discoTagVehicleID               = 3
	discoTagLeftHandTraffic         = 4
	discoTagHeadUnitMake            = 5
	discoTagHeadUnitModel           = 6
	discoTagHeadUnitSoftwareBuild   = 7
	discoTagHeadUnitSoftwareVersion = 8
	discoTagCanPlayNativeMediaDuringVR = 9
	discoTagHideProjectedClock      = 10
	discoTagServices                = 11
)

// ServiceDiscoveryResponse answers a ServiceDiscoveryRequest with the
// vehicle's identity and the full catalogue of advertised channels.
type ServiceDiscoveryResponse struct {
	Make                    string
	Model                   string
	Year                    string
	VehicleID               string
	LeftHandTraffic         bool
	HeadUnitMake            string
	HeadUnitModel           string
	HeadUnitSoftwareBuild   string
	HeadUnitSoftwareVersion string
	CanPlayNativeMediaDuringVR bool
	HideProjectedClock      bool
	Services                []Service
}

// Marshal encodes r as a standalone wire-format message.
func (r *ServiceDiscoveryResponse) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return r.EncodeWithTag(w, wire.Anonymous()) })
}

// Unmarshal decodes r from a standalone wire-format message.
func (r *ServiceDiscoveryResponse) Unmarshal(data []byte) error {
	return unmarshalTop(data, r.DecodeFrom)
}

func (r *ServiceDiscoveryResponse) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutString(wire.ContextTag(discoTagMake), r.Make); err != nil {
		return err
	}
	if err := w.PutString(wire.ContextTag(discoTagModel), r.Model); err != nil {
		return err
	}
	if err := w.PutString(wire.ContextTag(discoTagYear), r.Year); err != nil {
		return err
	}
	if err := w.PutString(wire.ContextTag(discoTagVehicleID), r.VehicleID); err != nil {
		return err
	}
	if err := w.PutBool(wire.ContextTag(discoTagLeftHandTraffic), r.LeftHandTraffic); err != nil {
		return err
	}
	if err := w.PutString(wire.ContextTag(discoTagHeadUnitMake), r.HeadUnitMake); err != nil {
		return err
	}
	if err := w.PutString(wire.ContextTag(discoTagHeadUnitModel), r.HeadUnitModel); err != nil {
		return err
	}
	if err := w.PutString(wire.ContextTag(discoTagHeadUnitSoftwareBuild), r.HeadUnitSoftwareBuild); err != nil {
		return err
	}
	if err := w.PutString(wire.ContextTag(discoTagHeadUnitSoftwareVersion), r.HeadUnitSoftwareVersion); err != nil {
		return err
	}
	if err := w.PutBool(wire.ContextTag(discoTagCanPlayNativeMediaDuringVR), r.CanPlayNativeMediaDuringVR); err != nil {
		return err
	}
	if err := w.PutBool(wire.ContextTag(discoTagHideProjectedClock), r.HideProjectedClock); err != nil {
		return err
	}
	if err := w.StartArray(wire.ContextTag(discoTagServices)); err != nil {
		return err
	}
	for i := range r.Services {
		if err := r.Services[i].EncodeWithTag(w, wire.Anonymous()); err != nil {
			return err
		}
	}
	if err := w.EndContainer(); err != nil {
		return err
	}
	return w.EndContainer()
}

func (r *ServiceDiscoveryResponse) Decode(rd *wire.Reader) error {
	if err := rd.Next(); err != nil {
		return err
	}
	return r.DecodeFrom(rd)
}

func (r *ServiceDiscoveryResponse) DecodeFrom(rd *wire.Reader) error {
	if err := rd.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := rd.Next(); err != nil {
			if rd.IsEndOfContainer() {
				break
			}
			return err
		}
		if rd.IsEndOfContainer() {
			break
		}
		tag := rd.Tag()
		switch tag.TagNumber() {
		case discoTagMake:
			v, err := rd.String()
			if err != nil {
				return err
			}
			r.Make = v
		case discoTagModel:
			v, err := rd.String()
			if err != nil {
				return err
			}
			r.Model = v
		case discoTagYear:
			v, err := rd.String()
			if err != nil {
				return err
			}
			r.Year = v
		case discoTagVehicleID:
			v, err := rd.String()
			if err != nil {
				return err
			}
			r.VehicleID = v
		case discoTagLeftHandTraffic:
			v, err := rd.Bool()
			if err != nil {
				return err
			}
			r.LeftHandTraffic = v
		case discoTagHeadUnitMake:
			v, err := rd.String()
			if err != nil {
				return err
			}
			r.HeadUnitMake = v
		case discoTagHeadUnitModel:
			v, err := rd.String()
			if err != nil {
				return err
			}
			r.HeadUnitModel = v
		case discoTagHeadUnitSoftwareBuild:
			v, err := rd.String()
			if err != nil {
				return err
			}
			r.HeadUnitSoftwareBuild = v
		case discoTagHeadUnitSoftwareVersion:
			v, err := rd.String()
			if err != nil {
				return err
			}
			r.HeadUnitSoftwareVersion = v
		case discoTagCanPlayNativeMediaDuringVR:
			v, err := rd.Bool()
			if err != nil {
				return err
			}
			r.CanPlayNativeMediaDuringVR = v
		case discoTagHideProjectedClock:
			v, err := rd.Bool()
			if err != nil {
				return err
			}
			r.HideProjectedClock = v
		case discoTagServices:
			if err := rd.EnterContainer(); err != nil {
				return err
			}
			for {
				if err := rd.Next(); err != nil {
					if rd.IsEndOfContainer() {
						break
					}
					return err
				}
				if rd.IsEndOfContainer() {
					break
				}
				var s Service
				if err := s.DecodeFrom(rd); err != nil {
					return err
				}
				r.Services = append(r.Services, s)
			}
			if err := rd.ExitContainer(); err != nil {
				return err
			}
		default:
			if err := rd.Skip(); err != nil {
				return err
			}
		}
	}
	return rd.ExitContainer()
}

// Context tags for Service.
const (
	svcTagID                  = 0
	svcTagSensorSource        = 1
	svcTagMediaSink           = 2
	svcTagInputSource         = 3
	svcTagMediaSource         = 4
	svcTagMediaPlaybackStatus = 5
)

// Service advertises one channel's capabilities during discovery. At
// most one of the Sensor/MediaSink/InputSource/MediaSource/
// MediaPlaybackStatus fields is non-nil, matching which role the
// channel plays.
type Service struct {
	ID                  uint32
	SensorSource        *SensorSourceService
	MediaSink           *MediaSinkService
	InputSource         *InputSourceService
	MediaSource         *MediaSourceService
	MediaPlaybackStatus *MediaPlaybackStatusService
}

func (s *Service) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutUint(wire.ContextTag(svcTagID), uint64(s.ID)); err != nil {
		return err
	}
	if s.SensorSource != nil {
		if err := s.SensorSource.EncodeWithTag(w, wire.ContextTag(svcTagSensorSource)); err != nil {
			return err
		}
	}
	if s.MediaSink != nil {
		if err := s.MediaSink.EncodeWithTag(w, wire.ContextTag(svcTagMediaSink)); err != nil {
			return err
		}
	}
	if s.InputSource != nil {
		if err := s.InputSource.EncodeWithTag(w, wire.ContextTag(svcTagInputSource)); err != nil {
			return err
		}
	}
	if s.MediaSource != nil {
		if err := s.MediaSource.EncodeWithTag(w, wire.ContextTag(svcTagMediaSource)); err != nil {
			return err
		}
	}
	if s.MediaPlaybackStatus != nil {
		if err := w.StartStructure(wire.ContextTag(svcTagMediaPlaybackStatus)); err != nil {
			return err
		}
		if err := w.EndContainer(); err != nil {
			return err
		}
	}
	return w.EndContainer()
}

func (s *Service) DecodeFrom(rd *wire.Reader) error {
	if err := rd.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := rd.Next(); err != nil {
			if rd.IsEndOfContainer() {
				break
			}
			return err
		}
		if rd.IsEndOfContainer() {
			break
		}
		switch rd.Tag().TagNumber() {
		case svcTagID:
			v, err := rd.Uint()
			if err != nil {
				return err
			}
			s.ID = uint32(v)
		case svcTagSensorSource:
			var v SensorSourceService
			if err := v.DecodeFrom(rd); err != nil {
				return err
			}
			s.SensorSource = &v
		case svcTagMediaSink:
			var v MediaSinkService
			if err := v.DecodeFrom(rd); err != nil {
				return err
			}
			s.MediaSink = &v
		case svcTagInputSource:
			var v InputSourceService
			if err := v.DecodeFrom(rd); err != nil {
				return err
			}
			s.InputSource = &v
		case svcTagMediaSource:
			var v MediaSourceService
			if err := v.DecodeFrom(rd); err != nil {
				return err
			}
			s.MediaSource = &v
		case svcTagMediaPlaybackStatus:
			if err := rd.EnterContainer(); err != nil {
				return err
			}
			if err := rd.ExitContainer(); err != nil {
				return err
			}
			s.MediaPlaybackStatus = &MediaPlaybackStatusService{}
		default:
			if err := rd.Skip(); err != nil {
				return err
			}
		}
	}
	return rd.ExitContainer()
}

// SensorSourceService advertises the sensors a channel streams.
type SensorSourceService struct {
	Sensors []Sensor
}

const sensorSrcTagSensors = 0

func (s *SensorSourceService) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.StartArray(wire.ContextTag(sensorSrcTagSensors)); err != nil {
		return err
	}
	for i := range s.Sensors {
		if err := s.Sensors[i].EncodeWithTag(w, wire.Anonymous()); err != nil {
			return err
		}
	}
	if err := w.EndContainer(); err != nil {
		return err
	}
	return w.EndContainer()
}

func (s *SensorSourceService) DecodeFrom(rd *wire.Reader) error {
	if err := rd.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := rd.Next(); err != nil {
			if rd.IsEndOfContainer() {
				break
			}
			return err
		}
		if rd.IsEndOfContainer() {
			break
		}
		if rd.Tag().TagNumber() != sensorSrcTagSensors {
			if err := rd.Skip(); err != nil {
				return err
			}
			continue
		}
		if err := rd.EnterContainer(); err != nil {
			return err
		}
		for {
			if err := rd.Next(); err != nil {
				if rd.IsEndOfContainer() {
					break
				}
				return err
			}
			if rd.IsEndOfContainer() {
				break
			}
			var sensor Sensor
			if err := sensor.DecodeFrom(rd); err != nil {
				return err
			}
			s.Sensors = append(s.Sensors, sensor)
		}
		if err := rd.ExitContainer(); err != nil {
			return err
		}
	}
	return rd.ExitContainer()
}

// Sensor is a single advertised sensor type.
type Sensor struct {
	Type SensorType
}

const sensorTagType = 0

func (s *Sensor) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(sensorTagType), int64(s.Type)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (s *Sensor) DecodeFrom(rd *wire.Reader) error {
	if err := rd.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := rd.Next(); err != nil {
			if rd.IsEndOfContainer() {
				break
			}
			return err
		}
		if rd.IsEndOfContainer() {
			break
		}
		if rd.Tag().TagNumber() == sensorTagType {
			v, err := rd.Int()
			if err != nil {
				return err
			}
			s.Type = SensorType(v)
		} else if err := rd.Skip(); err != nil {
			return err
		}
	}
	return rd.ExitContainer()
}

// MediaSinkService advertises a video or audio sink channel.
type MediaSinkService struct {
	AvailableType        MediaCodecType
	AudioType            AudioStreamType
	AvailableWhileInCall bool
	VideoConfigs         []VideoConfiguration
	AudioConfigs         []AudioConfiguration
}

const (
	mediaSinkTagAvailableType        = 0
	mediaSinkTagAudioType            = 1
	mediaSinkTagAvailableWhileInCall = 2
	mediaSinkTagVideoConfigs         = 3
	mediaSinkTagAudioConfigs         = 4
)

func (m *MediaSinkService) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(mediaSinkTagAvailableType), int64(m.AvailableType)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(mediaSinkTagAudioType), int64(m.AudioType)); err != nil {
		return err
	}
	if err := w.PutBool(wire.ContextTag(mediaSinkTagAvailableWhileInCall), m.AvailableWhileInCall); err != nil {
		return err
	}
	if len(m.VideoConfigs) > 0 {
		if err := w.StartArray(wire.ContextTag(mediaSinkTagVideoConfigs)); err != nil {
			return err
		}
		for i := range m.VideoConfigs {
			if err := m.VideoConfigs[i].EncodeWithTag(w, wire.Anonymous()); err != nil {
				return err
			}
		}
		if err := w.EndContainer(); err != nil {
			return err
		}
	}
	if len(m.AudioConfigs) > 0 {
		if err := w.StartArray(wire.ContextTag(mediaSinkTagAudioConfigs)); err != nil {
			return err
		}
		for i := range m.AudioConfigs {
			if err := m.AudioConfigs[i].EncodeWithTag(w, wire.Anonymous()); err != nil {
				return err
			}
		}
		if err := w.EndContainer(); err != nil {
			return err
		}
	}
	return w.EndContainer()
}

func (m *MediaSinkService) DecodeFrom(rd *wire.Reader) error {
	if err := rd.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := rd.Next(); err != nil {
			if rd.IsEndOfContainer() {
				break
			}
			return err
		}
		if rd.IsEndOfContainer() {
			break
		}
		switch rd.Tag().TagNumber() {
		case mediaSinkTagAvailableType:
			v, err := rd.Int()
			if err != nil {
				return err
			}
			m.AvailableType = MediaCodecType(v)
		case mediaSinkTagAudioType:
			v, err := rd.Int()
			if err != nil {
				return err
			}
			m.AudioType = AudioStreamType(v)
		case mediaSinkTagAvailableWhileInCall:
			v, err := rd.Bool()
			if err != nil {
				return err
			}
			m.AvailableWhileInCall = v
		case mediaSinkTagVideoConfigs:
			if err := rd.EnterContainer(); err != nil {
				return err
			}
			for {
				if err := rd.Next(); err != nil {
					if rd.IsEndOfContainer() {
						break
					}
					return err
				}
				if rd.IsEndOfContainer() {
					break
				}
				var vc VideoConfiguration
				if err := vc.DecodeFrom(rd); err != nil {
					return err
				}
				m.VideoConfigs = append(m.VideoConfigs, vc)
			}
			if err := rd.ExitContainer(); err != nil {
				return err
			}
		case mediaSinkTagAudioConfigs:
			if err := rd.EnterContainer(); err != nil {
				return err
			}
			for {
				if err := rd.Next(); err != nil {
					if rd.IsEndOfContainer() {
						break
					}
					return err
				}
				if rd.IsEndOfContainer() {
					break
				}
				var ac AudioConfiguration
				if err := ac.DecodeFrom(rd); err != nil {
					return err
				}
				m.AudioConfigs = append(m.AudioConfigs, ac)
			}
			if err := rd.ExitContainer(); err != nil {
				return err
			}
		default:
			if err := rd.Skip(); err != nil {
				return err
			}
		}
	}
	return rd.ExitContainer()
}

// VideoConfiguration describes one supported video mode.
type VideoConfiguration struct {
	MarginHeight    int32
	MarginWidth     int32
	CodecResolution VideoCodecResolutionType
	FrameRate       VideoFrameRateType
	Density         int32
}

const (
	videoCfgTagMarginHeight    = 0
	videoCfgTagMarginWidth     = 1
	videoCfgTagCodecResolution = 2
	videoCfgTagFrameRate       = 3
	videoCfgTagDensity         = 4
)

func (v *VideoConfiguration) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(videoCfgTagMarginHeight), int64(v.MarginHeight)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(videoCfgTagMarginWidth), int64(v.MarginWidth)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(videoCfgTagCodecResolution), int64(v.CodecResolution)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(videoCfgTagFrameRate), int64(v.FrameRate)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(videoCfgTagDensity), int64(v.Density)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (v *VideoConfiguration) DecodeFrom(rd *wire.Reader) error {
	if err := rd.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := rd.Next(); err != nil {
			if rd.IsEndOfContainer() {
				break
			}
			return err
		}
		if rd.IsEndOfContainer() {
			break
		}
		val, err := rd.Int()
		if err != nil {
			return err
		}
		switch rd.Tag().TagNumber() {
		case videoCfgTagMarginHeight:
			v.MarginHeight = int32(val)
		case videoCfgTagMarginWidth:
			v.MarginWidth = int32(val)
		case videoCfgTagCodecResolution:
			v.CodecResolution = VideoCodecResolutionType(val)
		case videoCfgTagFrameRate:
			v.FrameRate = VideoFrameRateType(val)
		case videoCfgTagDensity:
			v.Density = int32(val)
		}
	}
	return rd.ExitContainer()
}

// AudioConfiguration describes one supported PCM audio mode.
type AudioConfiguration struct {
	SampleRate       int32
	NumberOfBits     int32
	NumberOfChannels int32
}

const (
	audioCfgTagSampleRate       = 0
	audioCfgTagNumberOfBits     = 1
	audioCfgTagNumberOfChannels = 2
)

func (a *AudioConfiguration) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(audioCfgTagSampleRate), int64(a.SampleRate)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(audioCfgTagNumberOfBits), int64(a.NumberOfBits)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(audioCfgTagNumberOfChannels), int64(a.NumberOfChannels)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (a *AudioConfiguration) DecodeFrom(rd *wire.Reader) error {
	if err := rd.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := rd.Next(); err != nil {
			if rd.IsEndOfContainer() {
				break
			}
			return err
		}
		if rd.IsEndOfContainer() {
			break
		}
		val, err := rd.Int()
		if err != nil {
			return err
		}
		switch rd.Tag().TagNumber() {
		case audioCfgTagSampleRate:
			a.SampleRate = int32(val)
		case audioCfgTagNumberOfBits:
			a.NumberOfBits = int32(val)
		case audioCfgTagNumberOfChannels:
			a.NumberOfChannels = int32(val)
		}
	}
	return rd.ExitContainer()
}

// InputSourceService advertises the keycodes a channel accepts.
type InputSourceService struct {
	KeycodesSupported []uint32
}

const inputSrcTagKeycodes = 0

func (s *InputSourceService) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.StartArray(wire.ContextTag(inputSrcTagKeycodes)); err != nil {
		return err
	}
	for _, kc := range s.KeycodesSupported {
		if err := w.PutUint(wire.Anonymous(), uint64(kc)); err != nil {
			return err
		}
	}
	if err := w.EndContainer(); err != nil {
		return err
	}
	return w.EndContainer()
}

func (s *InputSourceService) DecodeFrom(rd *wire.Reader) error {
	if err := rd.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := rd.Next(); err != nil {
			if rd.IsEndOfContainer() {
				break
			}
			return err
		}
		if rd.IsEndOfContainer() {
			break
		}
		if rd.Tag().TagNumber() != inputSrcTagKeycodes {
			if err := rd.Skip(); err != nil {
				return err
			}
			continue
		}
		if err := rd.EnterContainer(); err != nil {
			return err
		}
		for {
			if err := rd.Next(); err != nil {
				if rd.IsEndOfContainer() {
					break
				}
				return err
			}
			if rd.IsEndOfContainer() {
				break
			}
			v, err := rd.Uint()
			if err != nil {
				return err
			}
			s.KeycodesSupported = append(s.KeycodesSupported, uint32(v))
		}
		if err := rd.ExitContainer(); err != nil {
			return err
		}
	}
	return rd.ExitContainer()
}

// MediaSourceService advertises the microphone channel's PCM format.
type MediaSourceService struct {
	Type        MediaCodecType
	AudioConfig AudioConfiguration
}

const (
	mediaSrcTagType        = 0
	mediaSrcTagAudioConfig = 1
)

func (m *MediaSourceService) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(mediaSrcTagType), int64(m.Type)); err != nil {
		return err
	}
	if err := m.AudioConfig.EncodeWithTag(w, wire.ContextTag(mediaSrcTagAudioConfig)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (m *MediaSourceService) DecodeFrom(rd *wire.Reader) error {
	if err := rd.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := rd.Next(); err != nil {
			if rd.IsEndOfContainer() {
				break
			}
			return err
		}
		if rd.IsEndOfContainer() {
			break
		}
		switch rd.Tag().TagNumber() {
		case mediaSrcTagType:
			v, err := rd.Int()
			if err != nil {
				return err
			}
			m.Type = MediaCodecType(v)
		case mediaSrcTagAudioConfig:
			if err := m.AudioConfig.DecodeFrom(rd); err != nil {
				return err
			}
		default:
			if err := rd.Skip(); err != nil {
				return err
			}
		}
	}
	return rd.ExitContainer()
}

// MediaPlaybackStatusService is an empty marker: its presence on a
// Service is the entire advertisement.
type MediaPlaybackStatusService struct{}
