package schema

import "github.com/aaphost/aapcore/pkg/wire"

// SensorRequest starts a sensor's event stream.
type SensorRequest struct {
	Type SensorType
}

const sensorReqTagType = 0

func (s *SensorRequest) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return s.EncodeWithTag(w, wire.Anonymous()) })
}

func (s *SensorRequest) Unmarshal(data []byte) error {
	return unmarshalTop(data, s.DecodeFrom)
}

func (s *SensorRequest) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(sensorReqTagType), int64(s.Type)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (s *SensorRequest) DecodeFrom(r *wire.Reader) error {
	if err := r.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := r.Next(); err != nil {
			if r.IsEndOfContainer() {
				break
			}
			return err
		}
		if r.IsEndOfContainer() {
			break
		}
		if r.Tag().TagNumber() == sensorReqTagType {
			v, err := r.Int()
			if err != nil {
				return err
			}
			s.Type = SensorType(v)
		} else if err := r.Skip(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}

// SensorResponse answers a SensorRequest.
type SensorResponse struct {
	Status MessageStatus
}

const sensorRespTagStatus = 0

func (s *SensorResponse) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return s.EncodeWithTag(w, wire.Anonymous()) })
}

func (s *SensorResponse) Unmarshal(data []byte) error {
	return unmarshalTop(data, s.DecodeFrom)
}

func (s *SensorResponse) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(sensorRespTagStatus), int64(s.Status)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (s *SensorResponse) DecodeFrom(r *wire.Reader) error {
	if err := r.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := r.Next(); err != nil {
			if r.IsEndOfContainer() {
				break
			}
			return err
		}
		if r.IsEndOfContainer() {
			break
		}
		if r.Tag().TagNumber() == sensorRespTagStatus {
			v, err := r.Int()
			if err != nil {
				return err
			}
			s.Status = MessageStatus(v)
		} else if err := r.Skip(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}

// DrivingStatusData is the single-sensor-channel payload reporting the
// vehicle's current driving-restriction bitmask.
type DrivingStatusData struct {
	Status DrivingStatusValue
}

const drivingStatusTagStatus = 0

func (d *DrivingStatusData) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(drivingStatusTagStatus), int64(d.Status)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (d *DrivingStatusData) DecodeFrom(r *wire.Reader) error {
	if err := r.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := r.Next(); err != nil {
			if r.IsEndOfContainer() {
				break
			}
			return err
		}
		if r.IsEndOfContainer() {
			break
		}
		if r.Tag().TagNumber() == drivingStatusTagStatus {
			v, err := r.Int()
			if err != nil {
				return err
			}
			d.Status = DrivingStatusValue(v)
		} else if err := r.Skip(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}

// SensorBatch carries one or more sensor events in a single push on
// the sensor source channel. The reference head unit only ever
// populates DrivingStatus, advertising the vehicle as unrestricted.
type SensorBatch struct {
	DrivingStatus []DrivingStatusData
}

const sensorBatchTagDrivingStatus = 0

func (b *SensorBatch) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return b.EncodeWithTag(w, wire.Anonymous()) })
}

func (b *SensorBatch) Unmarshal(data []byte) error {
	return unmarshalTop(data, b.DecodeFrom)
}

func (b *SensorBatch) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.StartArray(wire.ContextTag(sensorBatchTagDrivingStatus)); err != nil {
		return err
	}
	for i := range b.DrivingStatus {
		if err := b.DrivingStatus[i].EncodeWithTag(w, wire.Anonymous()); err != nil {
			return err
		}
	}
	if err := w.EndContainer(); err != nil {
		return err
	}
	return w.EndContainer()
}

func (b *SensorBatch) DecodeFrom(r *wire.Reader) error {
	if err := r.EnterContainer(); err != nil {
		return err
	}
	for {
		if err := r.Next(); err != nil {
			if r.IsEndOfContainer() {
				break
			}
			return err
		}
		if r.IsEndOfContainer() {
			break
		}
		if r.Tag().TagNumber() != sensorBatchTagDrivingStatus {
			if err := r.Skip(); err != nil {
				return err
			}
			continue
		}
		if err := r.EnterContainer(); err != nil {
			return err
		}
		for {
			if err := r.Next(); err != nil {
				if r.IsEndOfContainer() {
					break
				}
				return err
			}
			if r.IsEndOfContainer() {
				break
			}
			var d DrivingStatusData
			if err := d.DecodeFrom(r); err != nil {
				return err
			}
			b.DrivingStatus = append(b.DrivingStatus, d)
		}
		if err := r.ExitContainer(); err != nil {
			return err
		}
	}
	return r.ExitContainer()
}
