package schema

import "github.com/aaphost/aapcore/pkg/wire"

// MediaPlaybackStatus reports the phone's current playback state on
// the media-playback-status channel. The head unit decodes it and
// passes it to service.Playback's OnStatus callback, if one is set.
type MediaPlaybackStatus struct {
	State    int32
	Position int64
	Shuffle  bool
	Repeat   int32
}

const (
	playbackStatusTagState    = 0
	playbackStatusTagPosition = 1
	playbackStatusTagShuffle  = 2
	playbackStatusTagRepeat   = 3
)

func (p *MediaPlaybackStatus) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return p.EncodeWithTag(w, wire.Anonymous()) })
}

func (p *MediaPlaybackStatus) Unmarshal(data []byte) error {
	return unmarshalTop(data, p.DecodeFrom)
}

func (p *MediaPlaybackStatus) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(playbackStatusTagState), int64(p.State)); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(playbackStatusTagPosition), p.Position); err != nil {
		return err
	}
	if err := w.PutBool(wire.ContextTag(playbackStatusTagShuffle), p.Shuffle); err != nil {
		return err
	}
	if err := w.PutInt(wire.ContextTag(playbackStatusTagRepeat), int64(p.Repeat)); err != nil {
		return err
	}
	return w.EndContainer()
}

func (p *MediaPlaybackStatus) DecodeFrom(r *wire.Reader) error {
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
		switch r.Tag().TagNumber() {
		case playbackStatusTagState:
			v, err := r.Int()
			if err != nil {
				return err
			}
			p.State = int32(v)
		case playbackStatusTagPosition:
			v, err := r.Int()
			if err != nil {
				return err
			}
			p.Position = v
		case playbackStatusTagShuffle:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			p.Shuffle = v
		case playbackStatusTagRepeat:
			v, err := r.Int()
			if err != nil {
				return err
			}
			p.Repeat = int32(v)
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}
	return r.ExitContainer()
}

// MediaMetaData carries the currently-playing track's descriptive
// fields. Every field is optional: the phone sends only what changed.
type MediaMetaData struct {
	Song   string
	Artist string
	Album  string
}

const (
	metaDataTagSong   = 0
	metaDataTagArtist = 1
	metaDataTagAlbum  = 2
)

func (m *MediaMetaData) Marshal() ([]byte, error) {
	return marshalTop(func(w *wire.Writer) error { return m.EncodeWithTag(w, wire.Anonymous()) })
}

func (m *MediaMetaData) Unmarshal(data []byte) error {
	return unmarshalTop(data, m.DecodeFrom)
}

func (m *MediaMetaData) EncodeWithTag(w *wire.Writer, tag wire.Tag) error {
	if err := w.StartStructure(tag); err != nil {
		return err
	}
	if m.Song != "" {
		if err := w.PutString(wire.ContextTag(metaDataTagSong), m.Song); err != nil {
			return err
		}
	}
	if m.Artist != "" {
		if err := w.PutString(wire.ContextTag(metaDataTagArtist), m.Artist); err != nil {
			return err
		}
	}
	if m.Album != "" {
		if err := w.PutString(wire.ContextTag(metaDataTagAlbum), m.Album); err != nil {
			return err
		}
	}
	return w.EndContainer()
}

func (m *MediaMetaData) DecodeFrom(r *wire.Reader) error {
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
		switch r.Tag().TagNumber() {
		case metaDataTagSong:
			v, err := r.String()
			if err != nil {
				return err
			}
			m.Song = v
		case metaDataTagArtist:
			v, err := r.String()
			if err != nil {
				return err
			}
			m.Artist = v
		case metaDataTagAlbum:
			v, err := r.String()
			if err != nil {
				return err
			}
			m.Album = v
		default:
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}
	return r.ExitContainer()
}
