package schema

import (
	"bytes"

	"github.com/aaphost/aapcore/pkg/wire"
)

// marshalTop encodes a single top-level element into its own buffer, the
// shape every schema message takes once it becomes a message.Message
// payload.
func marshalTop(encode func(w *wire.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	if err := encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unmarshalTop decodes a single top-level element from data.
func unmarshalTop(data []byte, decode func(r *wire.Reader) error) error {
	r := wire.NewReader(bytes.NewReader(data))
	if err := r.Next(); err != nil {
		return err
	}
	return decode(r)
}
