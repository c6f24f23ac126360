package dt

import (
	"bytes"
	"encoding/json"
	"iter"

	"github.com/vmihailenco/msgpack/v5"
)

// The containers encode as arrays, so that they can be embedded in
// larger json or msgpack documents. Decoding appends to the existing
// contents: values are added with PushBack (lists), Enqueue
// (queues), or pushed bottom-first (stacks), so a round trip
// reproduces an equal container. The whole array is decoded before
// anything is added, so a failed decode leaves the container
// unchanged. Lists must be constructed (with an ordering) before
// decoding into them.

var (
	_ json.Marshaler        = (*List[int])(nil)
	_ json.Unmarshaler      = (*List[int])(nil)
	_ msgpack.CustomEncoder = (*List[int])(nil)
	_ msgpack.CustomDecoder = (*List[int])(nil)
	_ json.Marshaler        = (*Queue[int])(nil)
	_ msgpack.CustomDecoder = (*Queue[int])(nil)
	_ json.Unmarshaler      = (*Stack[int])(nil)
	_ msgpack.CustomEncoder = (*Stack[int])(nil)
)

// MarshalJSON produces a JSON array representing the items in the
// list, front to back.
func (l *List[T]) MarshalJSON() ([]byte, error) { return marshalJSONSeq(l.Seq()) }

// UnmarshalJSON reads a JSON array and appends its values to the
// list.
func (l *List[T]) UnmarshalJSON(in []byte) error {
	l.less()
	vals, err := unmarshalJSONSlice[T](in)
	if err != nil {
		return err
	}
	l.Append(vals...)
	return nil
}

// EncodeMsgpack writes the list as a msgpack array, front to back.
func (l *List[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackSeq(enc, l.Len(), l.Seq())
}

// DecodeMsgpack reads a msgpack array and appends its values to the
// list.
func (l *List[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	l.less()
	vals, err := decodeMsgpackSlice[T](dec)
	if err != nil {
		return err
	}
	l.Append(vals...)
	return nil
}

// MarshalJSON produces a JSON array of the items, front first.
func (q *Queue[T]) MarshalJSON() ([]byte, error) { return marshalJSONSeq(q.Seq()) }

// UnmarshalJSON reads a JSON array and enqueues its values.
func (q *Queue[T]) UnmarshalJSON(in []byte) error {
	vals, err := unmarshalJSONSlice[T](in)
	if err != nil {
		return err
	}
	q.Enqueue(vals...)
	return nil
}

// EncodeMsgpack writes the queue as a msgpack array, front first.
func (q *Queue[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackSeq(enc, q.Len(), q.Seq())
}

// DecodeMsgpack reads a msgpack array and enqueues its values.
func (q *Queue[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	vals, err := decodeMsgpackSlice[T](dec)
	if err != nil {
		return err
	}
	q.Enqueue(vals...)
	return nil
}

// MarshalJSON produces a JSON array of the items, top first.
func (s *Stack[T]) MarshalJSON() ([]byte, error) { return marshalJSONSeq(s.Seq()) }

// UnmarshalJSON reads a JSON array, top first, and pushes its values
// onto the stack so that the first value of the array ends up on
// top.
func (s *Stack[T]) UnmarshalJSON(in []byte) error {
	vals, err := unmarshalJSONSlice[T](in)
	if err != nil {
		return err
	}
	s.Push(reverseSlice(vals)...)
	return nil
}

// EncodeMsgpack writes the stack as a msgpack array, top first.
func (s *Stack[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackSeq(enc, s.Len(), s.Seq())
}

// DecodeMsgpack reads a msgpack array, top first, and pushes its
// values so that the first value of the array ends up on top.
func (s *Stack[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	vals, err := decodeMsgpackSlice[T](dec)
	if err != nil {
		return err
	}
	s.Push(reverseSlice(vals)...)
	return nil
}

func marshalJSONSeq[T any](seq iter.Seq[T]) ([]byte, error) {
	buf := &bytes.Buffer{}
	_ = buf.WriteByte('[')

	first := true
	for v := range seq {
		if !first {
			_ = buf.WriteByte(',')
		}
		first = false

		e, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		_, _ = buf.Write(e)
	}
	_ = buf.WriteByte(']')

	return buf.Bytes(), nil
}

func unmarshalJSONSlice[T any](in []byte) ([]T, error) {
	rv := []json.RawMessage{}
	if err := json.Unmarshal(in, &rv); err != nil {
		return nil, err
	}

	out := make([]T, len(rv))
	for idx := range rv {
		if err := json.Unmarshal(rv[idx], &out[idx]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeMsgpackSeq[T any](enc *msgpack.Encoder, size int, seq iter.Seq[T]) error {
	if err := enc.EncodeArrayLen(size); err != nil {
		return err
	}
	for v := range seq {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func decodeMsgpackSlice[T any](dec *msgpack.Decoder) ([]T, error) {
	size, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}

	// a nil array decodes as -1
	out := make([]T, 0, max(size, 0))
	for i := 0; i < size; i++ {
		var val T
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}
