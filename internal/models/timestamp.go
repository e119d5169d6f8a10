package models

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Millis is a Unix timestamp in milliseconds. It is written as a BSON int64 and read back
// from any numeric type, a BSON date, or a date string, so older documents still decode.
type Millis int64

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (m *Millis) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeInt64:
		*m = Millis(rv.Int64())
	case bson.TypeInt32:
		*m = Millis(rv.Int32())
	case bson.TypeDouble:
		*m = Millis(rv.Double())
	case bson.TypeDateTime:
		*m = Millis(rv.DateTime())
	case bson.TypeTimestamp:
		sec, _ := rv.Timestamp()
		*m = Millis(int64(sec) * 1000)
	case bson.TypeString:
		return m.parse(rv.StringValue())
	case bson.TypeNull, bson.TypeUndefined:
		*m = 0
	default:
		return fmt.Errorf("cannot decode %s into createdAt", t)
	}
	return nil
}

func (m *Millis) parse(s string) error {
	if s == "" {
		*m = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*m = Millis(n)
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("cannot parse createdAt %q: %w", s, err)
	}
	*m = Millis(parsed.UnixMilli())
	return nil
}
