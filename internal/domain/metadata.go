package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

const (
	MaxMetadataEntries = 32
	MaxMetadataKeyLen  = 64
	MaxMetadataStrLen  = 512
)

type MetaKind uint8

const (
	MetaString MetaKind = iota + 1
	MetaInt
	MetaBool
)

// MetaValue holds exactly one of a string, an int64 or a bool.
type MetaValue struct {
	kind MetaKind
	s    string
	i    int64
	b    bool
}

func StringValue(s string) MetaValue { return MetaValue{kind: MetaString, s: s} }
func IntValue(i int64) MetaValue     { return MetaValue{kind: MetaInt, i: i} }
func BoolValue(b bool) MetaValue     { return MetaValue{kind: MetaBool, b: b} }

func (v MetaValue) Kind() MetaKind { return v.kind }

func (v MetaValue) String() string {
	switch v.kind {
	case MetaString:
		return v.s
	case MetaInt:
		return strconv.FormatInt(v.i, 10)
	case MetaBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

func (v MetaValue) Int() (int64, bool)  { return v.i, v.kind == MetaInt }
func (v MetaValue) Bool() (bool, bool)  { return v.b, v.kind == MetaBool }
func (v MetaValue) Str() (string, bool) { return v.s, v.kind == MetaString }

func (v MetaValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case MetaString:
		return json.Marshal(v.s)
	case MetaInt:
		return json.Marshal(v.i)
	case MetaBool:
		return json.Marshal(v.b)
	}
	return nil, errors.New("metadata value has no kind")
}

func (v *MetaValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty metadata value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	default:
		i, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("metadata value must be a string, integer or boolean")
		}
		*v = IntValue(i)
	}
	return nil
}

type Metadata map[string]MetaValue

func (m Metadata) Validate() error {
	if len(m) > MaxMetadataEntries {
		return fmt.Errorf("metadata must not have more than %d entries", MaxMetadataEntries)
	}
	for k, v := range m {
		if k == "" || len(k) > MaxMetadataKeyLen {
			return fmt.Errorf("metadata keys must be 1-%d characters", MaxMetadataKeyLen)
		}
		if v.kind == 0 {
			return fmt.Errorf("metadata %q has no value", k)
		}
		if s, ok := v.Str(); ok && len(s) > MaxMetadataStrLen {
			return fmt.Errorf("metadata %q is longer than %d characters", k, MaxMetadataStrLen)
		}
	}
	return nil
}
