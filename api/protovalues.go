package api

import (
	"encoding/base64"
	"reflect"
	"strconv"

	"github.com/escrow-tf/steamweb/steamid"
	"github.com/rotisserie/eris"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	protobufTag        = "pb"
	protobufInputParam = "input_protobuf_encoded"
)

var steamIDType = reflect.TypeOf(steamid.SteamID{})

// MarshalProtobufInput encodes a parameter struct as the protobuf message a
// service interface method expects. Each present field needs a `pb` tag with
// its field number; nil pointers are skipped.
func MarshalProtobufInput(params any) ([]byte, error) {
	if isNilParams(params) {
		return nil, nil
	}

	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, eris.Errorf("protobuf input must be a struct, got %v", v.Kind())
	}

	var message []byte
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		value := v.Field(i)
		if value.Kind() == reflect.Ptr {
			if value.IsNil() {
				continue
			}
			value = value.Elem()
		}

		tag := field.Tag.Get(protobufTag)
		if tag == "" || tag == "-" {
			return nil, eris.Errorf("field %s has no protobuf field number", field.Name)
		}
		number, err := strconv.ParseInt(tag, 10, 32)
		if err != nil || !protowire.Number(number).IsValid() {
			return nil, eris.Errorf("field %s has invalid protobuf field number %q", field.Name, tag)
		}

		message, err = appendProtobufField(message, protowire.Number(number), value)
		if err != nil {
			return nil, eris.Wrapf(err, "couldn't encode field %s", field.Name)
		}
	}

	return message, nil
}

func appendProtobufField(b []byte, number protowire.Number, value reflect.Value) ([]byte, error) {
	if value.Type() == steamIDType {
		b = protowire.AppendTag(b, number, protowire.VarintType)
		return protowire.AppendVarint(b, value.Interface().(steamid.SteamID).Uint64()), nil
	}

	switch value.Kind() {
	case reflect.Bool:
		b = protowire.AppendTag(b, number, protowire.VarintType)
		return protowire.AppendVarint(b, protowire.EncodeBool(value.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b = protowire.AppendTag(b, number, protowire.VarintType)
		return protowire.AppendVarint(b, uint64(value.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		b = protowire.AppendTag(b, number, protowire.VarintType)
		return protowire.AppendVarint(b, value.Uint()), nil
	case reflect.String:
		b = protowire.AppendTag(b, number, protowire.BytesType)
		return protowire.AppendString(b, value.String()), nil
	default:
		return nil, eris.Errorf("unsupported protobuf field kind %v", value.Kind())
	}
}

// EncodeProtobufInput adds the base64 encoded protobuf form of params to query.
// Nothing is added when no field is present.
func EncodeProtobufInput(query *Query, params any) error {
	message, err := MarshalProtobufInput(params)
	if err != nil {
		return err
	}
	if len(message) == 0 {
		return nil
	}

	query.Add(protobufInputParam, base64.StdEncoding.EncodeToString(message))
	return nil
}
