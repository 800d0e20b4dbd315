package api

import (
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/escrow-tf/steamweb/steamid"
	"github.com/gorilla/schema"
	"github.com/rotisserie/eris"
)

const paramTag = "schema"

// Query is an ordered list of query parameters. Unlike url.Values it keeps
// insertion order, so encoded URLs are stable.
type Query struct {
	names  []string
	values []string
}

func (q *Query) Add(name, value string) {
	q.names = append(q.names, name)
	q.values = append(q.values, value)
}

// Get returns the first value added under name.
func (q *Query) Get(name string) (string, bool) {
	for i, n := range q.names {
		if n == name {
			return q.values[i], true
		}
	}
	return "", false
}

// Append adds every parameter of other after the ones already in q.
func (q *Query) Append(other *Query) {
	q.names = append(q.names, other.names...)
	q.values = append(q.values, other.values...)
}

func (q *Query) Len() int {
	return len(q.names)
}

// Names lists the parameter names in order, repeats included.
func (q *Query) Names() []string {
	return append([]string(nil), q.names...)
}

func (q *Query) Encode() string {
	var builder strings.Builder
	for i, name := range q.names {
		if i > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(url.QueryEscape(name))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(q.values[i]))
	}
	return builder.String()
}

// ParamEncoder turns a parameter struct into a Query. Fields are named by
// their `schema` tag; pointer fields tagged omitempty are left out when nil.
type ParamEncoder struct {
	encoder *schema.Encoder
}

func NewParamEncoder() *ParamEncoder {
	encoder := schema.NewEncoder()
	encoder.SetAliasTag(paramTag)
	encoder.RegisterEncoder(steamid.SteamID{}, func(v reflect.Value) string {
		return v.Interface().(steamid.SteamID).String()
	})
	encoder.RegisterEncoder(steamid.Collection{}, func(v reflect.Value) string {
		return v.Interface().(steamid.Collection).String()
	})
	return &ParamEncoder{encoder: encoder}
}

// Encode appends the parameters of params to a new Query in field
// declaration order. A nil params, or a nil pointer to a struct, yields an
// empty Query.
func (e *ParamEncoder) Encode(params any) (*Query, error) {
	query := &Query{}
	if isNilParams(params) {
		return query, nil
	}

	values := make(map[string][]string)
	if err := e.encoder.Encode(params, values); err != nil {
		return nil, eris.Wrap(err, "couldn't encode request parameters")
	}

	seen := make(map[string]bool, len(values))
	for _, name := range fieldOrder(reflect.TypeOf(params)) {
		if seen[name] {
			continue
		}
		seen[name] = true
		for _, value := range values[name] {
			query.Add(name, value)
		}
	}

	// anything the field walk did not name still goes out, sorted
	var rest []string
	for name := range values {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		for _, value := range values[name] {
			query.Add(name, value)
		}
	}

	return query, nil
}

func isNilParams(params any) bool {
	if params == nil {
		return true
	}
	v := reflect.ValueOf(params)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// fieldOrder returns the parameter names of a struct type in declaration
// order, descending into embedded structs.
func fieldOrder(t reflect.Type) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var names []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get(paramTag), ",")
		if name == "-" {
			continue
		}

		if field.Anonymous && name == "" {
			names = append(names, fieldOrder(field.Type)...)
			continue
		}

		if name == "" {
			name = field.Name
		}
		names = append(names, name)
	}
	return names
}

// Ptr returns a pointer to v, for filling optional parameters inline.
func Ptr[T any](v T) *T {
	return &v
}
