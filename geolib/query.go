package geolib

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

type paramPair struct {
	key   string
	value interface{}
}

// Params is an ordered set of query parameters. Unlike url.Values it
// remembers insertion order, so encoded URLs are stable and reproducible.
// Values may be scalars or sequences; a sequence emits one pair per element
// under the same key.
type Params struct {
	pairs []paramPair
}

func NewParams() *Params {
	return &Params{}
}

// Set stores a value under key. Setting a key that is already present
// replaces its value in place, keeping the original position.
func (p *Params) Set(key string, value interface{}) *Params {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value

			return p
		}
	}

	p.pairs = append(p.pairs, paramPair{key: key, value: value})

	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (interface{}, bool) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			return p.pairs[i].value, true
		}
	}

	return nil, false
}

// Del removes key and its value.
func (p *Params) Del(key string) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs = append(p.pairs[:i], p.pairs[i+1:]...)

			return
		}
	}
}

func (p *Params) clone() *Params {
	cloned := &Params{pairs: make([]paramPair, len(p.pairs))}

	copy(cloned.pairs, p.pairs)

	return cloned
}

// Encode renders the parameters as a query string. Entries with an empty key
// and sequences with no elements contribute nothing. All values are strictly
// percent-encoded over their UTF-8 bytes, so a space becomes %20, never +.
func (p *Params) Encode() string {
	parts := make([]string, 0, len(p.pairs))

	for _, pair := range p.pairs {
		if pair.key == "" {
			continue
		}

		for _, item := range sequenceOf(pair.value) {
			parts = append(parts, escape(pair.key)+"="+escape(stringify(item)))
		}
	}

	return strings.Join(parts, "&")
}

// sequenceOf flattens a value into the list of scalars it contributes to the
// query string. Scalars contribute themselves, slices and arrays contribute
// their elements.
func sequenceOf(value interface{}) []interface{} {
	if value == nil {
		return []interface{}{""}
	}

	if _, ok := value.([]byte); ok {
		return []interface{}{value}
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]interface{}, 0, rv.Len())

		for i := 0; i < rv.Len(); i++ {
			items = append(items, rv.Index(i).Interface())
		}

		return items
	}

	return []interface{}{value}
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}

	return fmt.Sprintf("%v", value)
}

// escape percent-encodes every reserved and non-alphanumeric byte of s.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
