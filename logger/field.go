package logger

import (
	"fmt"
	"strconv"
)

// Field is a key/value pair attached to every line a logger prints.
type Field interface {
	Key() string
	String() string
}

type Fields []Field

func (f *Fields) Add(fields ...Field) {
	*f = append(*f, fields...)
}

type stringField struct {
	key, value string
}

func (f stringField) Key() string    { return f.key }
func (f stringField) String() string { return f.value }

func StringField(key, value string) Field {
	return stringField{key: key, value: value}
}

func IntField(key string, value int) Field {
	return stringField{key: key, value: strconv.Itoa(value)}
}

// StringerField renders value with its String method at print time.
func StringerField(key string, value fmt.Stringer) Field {
	return stringerField{key: key, value: value}
}

type stringerField struct {
	key   string
	value fmt.Stringer
}

func (f stringerField) Key() string    { return f.key }
func (f stringerField) String() string { return f.value.String() }
