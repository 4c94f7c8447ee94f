package record

import (
	"fmt"
	"reflect"
	"strings"
)

// Valuer exposes attributes by name. Record satisfies it, so records can be
// used directly as collection items.
type Valuer interface {
	Value(field string) any
}

// Attribute reads the accessor name from a collection item. Supported items are
// Valuer implementations, string-keyed maps, and structs (exported field
// matched by name case-insensitively or by json/yaml tag). Pointers are
// dereferenced.
func Attribute(item any, name string) (any, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("record: accessor name is required")
	}

	switch v := item.(type) {
	case nil:
		return nil, fmt.Errorf("record: cannot read %q from nil item", name)
	case Valuer:
		return v.Value(name), nil
	case map[string]any:
		value, ok := v[name]
		if !ok {
			return nil, fmt.Errorf("record: item has no attribute %q", name)
		}
		return value, nil
	case map[string]string:
		value, ok := v[name]
		if !ok {
			return nil, fmt.Errorf("record: item has no attribute %q", name)
		}
		return value, nil
	}

	value := reflect.ValueOf(item)
	for value.IsValid() && value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("record: cannot read %q from nil item", name)
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		if field, ok := structField(value, name); ok {
			return field.Interface(), nil
		}
	case reflect.Map:
		if value.Type().Key().Kind() == reflect.String {
			entry := value.MapIndex(reflect.ValueOf(name).Convert(value.Type().Key()))
			if entry.IsValid() {
				return entry.Interface(), nil
			}
		}
	}

	return nil, fmt.Errorf("record: %T has no attribute %q", item, name)
}

func structField(value reflect.Value, name string) (reflect.Value, bool) {
	typ := value.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		if strings.EqualFold(field.Name, name) || tagName(field, "json") == name || tagName(field, "yaml") == name {
			return value.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func tagName(field reflect.StructField, key string) string {
	tag := field.Tag.Get(key)
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}
