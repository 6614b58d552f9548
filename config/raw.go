package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"reflect"
	"regexp"
	"strconv"
)

var (
	interpolationExpr = regexp.MustCompile(`^__\${(\w+)}__$`)
)

type Raw map[string]interface{}

// ParseFromString Provide a YAML string and unmarshal it
func ParseFromString(content string) (Raw, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal([]byte(content), &out); err != nil {
		return nil, err
	}
	return out, nil

}

func Parse(reader io.Reader) (Raw, error) {
	var out map[string]interface{}
	if err := yaml.NewDecoder(reader).Decode(&out); err != nil {
		// an empty file is a valid configuration without any settings
		if err == io.EOF {
			return Raw{}, nil
		}
		return nil, err
	}
	return out, nil
}

func (c Raw) Sub(key string) Raw {
	val := c[key]
	if val == nil {
		return nil
	}
	if reflect.TypeOf(val).Kind() == reflect.Map {
		switch v := val.(type) {
		case map[interface{}]interface{}:
			var sub = map[string]interface{}{}
			for key, elem := range v {
				if s, ok := key.(string); ok {
					sub[s] = elem
				}
			}
			return sub
		case map[string]interface{}:
			return v
		}
	}
	return nil
}

func (c Raw) Has(key string) bool {
	_, exists := c[key]
	return exists
}

func (c Raw) String(key string) string {
	return interpolate(asString(c[key]))
}

func (c Raw) StringSlice(key string) []string {
	val := c[key]
	if val == nil {
		return nil
	}
	if s, ok := val.([]string); ok {
		return s
	}
	if s, ok := val.([]interface{}); ok {
		slice := make([]string, 0, len(s))
		for _, raw := range s {
			if elem := interpolate(asString(raw)); elem != "" {
				slice = append(slice, elem)
			}
		}
		return slice
	}
	return nil
}

func (c Raw) Bool(key string) bool {
	return asBool(c[key])
}

func asString(val interface{}) string {
	if val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	if s, ok := val.(fmt.Stringer); ok && s != nil {
		return s.String()
	}
	return fmt.Sprintf("%v", val)
}

func asBool(val interface{}) bool {
	if val == nil {
		return false
	}
	if b, ok := val.(bool); ok {
		return b
	}
	if s, ok := val.(string); ok {
		b, err := strconv.ParseBool(interpolate(s))
		if err == nil {
			return b
		}
	}
	return false
}

// interpolate replaces a value of the form __${ENV_VAR}__ with the content of that environment variable
func interpolate(s string) string {
	m := interpolationExpr.FindStringSubmatch(s)

	if len(m) <= 1 {
		return s
	}

	v := os.Getenv(m[1])

	return v
}
