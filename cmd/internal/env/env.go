package env

import (
	"os"
	"reflect"
	"strings"

	"github.com/harrybrwn/errs"
	"github.com/mitchellh/mapstructure"
)

var errNotStruct = errs.New("config must be a pointer to a struct")

// Decode reads an environment variable named PREFIX_KEY for every
// yaml key of conf and decodes the ones that are set onto conf.
// Values are weakly typed so "true" and "1" both work for a bool.
func Decode(prefix string, conf interface{}) error {
	v := reflect.ValueOf(conf)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errNotStruct
	}
	vars := Lookup(prefix, v.Elem().Type())
	if len(vars) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "yaml",
		Result:           conf,
	})
	if err != nil {
		return err
	}
	return dec.Decode(vars)
}

// Lookup finds the environment variables that are set for
// each of the yaml keys in a struct type.
func Lookup(prefix string, typ reflect.Type) map[string]interface{} {
	vars := make(map[string]interface{})
	for i := 0; i < typ.NumField(); i++ {
		key := strings.Split(typ.Field(i).Tag.Get("yaml"), ",")[0]
		if key == "" || key == "-" {
			continue
		}
		if val, ok := os.LookupEnv(Name(prefix, key)); ok {
			vars[key] = val
		}
	}
	return vars
}

// Name is the environment variable name for a key.
func Name(prefix, key string) string {
	name := strings.ToUpper(strings.Replace(key, "-", "_", -1))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "_" + name
}
