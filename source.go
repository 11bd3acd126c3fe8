package typeforge

import (
	"context"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/typeforge/typeforge/i18n"
)

// Source yields a decoded value to validate. Sources are one-shot adapters
// over raw input bytes; decoding happens lazily inside ValidateFrom.
type Source interface {
	Decode() (any, error)
}

type jsonBytesSource struct{ data []byte }

func (s jsonBytesSource) Decode() (any, error) {
	var v any
	if err := gojson.Unmarshal(s.data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// JSONBytes wraps raw JSON input as a Source.
func JSONBytes(data []byte) Source { return jsonBytesSource{data: data} }

type jsonReaderSource struct{ r io.Reader }

func (s jsonReaderSource) Decode() (any, error) {
	var v any
	if err := gojson.NewDecoder(s.r).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// JSONReader wraps a JSON stream as a Source.
func JSONReader(r io.Reader) Source { return jsonReaderSource{r: r} }

type yamlBytesSource struct{ data []byte }

func (s yamlBytesSource) Decode() (any, error) {
	var v any
	if err := yaml.Unmarshal(s.data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAMLBytes wraps raw YAML input as a Source.
func YAMLBytes(data []byte) Source { return yamlBytesSource{data: data} }

// ValidateFrom decodes the source and validates the result against the
// schema. A decode failure is a data problem, not a programmer error: it
// becomes a failing Result with a conversion_error violation at the starting
// path rather than an error return.
func ValidateFrom(ctx context.Context, schema Node, src Source, opts ...Options) (Result, error) {
	if schema == nil {
		return Result{}, ErrNilSchema
	}
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, err := src.Decode()
	if err != nil {
		return failWith(Violation{
			Path:     opt.Path.String(),
			Expected: schema.String(),
			Found:    err.Error(),
			Kind:     KindConversionError,
			Message:  i18n.T(KindConversionError, nil),
		}), nil
	}
	return Validate(ctx, v, schema, opt)
}
