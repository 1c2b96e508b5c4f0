package utils

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FlexString aceita tanto string quanto número no JSON (ex.: IDs numéricos ou UUIDs)
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "flex string")
		}
		*f = FlexString(s)
		return nil
	}

	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// FlexFloat aceita número ou string decimal no JSON (ex.: "1500.50").
// NaN e infinitos são rejeitados.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "flex float")
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*f = 0
			return nil
		}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Errorf("flex float: invalid number %q", raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("flex float: non-finite number %q", raw)
	}

	*f = FlexFloat(value)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}
