package payeer

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Response is a JSON document returned by the API, kept byte for byte.
type Response struct {
	raw []byte
	doc gjson.Result
}

func parseResponse(body []byte) (*Response, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}
	return &Response{raw: body, doc: gjson.ParseBytes(body)}, nil
}

func (r *Response) Raw() []byte {
	return r.raw
}

func (r *Response) String() string {
	return string(r.raw)
}

// Get reads a value with gjson path syntax.
func (r *Response) Get(path string) gjson.Result {
	return r.doc.Get(path)
}

// Field returns the top-level field key as its own document.
func (r *Response) Field(key string) (*Response, error) {
	value := r.doc.Get(key)
	if !value.Exists() {
		return nil, errors.Wrap(ErrMissingField, key)
	}
	return &Response{raw: []byte(value.Raw), doc: value}, nil
}

func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.raw, v)
}

func (r *Response) DecodeField(key string, v any) error {
	field, err := r.Field(key)
	if err != nil {
		return err
	}
	return errors.Wrap(field.Decode(v), key)
}

// decodeCollection decodes the keyed collection under key into the map
// pointed to by v. PHP encodes an empty collection as [], which leaves the
// map empty; null counts as a missing field.
func (r *Response) decodeCollection(key string, v any) error {
	value := r.doc.Get(key)
	if value.Type == gjson.Null {
		return errors.Wrap(ErrMissingField, key)
	}
	if value.IsArray() && len(value.Array()) == 0 {
		return nil
	}
	return r.DecodeField(key, v)
}

func (r *Response) apiError() *APIError {
	value := r.doc.Get("errors")
	if !truthy(value) {
		return nil
	}
	return newAPIError(value)
}

// Balance [balance]
type Balance struct {
	Total           decimal.Decimal `json:"BALANCE"`
	Available       decimal.Decimal `json:"DOSTUPNO"`
	AvailableSystem decimal.Decimal `json:"DOSTUPNO_SYST"`
}

// Payment system [getPaySystems]
type PaySystem struct {
	ID             string
	Name           string
	Currencies     []Currency
	CommissionSite string
	// Raw holds the complete entry, including the per-system field
	// definitions the other fields do not cover.
	Raw json.RawMessage
}

func (ps *PaySystem) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	ps.ID = doc.Get("id").String()
	ps.Name = doc.Get("name").String()
	ps.CommissionSite = doc.Get("commission_site_percent").String()
	ps.Currencies = ps.Currencies[:0]
	for _, cur := range doc.Get("currencies").Array() {
		ps.Currencies = append(ps.Currencies, Currency(cur.String()))
	}
	ps.Raw = append(json.RawMessage(nil), data...)
	return nil
}
