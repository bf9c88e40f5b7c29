package ast

import (
	"github.com/mitchellh/mapstructure"
)

// Decode maps v onto target, which must be a pointer.  Objects decode onto
// structs (matching fields by name or by a "json" tag) or maps, arrays onto
// slices, and scalars onto their natural Go types.
//
// Duplicate object keys decode last-wins; see ToGo.
func Decode(v Value, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  target,
	})
	if err != nil {
		return err
	}
	return dec.Decode(ToGo(v))
}
