package terraform

import (
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Sanitize maps a display name to a Terraform-safe identifier: every rune
// outside [A-Za-z0-9_] becomes '_', then the result is lower-cased.
// Idempotent, but not collision-free; names that sanitize identically are
// disambiguated upstream by the resolver.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// ResourceBlock creates a resource "type" "name" { } block; the caller fills
// the body.
func ResourceBlock(resourceType, name string) *hclwrite.Block {
	return hclwrite.NewBlock("resource", []string{resourceType, name})
}

// SetAttributeStr sets a string attribute. The value goes out verbatim; the
// compiler does no semantic validation.
func SetAttributeStr(body *hclwrite.Body, name, value string) {
	body.SetAttributeValue(name, cty.StringVal(value))
}

// SetAttributeBool sets a bool attribute.
func SetAttributeBool(body *hclwrite.Body, name string, value bool) {
	body.SetAttributeValue(name, cty.BoolVal(value))
}

// SetAttributeInt sets an int attribute.
func SetAttributeInt(body *hclwrite.Body, name string, value int) {
	body.SetAttributeValue(name, cty.NumberIntVal(int64(value)))
}

// SetAttributeStrList sets a list-of-strings attribute; an empty list still
// renders as [].
func SetAttributeStrList(body *hclwrite.Body, name string, values []string) {
	if len(values) == 0 {
		body.SetAttributeValue(name, cty.ListValEmpty(cty.String))
		return
	}
	list := make([]cty.Value, len(values))
	for i, v := range values {
		list[i] = cty.StringVal(v)
	}
	body.SetAttributeValue(name, cty.ListVal(list))
}

// SetNameTag sets the tags attribute carrying the node's display name.
func SetNameTag(body *hclwrite.Body, displayName string) {
	body.SetAttributeValue("tags", cty.ObjectVal(map[string]cty.Value{
		"Name": cty.StringVal(displayName),
	}))
}

// BlockToBytes formats a block and returns its bytes (with trailing newline).
func BlockToBytes(block *hclwrite.Block) []byte {
	f := hclwrite.NewEmptyFile()
	f.Body().AppendBlock(block)
	return f.Bytes()
}
