package terraform

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Placeholder is emitted wherever a reference is empty or points at a node
// that no longer exists. The artifact stays syntactically valid; the string
// marks the spot needing manual repair.
const Placeholder = "REPLACE_ME_UNRESOLVED"

// ArtifactName is the conventional file name for the generated text.
const ArtifactName = "main.tf"

// Banner is the fixed three-line header every artifact starts with.
const Banner = `# Generated by graph2tf. Review before applying.
# Target: AWS, provider hashicorp/aws ~> 5.0.
# Unresolved references are marked ` + Placeholder + `.
`

// Preamble returns the terraform settings and provider blocks that follow
// the banner.
func Preamble() []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	tfBlock := body.AppendNewBlock("terraform", nil)
	tfBody := tfBlock.Body()
	tfBody.SetAttributeValue("required_version", cty.StringVal(">= 1.0"))
	reqProv := tfBody.AppendNewBlock("required_providers", nil)
	reqProv.Body().SetAttributeValue("aws", cty.ObjectVal(map[string]cty.Value{
		"source":  cty.StringVal("hashicorp/aws"),
		"version": cty.StringVal("~> 5.0"),
	}))

	body.AppendNewline()
	provBlock := body.AppendNewBlock("provider", []string{"aws"})
	provBlock.Body().SetAttributeValue("region", cty.StringVal("us-east-1"))

	return f.Bytes()
}
