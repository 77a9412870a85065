package idl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *Document {
	return &Document{
		Version: Version,
		Name:    "token_program",
		Instructions: []Instruction{{
			Name:     "transfer",
			Accounts: []AccountMeta{{Name: "account", IsMut: true}},
			Args:     []Field{{Name: "amount", Type: Primitive("u64")}},
		}},
		Accounts: []AccountDef{{
			Name: "State",
			Type: StructShape{Kind: "struct", Fields: []Field{{Name: "owner", Type: Named("Pubkey")}}},
		}},
		Types: []TypeDef{{
			Name: "Op",
			Type: TypeDefBody{Kind: "enum", Variants: []EnumVariant{
				{Name: "Noop"},
				{Name: "Transfer", Fields: []Field{{Name: "field0", Type: Primitive("u64")}}},
			}},
		}},
		Errors: []ErrorDef{NewError(9001)},
	}
}

func TestValidate_AcceptsWellFormedDocument(t *testing.T) {
	assert.NoError(t, Validate(validDocument()))
}

func TestValidate_RejectsMissingRequiredKeys(t *testing.T) {
	doc := validDocument()
	doc.Name = ""
	assert.Error(t, Validate(doc))

	doc = validDocument()
	doc.Version = ""
	assert.Error(t, Validate(doc))

	assert.Error(t, Validate(nil))
}

func TestValidate_RejectsBadKinds(t *testing.T) {
	doc := validDocument()
	doc.Accounts[0].Type.Kind = "enum"
	assert.Error(t, Validate(doc))

	doc = validDocument()
	doc.Types[0].Type.Kind = "union"
	assert.Error(t, Validate(doc))
}

func TestValidate_RejectsUnnamedMembers(t *testing.T) {
	doc := validDocument()
	doc.Instructions[0].Args[0].Name = ""
	assert.Error(t, Validate(doc))

	doc = validDocument()
	doc.Types[0].Type.Variants[0].Name = ""
	assert.Error(t, Validate(doc))
}

func TestValidateJSON(t *testing.T) {
	good := []byte(`{
		"version": "0.1.0",
		"name": "solana_program",
		"instructions": [],
		"accounts": [],
		"types": [{"name": "Op", "type": {"kind": "enum", "variants": [{"name": "Noop"}]}}],
		"errors": [{"code": 9001, "name": "CustomError9001", "msg": "Custom program error 9001"}]
	}`)
	doc, err := ValidateJSON(good)
	require.NoError(t, err)
	assert.Equal(t, "solana_program", doc.Name)

	_, err = ValidateJSON([]byte(`{"version": "0.1.0"}`))
	assert.Error(t, err)

	_, err = ValidateJSON([]byte(`not json`))
	assert.Error(t, err)
}
