package idl

import (
	"encoding/json"
	"fmt"
)

// Validate checks that a document is well-formed: required top-level fields
// present, every catalog entry named, and type bodies internally consistent.
// A document that validates here round-trips through JSON without loss.
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("idl: nil document")
	}
	if doc.Version == "" {
		return fmt.Errorf("idl: missing version")
	}
	if doc.Name == "" {
		return fmt.Errorf("idl: missing program name")
	}
	for _, ins := range doc.Instructions {
		if ins.Name == "" {
			return fmt.Errorf("idl: unnamed instruction")
		}
		for _, acc := range ins.Accounts {
			if acc.Name == "" {
				return fmt.Errorf("idl: instruction %q has unnamed account", ins.Name)
			}
		}
		for _, arg := range ins.Args {
			if err := validateField(arg); err != nil {
				return fmt.Errorf("idl: instruction %q: %w", ins.Name, err)
			}
		}
	}
	for _, acc := range doc.Accounts {
		if acc.Name == "" {
			return fmt.Errorf("idl: unnamed account definition")
		}
		if acc.Type.Kind != "struct" {
			return fmt.Errorf("idl: account %q has kind %q, want struct", acc.Name, acc.Type.Kind)
		}
		for _, f := range acc.Type.Fields {
			if err := validateField(f); err != nil {
				return fmt.Errorf("idl: account %q: %w", acc.Name, err)
			}
		}
	}
	for _, td := range doc.Types {
		if td.Name == "" {
			return fmt.Errorf("idl: unnamed type definition")
		}
		switch td.Type.Kind {
		case "struct":
			for _, f := range td.Type.Fields {
				if err := validateField(f); err != nil {
					return fmt.Errorf("idl: type %q: %w", td.Name, err)
				}
			}
		case "enum":
			for _, v := range td.Type.Variants {
				if v.Name == "" {
					return fmt.Errorf("idl: type %q has unnamed variant", td.Name)
				}
				for _, f := range v.Fields {
					if err := validateField(f); err != nil {
						return fmt.Errorf("idl: type %q variant %q: %w", td.Name, v.Name, err)
					}
				}
			}
		default:
			return fmt.Errorf("idl: type %q has kind %q, want struct or enum", td.Name, td.Type.Kind)
		}
	}
	for _, e := range doc.Errors {
		if e.Name == "" {
			return fmt.Errorf("idl: error %d has no name", e.Code)
		}
	}
	return nil
}

// validateField checks a field's name and that its type shape terminates.
func validateField(f Field) error {
	if f.Name == "" {
		return fmt.Errorf("unnamed field")
	}
	return validateShape(f.Type)
}

func validateShape(t TypeShape) error {
	switch t.Kind {
	case KindPrimitive, KindNamed:
		if t.Name == "" {
			return fmt.Errorf("empty type name")
		}
	case KindVector, KindOption:
		if t.Elem == nil {
			return fmt.Errorf("container shape with no element")
		}
		return validateShape(*t.Elem)
	case KindTuple:
		for _, e := range t.Elems {
			if err := validateShape(e); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown shape kind %d", t.Kind)
	}
	return nil
}

// ValidateJSON parses raw IDL JSON and validates the resulting document.
// This is the round-trip check: anything Generate emits must pass.
func ValidateJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("idl: malformed JSON: %w", err)
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
