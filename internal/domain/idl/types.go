// Package idl defines the Interface Description data model — the structured
// summary of an on-chain program's instructions, account layouts, custom types,
// and error codes. A Document is a pure value: built once per extraction,
// serialized verbatim, never updated in place.
package idl

import (
	"encoding/json"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Version is the fixed IDL format version stamped on every document.
const Version = "0.1.0"

// Document is the sole externally visible artifact of an extraction.
type Document struct {
	Version      string        `json:"version"`
	Name         string        `json:"name"`
	Instructions []Instruction `json:"instructions"`
	Accounts     []AccountDef  `json:"accounts"`
	Types        []TypeDef     `json:"types"`
	Errors       []ErrorDef    `json:"errors"`
}

// Instruction describes one program instruction: its accounts and typed args.
type Instruction struct {
	Name     string        `json:"name"`
	Accounts []AccountMeta `json:"accounts"`
	Args     []Field       `json:"args"`
}

// AccountMeta is an account reference within an instruction.
type AccountMeta struct {
	Name     string `json:"name"`
	IsMut    bool   `json:"isMut"`
	IsSigner bool   `json:"isSigner"`
}

// Field is a named, typed member of a struct, instruction arg list, or
// enum variant.
type Field struct {
	Name string    `json:"name"`
	Type TypeShape `json:"type"`
}

// AccountDef describes an on-chain account layout. Account layouts use a
// narrower type grammar than the general type catalog: always kind "struct",
// fields resolved to primitive or named types only.
type AccountDef struct {
	Name string      `json:"name"`
	Type StructShape `json:"type"`
}

// StructShape is the type body of an account definition.
type StructShape struct {
	Kind   string  `json:"kind"` // always "struct"
	Fields []Field `json:"fields"`
}

// TypeDef is one entry in the full type catalog: a struct or an enum.
type TypeDef struct {
	Name string      `json:"name"`
	Type TypeDefBody `json:"type"`
}

// TypeDefBody carries either struct fields or enum variants depending on Kind.
type TypeDefBody struct {
	Kind     string        `json:"kind"` // "struct" or "enum"
	Fields   []Field       `json:"fields,omitempty"`
	Variants []EnumVariant `json:"variants,omitempty"`
}

// EnumVariant is a single enum variant. Fields is nil for unit variants,
// named fields for brace variants, and synthesized field0..fieldN for tuple
// variants.
type EnumVariant struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields,omitempty"`
}

// ErrorDef is a custom program error derived from a numeric literal.
type ErrorDef struct {
	Code int64  `json:"code"`
	Name string `json:"name"`
	Msg  string `json:"msg"`
}

// NewError synthesizes the name and message for a custom error code.
func NewError(code int64) ErrorDef {
	return ErrorDef{
		Code: code,
		Name: fmt.Sprintf("CustomError%d", code),
		Msg:  fmt.Sprintf("Custom program error %d", code),
	}
}

// ShapeKind discriminates the TypeShape union.
type ShapeKind int

const (
	KindPrimitive ShapeKind = iota // scalar spelled exactly as in source
	KindNamed                      // user-defined type, opaque here
	KindVector                     // Vec<T>
	KindTuple                      // (A, B, ...)
	KindOption                     // Option<T>
)

// TypeShape is the closed union every source type syntax normalizes into.
// Recursion is structurally bounded by the source grammar, so plain owned
// nesting suffices — no arena or indices.
type TypeShape struct {
	Kind  ShapeKind
	Name  string      // primitive or named text
	Elem  *TypeShape  // vector / option element
	Elems []TypeShape // tuple elements
}

// Primitive returns a scalar shape (u8, bool, ...).
func Primitive(name string) TypeShape { return TypeShape{Kind: KindPrimitive, Name: name} }

// Named returns an opaque user-defined type shape.
func Named(name string) TypeShape { return TypeShape{Kind: KindNamed, Name: name} }

// Vector returns a Vec<elem> shape.
func Vector(elem TypeShape) TypeShape { return TypeShape{Kind: KindVector, Elem: &elem} }

// Tuple returns a tuple shape over the given elements.
func Tuple(elems ...TypeShape) TypeShape { return TypeShape{Kind: KindTuple, Elems: elems} }

// Option returns an Option<inner> shape.
func Option(inner TypeShape) TypeShape { return TypeShape{Kind: KindOption, Elem: &inner} }

// MarshalJSON encodes primitives and named types as bare strings, and
// containers as single-key objects ({"vec":…}, {"tuple":[…]}, {"option":…}).
func (t TypeShape) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case KindPrimitive, KindNamed:
		return json.Marshal(t.Name)
	case KindVector:
		return json.Marshal(map[string]TypeShape{"vec": *t.Elem})
	case KindTuple:
		return json.Marshal(map[string][]TypeShape{"tuple": t.Elems})
	case KindOption:
		return json.Marshal(map[string]TypeShape{"option": *t.Elem})
	}
	return nil, fmt.Errorf("idl: unknown type shape kind %d", t.Kind)
}

// UnmarshalJSON accepts the bare-string form plus the vec/tuple/option
// containers. {"defined": "Name"} is also accepted and folds into Named so
// documents produced by other toolchains validate cleanly.
func (t *TypeShape) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Named(s)
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("idl: type is neither string nor object: %w", err)
	}
	if raw, ok := obj["defined"]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return fmt.Errorf("idl: defined type: %w", err)
		}
		*t = Named(name)
		return nil
	}
	if raw, ok := obj["vec"]; ok {
		var elem TypeShape
		if err := json.Unmarshal(raw, &elem); err != nil {
			return fmt.Errorf("idl: vec element: %w", err)
		}
		*t = Vector(elem)
		return nil
	}
	if raw, ok := obj["option"]; ok {
		var inner TypeShape
		if err := json.Unmarshal(raw, &inner); err != nil {
			return fmt.Errorf("idl: option inner: %w", err)
		}
		*t = Option(inner)
		return nil
	}
	if raw, ok := obj["tuple"]; ok {
		var elems []TypeShape
		if err := json.Unmarshal(raw, &elems); err != nil {
			return fmt.Errorf("idl: tuple elements: %w", err)
		}
		*t = Tuple(elems...)
		return nil
	}
	return fmt.Errorf("idl: unrecognized type encoding %s", string(data))
}

// LowerFirst lower-cases the first character of s and leaves the rest
// untouched. This is the camelCase convention for emitted names: only the
// first letter is touched, no snake_case conversion.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
