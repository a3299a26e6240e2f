package ast

import "fmt"

// Kind is the closed enumeration of AST node kinds. A handful of kinds are
// reserved for constructs this front end's grammar describes but whose
// productions never emit them (see doc.go); they exist so that future
// productions (or a future version of the parser) have a stable name to
// reach for.
type Kind int

const (
	// Root is the kind of the single tree root. No other node has this
	// kind, and the root never has any other kind.
	Root Kind = iota
	Comment
	CommentText
	Identifier
	Assignment // reserved: no production emits an explicit '=' node
	StringLiteral
	IntegerLiteral
	FloatLiteral // reserved: no production emits a float literal
	BooleanLiteral // reserved: no production emits a boolean literal
	Syntax
	Package
	Import
	ImportModifier
	Option
	Enum
	EnumConstant
	Message
	OneOfField
	Field
	FieldNumber
	Type
	UserType
	Repeated
	EnumField // reserved: see DESIGN.md, EnumConstant is what enum members use
	Map
	MapKey
	MapValue
	Service
	Streaming
	ServiceReturnType
	ServiceInputType
	Reserved
)

var kindNames = [...]string{
	Root:               "Root",
	Comment:            "Comment",
	CommentText:        "CommentText",
	Identifier:         "Identifier",
	Assignment:         "Assignment",
	StringLiteral:      "StringLiteral",
	IntegerLiteral:     "IntegerLiteral",
	FloatLiteral:       "FloatLiteral",
	BooleanLiteral:     "BooleanLiteral",
	Syntax:             "Syntax",
	Package:            "Package",
	Import:             "Import",
	ImportModifier:     "ImportModifier",
	Option:             "Option",
	Enum:               "Enum",
	EnumConstant:       "EnumConstant",
	Message:            "Message",
	OneOfField:         "OneOfField",
	Field:              "Field",
	FieldNumber:        "FieldNumber",
	Type:               "Type",
	UserType:           "UserType",
	Repeated:           "Repeated",
	EnumField:          "EnumField",
	Map:                "Map",
	MapKey:             "MapKey",
	MapValue:           "MapValue",
	Service:            "Service",
	Streaming:          "Streaming",
	ServiceReturnType:  "ServiceReturnType",
	ServiceInputType:   "ServiceInputType",
	Reserved:           "Reserved",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
