// See node.go for the Tree/Node model, errors.go for ParseError, and
// equality.go for the structural equality law nodes obey.
//
// Four kinds in the Kind enumeration are never produced by the current
// grammar and exist purely so future productions have a name to reach
// for: FloatLiteral and BooleanLiteral (no production in parser parses a
// float or bool value out of the literals it accepts as field/option
// values), Assignment (no production builds an explicit node for an '='
// token; it's consumed and discarded by every production that requires
// one), and EnumField (superseded by EnumConstant; see DESIGN.md for why
// the spec's node-kind list supports either reading and which one this
// implementation picked).
package ast
