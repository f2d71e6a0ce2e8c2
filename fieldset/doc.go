// Package fieldset parses sparse fieldset filters as described by rule #157 of
// the Zalando RESTful API guidelines:
//
//	<fields>            ::= [ <negation> ] <fields_struct>
//	<fields_struct>     ::= "(" <field_items> ")"
//	<field_items>       ::= <field> [ "," <field_items> ]
//	<field>             ::= <field_name> | <fields_substruct>
//	<fields_substruct>  ::= <field_name> <fields_struct>
//	<field_name>        ::= <dash_letter_digit> [ <field_name> ]
//	<dash_letter_digit> ::= <dash> | <letter> | <digit>
//	<dash>              ::= "-" | "_"
//	<letter>            ::= "A" | ... | "Z" | "a" | ... | "z"
//	<digit>             ::= "0" | ... | "9"
//	<negation>          ::= "!"
//
// Whitespace is not part of the grammar and is rejected wherever it appears.
//
// A successful Parse returns a Tree that can be indexed by path, walked in
// pre-order, or reduced to its leaves:
//
//	tree, err := fieldset.Parse("(name,bio(height(meters,centimeters),age))")
//	if err != nil {
//		return err
//	}
//	height, ok := tree.Index("bio", "height")
//	for field := range tree.Walk() {
//		fmt.Println(field.Path())
//	}
package fieldset
