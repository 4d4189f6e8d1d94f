// Package navigation holds the stateless navigation protocol: the token codec
// that carries the whole browsing position inside a short string, plus the
// pagination and adjacency helpers screens are built from.
//
// Wire format is a colon-joined field list led by a one-letter action code:
//
//	m                     root menu
//	t                     mount type menu
//	l:ev                  list, first page
//	p:ev:3                list page 3
//	v:hr:lu-bu            view a record
//	r:ev:siege            rules of an event
//	q:sk:0:iron wall      search results; the query is last and may contain ':'
//	s:spears:1            mount slot list
//	i:spears:1:4          mount slot item
//	n:spears:1:4:next     step from item 4 to its neighbor
//
// Every token fits in MaxTokenBytes. Decode rejects anything Encode would not
// produce with an INVALID_TOKEN error.
package navigation
