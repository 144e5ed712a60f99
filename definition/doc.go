// Package definition builds [pattern.Pattern] values from declarative YAML or
// JSON documents, so a library of patterns can live outside Go code.
//
// A document lists named patterns. Each pattern is a tree of nodes:
//
//	patterns:
//	  - name: date
//	    pattern:
//	      seq:
//	        - {op: start}
//	        - {op: digit, times: 4, group: year}
//	        - {op: literal, text: "-"}
//	        - {op: digit, times: 2, group: month}
//	        - {op: end}
//
// Building reports structural problems in the document (unknown operations,
// bad counts, unresolved references) but, like the pattern package, never
// validates the regex syntax it emits.
package definition
