// Package schema loads YAML binding files that declare, per type, which
// value strategies, filters and naming a converter applies, checks them
// and builds the converters.
//
// # File layout
//
//	version: "1"
//	types:
//	  - type: store.Customer
//	    naming: underscore            # identity (default), underscore or map
//	    filter:                       # consulted for every field
//	      not:
//	        prefix: Address
//	    fields:
//	      - name: IsActive
//	        strategy:
//	          boolean: {true_value: "yes", false_value: "no"}
//	      - name: PasswordHash
//	        filter:
//	          match: {exclude: true}  # name defaults to the field
//	  - type: store.Order
//	    naming: map
//	    rename:
//	      TotalCents: total
//	    fields:
//	      - name: Items
//	        strategy:
//	          collection: store.OrderItem
//	      - name: Gift
//	        strategy:
//	          chain:
//	            - boolean: {true_value: 1, false_value: 0}
//
// # Strategies
//
// Exactly one of the keys below must be set in a strategy:
//   - boolean: {true_value, false_value}, each an integer or a string
//   - chain: a list of strategies applied in order on extraction
//   - caster: {extract, hydrate}, names of functions added to the Catalog
//   - nested: a bound type name, "*" prefixed for pointer fields
//   - collection: a bound type name for slice fields
//
// Casters, nested and collection strategies need a Catalog.
//
// # Filters
//
// Exactly one of match {name, exclude}, prefix, not, any or all must be set.
package schema
