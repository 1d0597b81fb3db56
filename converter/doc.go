// Package converter extracts objects into ordered field mappings and hydrates
// mappings back into objects.
//
// # Building blocks
//
//   - Converter: the Extract/Hydrate contract every converter satisfies.
//   - Reflection: reads and writes exported struct fields through a FieldAccessor.
//   - MappingConverter: treats a *fields.Mapping itself as the object.
//   - StrategyEnabled: wraps a base converter and applies per-field value
//     strategies, field filters and a naming strategy around it.
//   - Delegating: routes each call to the converter registered for the
//     object's runtime type in a Registry.
//   - Nested and Collection: value strategies converting nested objects
//     through another converter, usually a Delegating one.
//   - Schema: a per-type declaration of field bindings, validated once
//     against the struct type before it is turned into a StrategyEnabled.
//
// # Type keys
//
// Registries are keyed by TypeKey, the runtime type with pointers removed, so
// a value and a pointer to it route to the same converter:
//
//	registry := converter.NewRegistry()
//	_ = converter.Register[store.Customer](registry, customers)
//	d := converter.NewDelegating(registry)
//	m, _ := d.Extract(&store.Customer{})   // uses customers
//	_, _ = d.Hydrate(m, &store.Customer{}) // uses customers
//
// # Errors
//
// Delegating reports ErrNoConverterRegistered for unregistered types and
// ErrRecursiveDelegation when the converter registered for a type leads back
// to it, either directly, through the Base chain of wrapping converters such
// as StrategyEnabled, or through the registries of other Delegating
// converters. Cycles hidden inside value strategies are not detected. Errors from
// delegates and from value strategies are returned as they are.
package converter
