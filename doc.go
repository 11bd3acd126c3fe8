package typeforge

// Package typeforge provides:
//
// - Recursive structural validation of arbitrary values against schema nodes (scalar/union/object/list)
// - A stable violation model via Violations (dotted path, kind, message)
// - Best-effort type conversion driven by the relate package's distance metric
// - Value ingestion from JSON/YAML via Source (JSONBytes/YAMLBytes)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the relationship analyzer under relate/, conversion primitives under coerce/,
//   and the boolean composition layer under rules/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := typeforge.MustObject(
//	    typeforge.F("name", typeforge.Of[string]()),
//	    typeforge.F("age", typeforge.Of[int]()),
//	)
//	res, err := typeforge.Validate(ctx, value, schema)
//	res, err = typeforge.ValidateFrom(ctx, schema, typeforge.JSONBytes(data), typeforge.Options{Convert: true})
//
