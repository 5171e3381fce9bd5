// Package schema validates JSON request documents against JSON Schemas.
//
// Schemas are identified by their "$id". Top-level schemas may reference
// shared definitions passed as refs; they cannot reference each other.
//
//	//go:embed schemas
//	var schemaFS embed.FS
//
//	v, err := schema.NewValidatorFromFS(schemaFS, "schemas")
//	if err != nil {
//		return err
//	}
//	if err := v.Validate(body, "https://jobboard.dev/schemas/jobNew.json"); err != nil {
//		// core.StatusCode(err) == 400, details keyed by property
//	}
//
// Violations are reported as a core.ValidationError keyed by the offending
// property, so handlers can return them as field-level details.
package schema
