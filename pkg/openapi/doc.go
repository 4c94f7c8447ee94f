// Package openapi derives form records from OpenAPI 3 component schemas.
// Documents are parsed with kin-openapi; callers only see the Schema and
// Property wrappers so the kin-openapi types stay out of the public API.
package openapi
