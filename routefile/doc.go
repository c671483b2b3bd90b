// Package routefile loads declarative route tables for a match.Routes
// registry, so the pattern set of a dispatch layer can live in
// configuration instead of code.
//
// A table is a YAML or JSON document listing routes in registration order:
//
//	routes:
//	  - pattern: api/:version/users/:id
//	    payload:
//	      controller: users
//	    validators:
//	      id: int
//	  - pattern: static/:*path/:file
//	    payload:
//	      controller: static
//
// Validator names refer to the builtins exposed by
// match.BuiltinValidator (uuid, int, float, slug, alpha, alphanum, date,
// hex, domain). Unknown names and missing patterns are rejected at parse
// time, before anything touches the registry.
//
// Loading and applying a table:
//
//	doc, err := routefile.Load("routes.yaml")
//	if err != nil {
//	    return err
//	}
//
//	r := match.NewRoutes()
//	if err := doc.Apply(r); err != nil {
//	    return err
//	}
package routefile
