// Package registry exposes the closed catalog of field templates used to
// instantiate new form fields. The default catalog is compiled in from
// catalog.yaml; deployments may substitute their own catalog through Load or
// LoadFS as long as every kind referenced by existing schemas stays
// resolvable.
package registry
