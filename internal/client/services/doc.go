// Package services holds the CLI use cases: authentication, the dashboard,
// transfers and statements. Services validate input, call the backend through
// client.Client and turn failures into *Failure values whose text is ready to
// print.
package services
