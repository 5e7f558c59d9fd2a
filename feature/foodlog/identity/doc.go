// Package identity matches foods across stores whose identifiers are
// generated independently. Two foods with the same Signature are the same
// logical food.
package identity
