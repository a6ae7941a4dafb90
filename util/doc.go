// Package util provides small generic helpers shared across speechkit packages.
package util
