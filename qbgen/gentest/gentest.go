// Package gentest checks the generated builder surface against the guard
// runtime, using builders generated from entities.qb.
package gentest

//go:generate go run github.com/guardql/guardql/qbgen/cmd/qbgen -schema entities.qb -out builders_gen.go -pkg gentest
