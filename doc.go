// Package guardql generates guarded, type-safe query builders from
// declarative per-field metadata.
//
// Annotate each entity field with the comparison operations it permits in
// selection, update, and deletion contexts, and qbgen emits one builder
// type per context whose finalization refuses queries without a WHERE
// condition and updates without a SET assignment. Every finalized builder
// also yields an introspectable params snapshot recording exactly which
// conditions and values were supplied, in call order.
//
// The module is organized into four packages:
//
//   - [github.com/guardql/guardql/guard] — runtime: operation catalog, builder state, statements, snapshots
//   - [github.com/guardql/guardql/qbgen] — generator: metadata model, DSL parser, struct tags, rendering
//   - [github.com/guardql/guardql/sqlexec] — reference statement executor on SQLite
//   - [github.com/guardql/guardql/pgexec] — reference statement executor on PostgreSQL
//
// The guard and qbgen packages compile and test without any database.
// Only the executor packages touch a storage backend.
package guardql
