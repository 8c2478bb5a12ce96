// Package runstore persists completed evaluation runs in SQLite so metric
// movements can be tracked across recognizer versions.
//
// A store lives in one directory holding the database plus a lock file; the
// file lock keeps two asreval processes from opening the same history for
// writing at once. Each saved run records the input paths, the options the
// run used, and the full metrics snapshot.
package runstore
