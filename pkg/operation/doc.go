/*
Package operation implements the alertmigrate commands over a source tree.

	+-------------+     +-------------+     +-------------+
	| SelectFiles | --> |  processFile| --> |   status    |
	| (doublestar)|     | (pkg/text)  |     |  (renameio) |
	+-------------+     +------+------+     +-------------+
	                           |
	                    +------+------+
	                    |     log     |
	                    | (per file)  |
	                    +-------------+

🎯 Purpose:
- Selects source files with include and exclude globs
- Rewrites each file through pkg/text, a bounded number at a time
- Hands writes and backups to the status package
- Reports every file in path order, then a summary

⚡ Operations:
- rewrite: writes changed files back, or only reports when dry_run is set
- check: never writes, returns ErrNeedsMigration when legacy calls remain

🔄 Flow:
1. SelectFiles walks Root (or the given Paths)
2. Files run concurrently, bounded by Config.Concurrency
3. Results are tracked and logged once every file is done
4. Any failed file makes the operation return an error

🔍 Example:

	op, err := operation.NewRewriteOperation(operation.Options{
		Config: cfg,
		Root:   ".",
	})
	err = operation.NewRunner(&logger, false).Run(ctx, op)
*/
package operation
