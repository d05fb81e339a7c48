/*
Package status manages file storage and outcome tracking for alertmigrate.

	            +-------------+
	            |   Manager   |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+------+
	|   Files   |           |  Outcomes |
	| (renameio)|           | (Totals)  |
	+-----------+           +-----------+

🎯 Purpose:
- Reads source files and writes rewritten content atomically
- Keeps an optional .bak copy of each file before it is replaced
- Tracks per-file outcomes (rewritten, pending, unchanged, failed)
- Formats outcomes and progress for the debug log

🔄 Flow:
1. The operation runner reads a file through the Manager
2. The rewritten content goes back through WriteFileAtomic
3. The outcome is recorded with TrackFile
4. Totals sums everything up for the final summary

🤝 Interfaces:
- FileManager: read, atomic write, backup and restore
- StatusReporter: outcome tracking and progress
- FileFormatter: emoji status messages

🔍 Example:

	mgr := status.New(root, logger)

	content, err := mgr.ReadFile(ctx, "App/ViewController.m")
	err = mgr.WriteFileAtomic(ctx, "App/ViewController.m", rewritten)

	mgr.TrackFile(ctx, status.FileInfo{Path: "App/ViewController.m", Status: status.StatusRewritten, Rewrites: 2})
	totals := mgr.Totals()
*/
package status
