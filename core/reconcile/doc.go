// Package reconcile pairs the files found on a room's share with the uploads
// expected for that room and reports what was delivered.
//
// # Pipeline
//
// One run moves through init, probing, scanning, matching and committing:
//
//  1. The room endpoint is loaded from the Datastore. A room without an address
//     fails with KindConfig.
//  2. The Prober checks reachability. An unreachable room yields an offline
//     report with no files and no writes.
//  3. The share is walked by a ShareScanner under a per-room deadline.
//  4. Each scanned file is matched against the expected uploads still in the
//     pool. A matched upload leaves the pool, so one upload takes one file.
//  5. When the request asks for it, all matches are written in one call to
//     Datastore.ApplyMatches, which the datastore runs as a single transaction.
//
// Reconcile never returns an error. Failures, including panics in
// collaborators, end up in Report.Status and Report.ErrorKind.
//
// # Scoring
//
// Normalize strips the extension, lowercases and turns '_', '-' and '.' into
// spaces. Similarity is the matching-block ratio of two normalized names.
// Match keeps candidates at or above the threshold and adds SizeBonus when the
// byte sizes agree.
//
// # Usage
//
//	engine := reconcile.NewEngine(repo, prober, scanner.New(log), reconcile.Options{
//	    Threshold: cfg.Scan.MatchThreshold,
//	    MountRoot: cfg.Scan.MountRoot,
//	}, log)
//	report := engine.Reconcile(ctx, reconcile.Request{RoomID: 7, Commit: true})
package reconcile
