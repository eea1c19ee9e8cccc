// Package async runs functions in background goroutines and exposes their
// outcome as a Future.
//
// It is a small helper for fan-out work such as warming several dictionaries
// at once:
//
//	futures := make([]*async.Future[int], 0, len(langs))
//	for _, lang := range langs {
//		futures = append(futures, async.Run(ctx, lang, warm))
//	}
//	sizes, err := async.WaitAll(ctx, futures...)
//
// Run always executes fn once it has started, even if ctx is cancelled while
// fn is running; cancellation only stops waiters and skips work that has not
// started yet.
package async
